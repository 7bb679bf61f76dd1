package prompts

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/character"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/scene"
	"github.com/shouni/go-storyboard-kit/pkg/seed"
)

// Composer はパネル・キャラクター・スタイルガイドから生成用のプロンプトを合成します。
// 共有状態を書き換えないので、独立したパネルに対して並行に呼び出せます。
type Composer struct {
	profiles map[string]ModelProfile
}

// Option は Composer の設定を変更します。
type Option func(*Composer)

// WithModelProfile はモデル別プロファイルを追加・上書きします。
func WithModelProfile(model string, p ModelProfile) Option {
	return func(c *Composer) {
		c.profiles[strings.ToLower(strings.TrimSpace(model))] = p
	}
}

// NewComposer は既定のモデルプロファイルを持つ Composer を生成します。
func NewComposer(opts ...Option) *Composer {
	c := &Composer{profiles: DefaultModelProfiles()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SupportedModels はプロファイルが登録されているモデルIDを返します。
func (c *Composer) SupportedModels() []string {
	out := make([]string, 0, len(c.profiles))
	for m := range c.profiles {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Compose は1パネル分のプロンプト・ネガティブプロンプト・シードを合成します。
// スタイルガイドやキャラクターが無い場合はその段階を省略するだけで、
// 失敗するのは visual prompt と description が両方とも空の場合だけなのだ。
func (c *Composer) Compose(
	panel domain.Panel,
	chars []domain.Character,
	guide *domain.StyleGuide,
	flags domain.EnhancementFlags,
	settings domain.GenerationSettings,
) (*domain.ComposedPrompt, error) {
	base := strings.TrimSpace(panel.VisualPrompt)
	if base == "" {
		base = strings.TrimSpace(panel.Description)
	}
	if base == "" {
		return nil, domain.ErrEmptyPrompt
	}

	var (
		phrases      []string
		resolvedSeed *int64
	)
	if settings.Seed != nil {
		s := *settings.Seed
		resolvedSeed = &s
	}

	// 2. キャラクター参照
	if flags.UseCharacterReference {
		lookup := domain.BuildCharactersMap(chars)
		for _, id := range panel.CharacterIDs {
			ch := lookup.FindCharacter(id)
			if ch == nil {
				slog.Debug("パネルが参照するキャラクターが見つかりません", "character_id", id)
				continue
			}
			descriptor := ch.ConsistencyDescriptor
			if descriptor == "" {
				descriptor = character.BuildConsistencyDescriptor(ch.Name, character.DescribeTraits(ch.Traits))
			}
			phrases = append(phrases, descriptor)
			phrases = append(phrases, character.TraitPhrases(ch.Traits)...)

			if resolvedSeed == nil && ch.Seed != nil {
				s := *ch.Seed
				resolvedSeed = &s
			}
		}
	}

	// 3. ショット情報
	phrases = append(phrases, shotPhrases(panel)...)

	// 4. 美術設定
	if guide != nil && flags.UseStyleGuide {
		ad := guide.ArtDirection
		phrases = append(phrases, ad.VisualStyle)
		if artists := nonEmpty(ad.ReferenceArtists); len(artists) > 0 {
			phrases = append(phrases, "in the style of "+strings.Join(artists, " and "))
		}
		phrases = append(phrases, ad.Period, ad.Location)
	}

	// 5. 撮影設定
	if guide != nil && flags.AddCinematography {
		cg := guide.Cinematography
		phrases = append(phrases, cg.Lighting)
		if m := strings.TrimSpace(cg.Mood); m != "" {
			phrases = append(phrases, m+" mood")
		}
		if a := strings.TrimSpace(cg.Atmosphere); a != "" {
			phrases = append(phrases, a+" atmosphere")
		}
		if palette := nonEmpty(cg.ColorPalette); len(palette) > 0 {
			phrases = append(phrases, "color palette: "+strings.Join(palette, ", "))
		}
	}

	// 6. ライティング
	if flags.AddLighting {
		desc := panel.Description
		if strings.TrimSpace(desc) == "" {
			desc = base
		}
		phrases = append(phrases, scene.SelectLighting(desc, guide))
	}

	// 7. 構図
	if flags.AddComposition {
		phrases = append(phrases, scene.SelectComposition(panel.ShotType))
	}

	// 8. 技術的な修飾語
	if guide != nil && flags.AddTechnicalDetails {
		phrases = append(phrases, TechnicalModifiers(guide.TechnicalSpecs)...)
	}

	// 9. カスタム修飾語
	phrases = append(phrases, flags.CustomModifiers...)

	// 10. アスペクト比は常に末尾に固定します
	var aspect string
	if guide != nil && guide.TechnicalSpecs.AspectRatio != "" {
		aspect = fmt.Sprintf("aspect ratio %s", guide.TechnicalSpecs.AspectRatio)
	}

	ordered := make([]string, 0, len(phrases)+2)
	ordered = append(ordered, base)
	for _, p := range OptimizePrompt(phrases) {
		if p == base || p == aspect {
			continue
		}
		ordered = append(ordered, p)
	}
	if aspect != "" {
		ordered = append(ordered, aspect)
	}
	prompt := strings.Join(ordered, ", ")

	if settings.Model != "" {
		optimized, err := c.OptimizeForModel(prompt, settings.Model)
		switch {
		case errors.Is(err, domain.ErrUnsupportedModel):
			slog.Warn("モデル別の最適化をスキップします", "model", settings.Model, "error", err)
		case err != nil:
			return nil, fmt.Errorf("モデル別の最適化に失敗しました: %w", err)
		default:
			prompt = optimized
		}
	}

	if resolvedSeed == nil {
		s := seed.New(seed.FromString(base)).Next()
		resolvedSeed = &s
	}

	var renderStyle domain.RenderStyle
	if guide != nil {
		renderStyle = guide.TechnicalSpecs.RenderStyle
	}

	return &domain.ComposedPrompt{
		Prompt:         prompt,
		NegativePrompt: BuildNegativePrompt(renderStyle, settings.NegativePrompt),
		Seed:           resolvedSeed,
	}, nil
}

// shotPhrases はショットタイプ・アングル・カメラワークの語句を返します。
func shotPhrases(panel domain.Panel) []string {
	var out []string
	if s := strings.TrimSpace(panel.ShotType); s != "" {
		out = append(out, strings.ToLower(s))
	}
	if a := strings.TrimSpace(panel.CameraAngle); a != "" {
		out = append(out, a+" angle")
	}
	if m := strings.TrimSpace(panel.CameraMovement); m != "" && !strings.EqualFold(m, scene.StaticMovement) {
		out = append(out, m+" motion blur")
	}
	return out
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
