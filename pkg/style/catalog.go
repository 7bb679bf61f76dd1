package style

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/store"
)

// DefaultBlendRatio は Blend で比率を指定しない場合の値です。
const DefaultBlendRatio = 0.5

// Catalog はスタイルガイドの作成・ブレンドを担います。
type Catalog struct {
	repo store.StyleGuideRepository
}

// NewCatalog は呼び出し側が所有するストアから Catalog を生成します。
func NewCatalog(repo store.StyleGuideRepository) *Catalog {
	if repo == nil {
		repo = store.NewStyleGuideStore()
	}
	return &Catalog{repo: repo}
}

// ListPresets はプリセットの一覧を返します。
func (c *Catalog) ListPresets() map[string]domain.StyleGuide {
	return ListPresets()
}

// Create は新しいスタイルガイドを作成します。
// 既知のキーならそのプリセットの複製を、空や未知のキーなら既定の技術仕様だけを持つ空のガイドを作ります。
func (c *Catalog) Create(name, description, presetKey string) (*domain.StyleGuide, error) {
	var g domain.StyleGuide
	if p, ok := Preset(presetKey); ok {
		g = p
	} else {
		if presetKey != "" {
			slog.Warn("未知のプリセットのため空のスタイルガイドを作成します", "preset", presetKey)
		}
		g.TechnicalSpecs = domain.DefaultTechnicalSpecs()
	}

	g.ID = uuid.NewString()
	g.Name = name
	g.Description = description
	c.repo.Put(g.ID, g)
	return &g, nil
}

// Get はIDに対応するスタイルガイドのコピーを返します。
func (c *Catalog) Get(id string) (*domain.StyleGuide, error) {
	g, ok := c.repo.Get(id)
	if !ok {
		return nil, &domain.NotFoundError{Kind: "style guide", ID: id}
	}
	return &g, nil
}

// List はID順の全スタイルガイドを返します。
func (c *Catalog) List() []domain.StyleGuide {
	return c.repo.List()
}

// Update はスタイルガイド全体を置き換えます。IDは維持されます。
func (c *Catalog) Update(id string, g domain.StyleGuide) (*domain.StyleGuide, error) {
	if _, ok := c.repo.Get(id); !ok {
		return nil, &domain.NotFoundError{Kind: "style guide", ID: id}
	}
	g = g.Clone()
	g.ID = id
	c.repo.Put(id, g)
	return &g, nil
}

// Delete はスタイルガイドを削除します。
func (c *Catalog) Delete(id string) error {
	if !c.repo.Delete(id) {
		return &domain.NotFoundError{Kind: "style guide", ID: id}
	}
	return nil
}

// Import は保存済みのスタイルガイドを読み込みます。IDが空なら採番します。
func (c *Catalog) Import(guides ...domain.StyleGuide) []domain.StyleGuide {
	out := make([]domain.StyleGuide, 0, len(guides))
	for _, g := range guides {
		g = g.Clone()
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		c.repo.Put(g.ID, g)
		out = append(out, g)
	}
	return out
}

// Blend は2つのスタイルガイドを比率に応じて混ぜた新しいガイドを作成し、保存します。
// 補間はしません。技術仕様と美術設定は ratio > 0.5 なら a、そうでなければ b から丸ごと採用します。
func (c *Catalog) Blend(a, b domain.StyleGuide, ratio float64) (*domain.StyleGuide, error) {
	if math.IsNaN(ratio) {
		return nil, fmt.Errorf("ブレンド比率が NaN です: %w", domain.ErrInvalidInput)
	}
	ratio = math.Max(0, math.Min(1, ratio))

	dominant := b
	if ratio > 0.5 {
		dominant = a
	}

	g := domain.StyleGuide{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("%s × %s", a.Name, b.Name),
		Description: fmt.Sprintf("Blend of %s and %s (%.0f%% / %.0f%%)", a.Name, b.Name, ratio*100, (1-ratio)*100),
		Cinematography: domain.Cinematography{
			ShotTypes:    union(a.Cinematography.ShotTypes, b.Cinematography.ShotTypes),
			CameraAngles: union(a.Cinematography.CameraAngles, b.Cinematography.CameraAngles),
			Lighting:     joinWith(a.Cinematography.Lighting, b.Cinematography.Lighting, "mixed with"),
			ColorPalette: blendPalette(a.Cinematography.ColorPalette, b.Cinematography.ColorPalette, ratio),
			Mood:         joinWith(a.Cinematography.Mood, b.Cinematography.Mood, "meets"),
			Atmosphere:   joinWith(a.Cinematography.Atmosphere, b.Cinematography.Atmosphere, "and"),
		},
		ArtDirection:   dominant.Clone().ArtDirection,
		TechnicalSpecs: dominant.TechnicalSpecs,
	}
	c.repo.Put(g.ID, g)
	return &g, nil
}

// union は順序を保った和集合を返します（a が先）。
func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// blendPalette は a の先頭 floor(len(a)*ratio) 件と b の先頭 floor(len(b)*(1-ratio)) 件を連結します。
// 重複は除去しません。
func blendPalette(a, b []string, ratio float64) []string {
	na := int(math.Floor(float64(len(a)) * ratio))
	nb := int(math.Floor(float64(len(b)) * (1 - ratio)))
	out := make([]string, 0, na+nb)
	out = append(out, a[:na]...)
	out = append(out, b[:nb]...)
	return out
}

func joinWith(a, b, connective string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a != "" && b != "":
		return fmt.Sprintf("%s %s %s", a, connective, b)
	case a != "":
		return a
	default:
		return b
	}
}
