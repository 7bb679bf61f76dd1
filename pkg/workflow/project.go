package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/generator"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
	"github.com/shouni/go-storyboard-kit/pkg/publisher"
	"github.com/shouni/go-storyboard-kit/pkg/style"
)

// Session はプロジェクトをレジストリとカタログに読み込んだ後の状態です。
type Session struct {
	Title      string
	Characters []domain.Character
	Guide      *domain.StyleGuide
	Flags      domain.EnhancementFlags
	Settings   domain.GenerationSettings
	Panels     []domain.Panel
}

// ComposeResult はパネル群のプロンプト合成結果です。
// Prompts と Errs は Panels と同じ index で対応します。
type ComposeResult struct {
	Title   string
	Panels  []domain.Panel
	Prompts []*domain.ComposedPrompt
	Errs    []error
}

// Failed は合成に失敗したパネル数を返します。
func (r ComposeResult) Failed() int {
	n := 0
	for _, err := range r.Errs {
		if err != nil {
			n++
		}
	}
	return n
}

// SheetPrompt はキャラクターシート生成用のプロンプト一式です。
type SheetPrompt struct {
	CharacterID  string
	Prompt       string
	SystemPrompt string
	Seed         *int64
}

// LoadProject はプロジェクトファイルを読み込みます。
func (m *Manager) LoadProject(ctx context.Context, path string) (*domain.Project, error) {
	return m.projects.ParseFromPath(ctx, path)
}

// LoadStoryboard は Markdown のストーリーボードを読み込みます。
func (m *Manager) LoadStoryboard(ctx context.Context, path string) (*domain.Storyboard, error) {
	rc, err := m.reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("ストーリーボードのオープンに失敗しました (%s): %w", path, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("ストーリーボードの読み込みに失敗しました (%s): %w", path, err)
	}
	return m.storyboards.Parse(path, string(content))
}

// ApplyProject はプロジェクトのキャラクターとスタイルガイドを登録し、合成に使う Session を返します。
// ID の無いキャラクターには小文字化した名前を ID として割り当てるので、パネルからは名前で参照できるのだ。
// Settings.Model が空なら設定のモデルを使います。
func (m *Manager) ApplyProject(p *domain.Project) (*Session, error) {
	if p == nil {
		return nil, fmt.Errorf("プロジェクトが nil です: %w", domain.ErrInvalidInput)
	}

	chars := make([]domain.Character, len(p.Characters))
	for i, c := range p.Characters {
		if c.ID == "" {
			c.ID = strings.ToLower(strings.TrimSpace(c.Name))
		}
		chars[i] = c
	}
	imported, err := m.registry.Import(chars...)
	if err != nil {
		return nil, fmt.Errorf("キャラクターの登録に失敗しました: %w", err)
	}

	guide, err := m.resolveStyleGuide(p)
	if err != nil {
		return nil, err
	}

	settings := p.Settings
	if settings.Model == "" {
		settings.Model = m.cfg.Model
	}

	sess := &Session{
		Title:      p.Title,
		Characters: imported,
		Guide:      guide,
		Flags:      p.EnhancementFlagsOrDefault(),
		Settings:   settings,
		Panels:     p.Panels,
	}
	slog.Info("プロジェクトを読み込みました",
		"title", p.Title,
		"characters", len(imported),
		"panels", len(p.Panels),
		"style_guide", guideName(guide),
	)
	return sess, nil
}

// resolveStyleGuide はプロジェクトのスタイルガイドを確定し、カタログに保存します。
func (m *Manager) resolveStyleGuide(p *domain.Project) (*domain.StyleGuide, error) {
	var guide *domain.StyleGuide
	switch {
	case p.StyleGuide != nil:
		g := m.catalog.Import(*p.StyleGuide)[0]
		guide = &g
	case p.StylePreset != "":
		// 未知のプリセットは Catalog.Create が空のスタイルガイドにするのだ
		name, desc := p.StylePreset, ""
		if preset, ok := style.Preset(p.StylePreset); ok {
			name, desc = preset.Name, preset.Description
		}
		g, err := m.catalog.Create(name, desc, p.StylePreset)
		if err != nil {
			return nil, err
		}
		guide = g
	}

	if p.StyleBlend == nil || p.StyleBlend.Preset == "" {
		return guide, nil
	}
	if guide == nil {
		return nil, fmt.Errorf("ブレンド元のスタイルガイドがありません: %w", domain.ErrInvalidInput)
	}
	other, ok := style.Preset(p.StyleBlend.Preset)
	if !ok {
		return nil, fmt.Errorf("ブレンドするプリセット %q がありません: %w", p.StyleBlend.Preset, domain.ErrInvalidInput)
	}
	ratio := style.DefaultBlendRatio
	if p.StyleBlend.Ratio != nil {
		ratio = *p.StyleBlend.Ratio
	}
	return m.catalog.Blend(*guide, other, ratio)
}

// ComposePanels はパネルごとにプロンプトを合成します。
// 合成に失敗したパネルは Errs に記録し、残りのパネルの合成を続けます。
// panelSettings に要素があれば、その index のパネルは Session の設定の代わりにそちらを使います。
func (m *Manager) ComposePanels(sess *Session, panels []domain.Panel, panelSettings []domain.GenerationSettings) ComposeResult {
	res := ComposeResult{
		Title:   sess.Title,
		Panels:  panels,
		Prompts: make([]*domain.ComposedPrompt, len(panels)),
		Errs:    make([]error, len(panels)),
	}
	for i, panel := range panels {
		settings := sess.Settings
		if i < len(panelSettings) {
			settings = panelSettings[i]
		}
		cp, err := m.composer.Compose(panel, sess.Characters, sess.Guide, sess.Flags, settings)
		if err != nil {
			slog.Warn("プロンプトの合成に失敗しました", "panel_index", i+1, "error", err)
			res.Errs[i] = fmt.Errorf("パネル %d のプロンプト合成に失敗しました: %w", i+1, err)
			continue
		}
		res.Prompts[i] = cp
	}
	return res
}

// PlanPanelSettings は指定キャラクターのバッチシードをパネルごとの設定に展開します。
func (m *Manager) PlanPanelSettings(sess *Session, characterID string, panels []domain.Panel) ([]domain.GenerationSettings, error) {
	return m.planner.PlanPanels(characterID, panels, sess.Settings)
}

// GeneratePanels は設定されたバックエンドでパネル画像を生成します。
func (m *Manager) GeneratePanels(ctx context.Context, sess *Session, panels []domain.Panel, panelSettings []domain.GenerationSettings) ([]generator.PanelResult, error) {
	if m.generator == nil {
		return nil, errors.New("生成バックエンドが設定されていません")
	}
	return m.generator.Execute(ctx, panels, generator.Request{
		Characters:    sess.Characters,
		Guide:         sess.Guide,
		Flags:         sess.Flags,
		Settings:      sess.Settings,
		PanelSettings: panelSettings,
	})
}

// Publish は合成結果と生成画像を出力先に書き出します。images は nil でも構いません。
func (m *Manager) Publish(ctx context.Context, res ComposeResult, images []*generator.GenerationResult, outputDir string) (publisher.PublishResult, error) {
	return m.publisher.Publish(ctx, res.Title, res.Panels, res.Prompts, images, publisher.Options{OutputDir: outputDir})
}

// PromptSheet は合成結果を Markdown のプロンプトシートに整形します。
func (m *Manager) PromptSheet(res ComposeResult) string {
	return publisher.NewMarkdownPublisher().BuildPromptSheet(res.Title, res.Panels, res.Prompts)
}

// ReferenceSheet はキャラクターシート生成用のプロンプトとシステムプロンプトを返します。
func (m *Manager) ReferenceSheet(characterID string) (*SheetPrompt, error) {
	c, err := m.registry.Get(characterID)
	if err != nil {
		return nil, err
	}
	prompt, err := m.registry.ReferenceSheetPrompt(c.ID)
	if err != nil {
		return nil, err
	}
	system, err := m.system.Build(prompts.ModeSheet, prompts.TemplateData{Descriptor: c.ConsistencyDescriptor})
	if err != nil {
		return nil, err
	}
	return &SheetPrompt{
		CharacterID:  c.ID,
		Prompt:       prompt,
		SystemPrompt: system,
		Seed:         c.Seed,
	}, nil
}

func guideName(g *domain.StyleGuide) string {
	if g == nil {
		return ""
	}
	return g.Name
}
