package workflow

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-storyboard-kit/pkg/character"
	"github.com/shouni/go-storyboard-kit/pkg/config"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/generator"
	"github.com/shouni/go-storyboard-kit/pkg/parser"
	"github.com/shouni/go-storyboard-kit/pkg/planner"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
	"github.com/shouni/go-storyboard-kit/pkg/publisher"
	"github.com/shouni/go-storyboard-kit/pkg/seed"
	"github.com/shouni/go-storyboard-kit/pkg/store"
	"github.com/shouni/go-storyboard-kit/pkg/style"
)

// Manager は、ストア・シード源・レジストリ・カタログ・合成器・プランナーを1つの設定から構築し、
// プロジェクト単位の処理をまとめて提供します。
// ストアは Manager ごとに独立しているので、プロジェクトごとに New してください。
type Manager struct {
	cfg config.Config

	characters *store.MemoryStore[domain.Character]
	styles     *store.MemoryStore[domain.StyleGuide]
	seeds      *seed.Source

	registry *character.Registry
	catalog  *style.Catalog
	composer *prompts.Composer
	planner  *planner.Planner
	system   prompts.PromptBuilder

	projects    *parser.ProjectParser
	storyboards *parser.MarkdownParser
	reader      remoteio.InputReader
	publisher   *publisher.StoryboardPublisher

	// generator は WithBackend / WithImageGenerator を指定した場合だけ構築されます
	generator *generator.PanelGenerator
}

// New は、設定とオプションを基に新しい Manager を初期化します。
func New(cfg config.Config, opts ...Option) (*Manager, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var storeOpts []store.Option
	if cfg.StoreTTL > 0 {
		storeOpts = append(storeOpts, store.WithExpiration(cfg.StoreTTL, 2*cfg.StoreTTL))
	}
	chars := store.NewCharacterStore(storeOpts...)
	styles := store.NewStyleGuideStore(storeOpts...)
	src := seed.New(cfg.InitialSeed)

	composerOpts := make([]prompts.Option, 0, len(o.profiles))
	for model, p := range o.profiles {
		composerOpts = append(composerOpts, prompts.WithModelProfile(model, p))
	}
	composer := prompts.NewComposer(composerOpts...)

	system, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("システムプロンプトの初期化に失敗しました: %w", err)
	}

	registry := character.NewRegistry(chars, src)
	reader := o.reader
	if reader == nil {
		reader = parser.NewLocalReader()
	}

	m := &Manager{
		cfg:         cfg,
		characters:  chars,
		styles:      styles,
		seeds:       src,
		registry:    registry,
		catalog:     style.NewCatalog(styles),
		composer:    composer,
		planner:     planner.New(registry),
		system:      system,
		projects:    parser.NewProjectParser(reader),
		storyboards: parser.NewMarkdownParser(),
		reader:      reader,
		publisher:   publisher.NewStoryboardPublisher(o.writer),
	}

	if o.backend != nil {
		m.generator, err = m.buildGenerator(o)
		if err != nil {
			return nil, fmt.Errorf("パネル生成器の初期化に失敗しました: %w", err)
		}
	}

	slog.Debug("Manager を初期化しました",
		"model", cfg.Model,
		"initial_seed", cfg.InitialSeed,
		"generator", m.generator != nil,
	)
	return m, nil
}

// buildGenerator は設定のレート制限と並列数で PanelGenerator を構築します。
func (m *Manager) buildGenerator(o options) (*generator.PanelGenerator, error) {
	genOpts := []generator.PanelOption{
		generator.WithRateLimit(m.cfg.RateInterval, m.cfg.RateBurst),
		generator.WithConcurrency(m.cfg.PanelLimit),
		generator.WithSystemPrompt(m.system),
	}
	if o.uploader != nil {
		genOpts = append(genOpts, generator.WithAssetCache(generator.NewAssetCache(o.uploader)))
	}
	if o.analyzer != nil {
		genOpts = append(genOpts, generator.WithQualityAnalyzer(o.analyzer))
	}
	return generator.NewPanelGenerator(m.composer, o.backend, genOpts...)
}

// Config は Manager の設定を返します。
func (m *Manager) Config() config.Config { return m.cfg }

// Registry はキャラクターレジストリを返します。
func (m *Manager) Registry() *character.Registry { return m.registry }

// Catalog はスタイルガイドカタログを返します。
func (m *Manager) Catalog() *style.Catalog { return m.catalog }

// Composer はプロンプト合成器を返します。
func (m *Manager) Composer() *prompts.Composer { return m.composer }

// Planner はバッチシードのプランナーを返します。
func (m *Manager) Planner() *planner.Planner { return m.planner }

// CanGenerate は生成バックエンドが設定されているかを返します。
func (m *Manager) CanGenerate() bool { return m.generator != nil }

// ExportCharacters は登録済みキャラクターを JSON で書き出します。
func (m *Manager) ExportCharacters() ([]byte, error) {
	return store.ExportJSON[domain.Character](m.characters)
}

// ExportStyleGuides は登録済みスタイルガイドを JSON で書き出します。
func (m *Manager) ExportStyleGuides() ([]byte, error) {
	return store.ExportJSON[domain.StyleGuide](m.styles)
}
