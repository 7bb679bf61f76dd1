package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
	"github.com/shouni/go-storyboard-kit/pkg/style"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Request は一括生成の入力です。
type Request struct {
	Characters []domain.Character
	Guide      *domain.StyleGuide
	Flags      domain.EnhancementFlags
	Settings   domain.GenerationSettings
	// PanelSettings はパネルごとの設定です。要素があればその index のパネルは Settings の代わりにこちらを使います。
	PanelSettings []domain.GenerationSettings
}

// PanelResult は1パネル分の生成結果です。Err はそのパネルだけの失敗を表します。
type PanelResult struct {
	Index       int
	Panel       domain.Panel
	Prompt      *domain.ComposedPrompt
	Result      *GenerationResult
	Quality     *QualityReport
	Consistency *ConsistencyReport
	Err         error
}

// Succeeded はパネルの生成が成功したかを返します。
func (r PanelResult) Succeeded() bool {
	return r.Err == nil && r.Result != nil
}

// PanelGenerator は合成したプロンプトで複数パネルを並列に生成します。
type PanelGenerator struct {
	composer *prompts.Composer
	backend  GenerationBackend
	system   prompts.PromptBuilder
	assets   *AssetCache
	analyzer QualityAnalyzer
	limiter  *rate.Limiter
	limit    int
}

// PanelOption は PanelGenerator の設定を変更します。
type PanelOption func(*PanelGenerator)

// WithRateLimit はバックエンド呼び出しの間隔とバーストを設定します。interval が 0 以下なら無制限です。
func WithRateLimit(interval time.Duration, burst int) PanelOption {
	return func(pg *PanelGenerator) {
		if interval <= 0 {
			pg.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		pg.limiter = rate.NewLimiter(rate.Every(interval), burst)
	}
}

// WithConcurrency は同時に生成するパネル数の上限を設定します。0 以下なら無制限です。
func WithConcurrency(n int) PanelOption {
	return func(pg *PanelGenerator) { pg.limit = n }
}

// WithAssetCache はキャラクター参照画像の事前アップロードを有効にします。
func WithAssetCache(a *AssetCache) PanelOption {
	return func(pg *PanelGenerator) { pg.assets = a }
}

// WithQualityAnalyzer は生成結果の品質評価を有効にします。
func WithQualityAnalyzer(qa QualityAnalyzer) PanelOption {
	return func(pg *PanelGenerator) { pg.analyzer = qa }
}

// WithSystemPrompt はシステムプロンプトのビルダーを設定します。
func WithSystemPrompt(b prompts.PromptBuilder) PanelOption {
	return func(pg *PanelGenerator) { pg.system = b }
}

// NewPanelGenerator は PanelGenerator の新しいインスタンスを初期化します。
func NewPanelGenerator(composer *prompts.Composer, backend GenerationBackend, opts ...PanelOption) (*PanelGenerator, error) {
	if composer == nil {
		return nil, errors.New("Composer は必須です")
	}
	if backend == nil {
		return nil, errors.New("GenerationBackend は必須です")
	}
	pg := &PanelGenerator{composer: composer, backend: backend}
	for _, opt := range opts {
		opt(pg)
	}
	return pg, nil
}

// Execute はパネル群を並列に生成します。
// 合成やバックエンドの失敗はそのパネルの結果に記録し、他のパネルの生成は続けます。
// 処理全体を中断するのはコンテキストのキャンセルとレートリミッターのエラーだけなのだ。
func (pg *PanelGenerator) Execute(ctx context.Context, panels []domain.Panel, req Request) ([]PanelResult, error) {
	chars := domain.BuildCharactersMap(req.Characters)

	if pg.assets != nil {
		if err := pg.assets.Prepare(ctx, panels, chars); err != nil {
			// 参照画像が無くても生成自体は可能なので警告に留めます
			slog.Warn("参照画像の事前アップロードに失敗しました", "error", err)
		}
	}

	systemPrompt := pg.buildSystemPrompt(req)

	results := make([]PanelResult, len(panels))
	eg, egCtx := errgroup.WithContext(ctx)
	if pg.limit > 0 {
		eg.SetLimit(pg.limit)
	}

	for i, panel := range panels {
		eg.Go(func() error {
			if pg.limiter != nil {
				if err := pg.limiter.Wait(egCtx); err != nil {
					return err
				}
			}
			if err := egCtx.Err(); err != nil {
				return err
			}

			results[i] = pg.generateOne(egCtx, i, panel, chars, req, systemPrompt)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, fmt.Errorf("パネルの一括生成が中断されました: %w", err)
	}
	return results, nil
}

func (pg *PanelGenerator) generateOne(
	ctx context.Context,
	i int,
	panel domain.Panel,
	chars domain.CharactersMap,
	req Request,
	systemPrompt string,
) PanelResult {
	res := PanelResult{Index: i, Panel: panel}
	logger := slog.With("panel_index", i+1, "panel_id", panel.ID)

	settings := req.Settings
	if i < len(req.PanelSettings) {
		settings = req.PanelSettings[i]
	}

	composed, err := pg.composer.Compose(panel, req.Characters, req.Guide, req.Flags, settings)
	if err != nil {
		logger.Warn("プロンプトの合成に失敗しました", "error", err)
		res.Err = fmt.Errorf("パネル %d のプロンプト合成に失敗しました: %w", i+1, err)
		return res
	}
	res.Prompt = composed

	genReq := GenerationRequest{
		PanelIndex:     i,
		Prompt:         composed.Prompt,
		NegativePrompt: composed.NegativePrompt,
		SystemPrompt:   systemPrompt,
		Seed:           composed.Seed,
		ReferenceURL:   panel.ReferenceURL,
	}
	if req.Guide != nil {
		genReq.AspectRatio = string(req.Guide.TechnicalSpecs.AspectRatio)
	}
	var mainChar *domain.Character
	if len(panel.CharacterIDs) > 0 {
		mainChar = chars.FindCharacter(panel.CharacterIDs[0])
	}
	if mainChar != nil && pg.assets != nil {
		if uri, ok := pg.assets.Lookup(mainChar.ID); ok {
			genReq.FileAPIURI = uri
		}
	}

	logger.Info("パネルの生成を開始します", "use_file_api", genReq.FileAPIURI != "")
	start := time.Now()
	out, err := pg.backend.Generate(ctx, genReq)
	if err != nil {
		logger.Warn("パネルの生成に失敗しました", "error", err)
		res.Err = fmt.Errorf("パネル %d の生成に失敗しました: %w", i+1, err)
		return res
	}
	res.Result = out
	logger.Info("パネルの生成が完了しました", "duration", time.Since(start).Round(time.Millisecond))

	if pg.analyzer != nil {
		report, err := pg.analyzer.AnalyzeImage(ctx, out)
		if err != nil {
			logger.Warn("品質評価に失敗しました", "error", err)
		} else {
			res.Quality = report
		}
		if mainChar != nil {
			cr, err := pg.analyzer.CheckConsistency(ctx, *mainChar, out)
			if err != nil {
				logger.Warn("一貫性の評価に失敗しました", "character_id", mainChar.ID, "error", err)
			} else {
				res.Consistency = cr
			}
		}
	}
	return res
}

// buildSystemPrompt はスタイルガイドとカメラ構成からシステムプロンプトを組み立てます。
func (pg *PanelGenerator) buildSystemPrompt(req Request) string {
	if pg.system == nil {
		return ""
	}

	data := prompts.TemplateData{Guide: req.Guide}
	if req.Guide != nil {
		setup := style.CameraSetupFor(*req.Guide, "")
		data.Camera = &setup
	}
	for _, c := range domain.BuildCharactersMap(req.Characters).Sorted() {
		if c.ConsistencyDescriptor != "" {
			data.Characters = append(data.Characters, c.ConsistencyDescriptor)
		}
	}

	sp, err := pg.system.Build(prompts.ModeSystem, data)
	if err != nil {
		slog.Warn("システムプロンプトの構築に失敗しました", "error", err)
		return ""
	}
	return sp
}
