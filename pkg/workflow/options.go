package workflow

import (
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-storyboard-kit/pkg/generator"
	"github.com/shouni/go-storyboard-kit/pkg/prompts"
)

// Option は Manager の構築内容を変更します。
type Option func(*options)

type options struct {
	backend  generator.GenerationBackend
	uploader generator.AssetUploader
	analyzer generator.QualityAnalyzer
	reader   remoteio.InputReader
	writer   remoteio.OutputWriter
	profiles map[string]prompts.ModelProfile
}

// WithBackend はパネル生成に使うバックエンドを設定します。
func WithBackend(b generator.GenerationBackend) Option {
	return func(o *options) { o.backend = b }
}

// WithImageGenerator は gemini-image-kit の画像生成器をバックエンドとして設定します。
// gen が nil の場合は何もしません。
func WithImageGenerator(gen generator.PanelImageGenerator) Option {
	return func(o *options) {
		if b, err := generator.NewImageKitBackend(gen); err == nil {
			o.backend = b
		}
	}
}

// WithAssetUploader はキャラクター参照画像の事前アップロード先を設定します。
func WithAssetUploader(u generator.AssetUploader) Option {
	return func(o *options) { o.uploader = u }
}

// WithQualityAnalyzer は生成結果の品質評価を設定します。
func WithQualityAnalyzer(qa generator.QualityAnalyzer) Option {
	return func(o *options) { o.analyzer = qa }
}

// WithInputReader はプロジェクトやストーリーボードの読み込み元を設定します。
func WithInputReader(r remoteio.InputReader) Option {
	return func(o *options) { o.reader = r }
}

// WithOutputWriter はプロンプトシートや画像の書き出し先を設定します。
func WithOutputWriter(w remoteio.OutputWriter) Option {
	return func(o *options) { o.writer = w }
}

// WithModelProfile はモデル別プロファイルを追加・上書きします。
func WithModelProfile(model string, p prompts.ModelProfile) Option {
	return func(o *options) {
		if o.profiles == nil {
			o.profiles = make(map[string]prompts.ModelProfile)
		}
		o.profiles[model] = p
	}
}
