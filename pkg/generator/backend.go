package generator

import (
	"context"
	"errors"
	"fmt"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
)

// GenerationRequest は合成済みプロンプトを生成バックエンドに渡すための要求です。
type GenerationRequest struct {
	PanelIndex     int
	Prompt         string
	NegativePrompt string
	SystemPrompt   string
	AspectRatio    string
	Seed           *int64
	ReferenceURL   string // ポーズ参照用の元画像
	FileAPIURI     string // アップロード済みのキャラクター参照
}

// GenerationResult は生成バックエンドの出力です。
type GenerationResult struct {
	Data     []byte
	MimeType string
	UsedSeed int64
	ImageURL string // 保存先が決まっている場合のみ
}

// GenerationBackend は画像・動画などの外部生成サービスとの境界です。
// 実際の HTTP 呼び出しやリトライはこの実装側の責務なのだ。
type GenerationBackend interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

// PanelImageGenerator は gemini-image-kit の画像生成器が満たす契約です。
type PanelImageGenerator interface {
	GenerateMangaPanel(ctx context.Context, req imagedom.ImageGenerationRequest) (*imagedom.ImageResponse, error)
}

// ImageKitBackend は PanelImageGenerator を GenerationBackend として使うためのアダプターです。
type ImageKitBackend struct {
	gen PanelImageGenerator
}

// NewImageKitBackend は ImageKitBackend を生成します。
func NewImageKitBackend(gen PanelImageGenerator) (*ImageKitBackend, error) {
	if gen == nil {
		return nil, errors.New("PanelImageGenerator は必須です")
	}
	return &ImageKitBackend{gen: gen}, nil
}

// Generate は要求を gemini-image-kit の形式に変換して生成を実行します。
func (b *ImageKitBackend) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	resp, err := b.gen.GenerateMangaPanel(ctx, imagedom.ImageGenerationRequest{
		Prompt:         req.Prompt,
		SystemPrompt:   req.SystemPrompt,
		NegativePrompt: req.NegativePrompt,
		AspectRatio:    req.AspectRatio,
		Image: imagedom.ImageURI{
			ReferenceURL: req.ReferenceURL,
			FileAPIURI:   req.FileAPIURI,
		},
		Seed: req.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("画像生成に失敗しました: %w", err)
	}
	if resp == nil {
		return nil, errors.New("画像生成の結果が空です")
	}

	return &GenerationResult{
		Data:     resp.Data,
		MimeType: resp.MimeType,
		UsedSeed: resp.UsedSeed,
	}, nil
}
