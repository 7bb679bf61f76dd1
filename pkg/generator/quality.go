package generator

import (
	"context"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// QualityReport は1枚の生成結果に対する品質評価です。
type QualityReport struct {
	Score  float64  `json:"score"` // 0.0 - 1.0
	Issues []string `json:"issues,omitempty"`
}

// ConsistencyReport はキャラクターの見た目の一貫性評価です。
type ConsistencyReport struct {
	CharacterID string   `json:"character_id"`
	Score       float64  `json:"score"` // 0.0 - 1.0
	Differences []string `json:"differences,omitempty"`
}

// QualityAnalyzer は生成結果を画像解析で評価する契約です。
// 実装は外部の画像解析サービスに委ね、このモジュールには含めません。
type QualityAnalyzer interface {
	AnalyzeImage(ctx context.Context, result *GenerationResult) (*QualityReport, error)
	CheckConsistency(ctx context.Context, char domain.Character, result *GenerationResult) (*ConsistencyReport, error)
}
