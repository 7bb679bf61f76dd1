package planner

import (
	"fmt"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// SeedSource はキャラクターのバッチシードを払い出す契約です。
// character.Registry がこれを満たします。
type SeedSource interface {
	BatchSeeds(id string, panelCount int) ([]domain.SeedPrompt, error)
}

// Planner は複数パネルの一括生成で使うシード計画を立てます。
type Planner struct {
	source SeedSource
}

// New は新しい Planner を生成します。
func New(source SeedSource) *Planner {
	return &Planner{source: source}
}

// Plan はパネル数分のシードと一貫性プロンプトを順に返します。
// シードは base, base+10, base+20, ... の間隔で並びます。
func (p *Planner) Plan(characterID string, panelCount int) ([]domain.SeedPrompt, error) {
	seeds, err := p.source.BatchSeeds(characterID, panelCount)
	if err != nil {
		return nil, fmt.Errorf("シード計画の作成に失敗しました: %w", err)
	}
	return seeds, nil
}

// PlanPanels はパネルごとにシードを埋めた生成設定を返します。
// base に既に明示的なシードがある場合でも、パネルごとのシードで上書きするのだ。
func (p *Planner) PlanPanels(characterID string, panels []domain.Panel, base domain.GenerationSettings) ([]domain.GenerationSettings, error) {
	seeds, err := p.Plan(characterID, len(panels))
	if err != nil {
		return nil, err
	}

	out := make([]domain.GenerationSettings, len(panels))
	for i, sp := range seeds {
		s := base
		s.Seed = domain.Int64Ptr(sp.Seed)
		out[i] = s
	}
	return out, nil
}
