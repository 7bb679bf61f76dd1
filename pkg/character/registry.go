package character

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/seed"
	"github.com/shouni/go-storyboard-kit/pkg/store"
)

// SeedSpacing はバッチ生成時に1パネルごとに加算するシードの間隔です。
// 呼び出し側が期待シードを事前計算しているため、変更してはいけません。
const SeedSpacing int64 = 10

// Registry はキャラクターの作成・更新と一貫性プロンプトの導出を担います。
// 作成と更新は同じ Registry に対して直列に呼び出してください。
type Registry struct {
	repo store.CharacterRepository
	src  *seed.Source
}

// NewRegistry は呼び出し側が所有するストアとシード源から Registry を生成します。
// src が nil の場合は既定の初期状態で新しい Source を作ります。
func NewRegistry(repo store.CharacterRepository, src *seed.Source) *Registry {
	if repo == nil {
		repo = store.NewCharacterStore()
	}
	if src == nil {
		src = seed.New(seed.DefaultInitialSeed)
	}
	return &Registry{repo: repo, src: src}
}

// Create は新しいキャラクターを作成し、シードを1つ割り当てます。
func (r *Registry) Create(name, description string, traits domain.Traits) (*domain.Character, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("キャラクター名が空です: %w", domain.ErrInvalidInput)
	}

	c := domain.Character{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Traits:      traits.Clone(),
		Seed:        domain.Int64Ptr(r.src.Next()),
	}
	derive(&c)
	r.repo.Put(c.ID, c)

	slog.Debug("キャラクターを作成しました", "id", c.ID, "name", c.Name, "seed", *c.Seed)
	return &c, nil
}

// Update は部分的な Traits を既存の値にマージし、派生フィールドを再計算します。
// ID とシードは変更されません。
func (r *Registry) Update(id string, partial domain.TraitsPatch) (*domain.Character, error) {
	c, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	c.Traits = c.Traits.Apply(partial)
	derive(c)
	r.repo.Put(c.ID, *c)
	return c, nil
}

// Get はIDに対応するキャラクターのコピーを返します。
func (r *Registry) Get(id string) (*domain.Character, error) {
	c, ok := r.repo.Get(id)
	if !ok {
		return nil, &domain.NotFoundError{Kind: "character", ID: id}
	}
	return &c, nil
}

// List は名前順（同名はID順）に並べた全キャラクターを返します。
func (r *Registry) List() []domain.Character {
	chars := r.repo.List()
	return domain.BuildCharactersMap(chars).Sorted()
}

// Delete はキャラクターを削除します。
func (r *Registry) Delete(id string) error {
	if !r.repo.Delete(id) {
		return &domain.NotFoundError{Kind: "character", ID: id}
	}
	return nil
}

// AddReferenceImage は参照画像を追記します。既存の参照画像は削除されません。
func (r *Registry) AddReferenceImage(id, handle string) (*domain.Character, error) {
	if strings.TrimSpace(handle) == "" {
		return nil, fmt.Errorf("参照画像が空です: %w", domain.ErrInvalidInput)
	}
	c, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	c.ReferenceImages = append(c.ReferenceImages, handle)
	r.repo.Put(c.ID, *c)
	return c, nil
}

// Import は保存済みのキャラクターを読み込みます。
// IDやシードが欠けている場合は補完し、派生フィールドは常に再計算します。
func (r *Registry) Import(chars ...domain.Character) ([]domain.Character, error) {
	imported := make([]domain.Character, 0, len(chars))
	for i, in := range chars {
		if strings.TrimSpace(in.Name) == "" {
			return nil, fmt.Errorf("%d番目のキャラクター名が空です: %w", i, domain.ErrInvalidInput)
		}
		c := in.Clone()
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Seed == nil {
			c.Seed = domain.Int64Ptr(r.src.Next())
		}
		derive(&c)
		r.repo.Put(c.ID, c)
		imported = append(imported, c)
	}
	slog.Debug("キャラクターを読み込みました", "count", len(imported))
	return imported, nil
}

// ConsistencyPromptForScene は一貫性記述子にシーン情報を追記したプロンプトを返します。
func (r *Registry) ConsistencyPromptForScene(id string, sc *domain.SceneContext) (string, error) {
	c, err := r.Get(id)
	if err != nil {
		return "", err
	}
	if sc == nil {
		return c.ConsistencyDescriptor, nil
	}
	return ScenePrompt(*c, sc), nil
}

// ReferenceSheetPrompt はキャラクターシート生成用の固定テンプレートのプロンプトを返します。
func (r *Registry) ReferenceSheetPrompt(id string) (string, error) {
	c, err := r.Get(id)
	if err != nil {
		return "", err
	}
	return ReferenceSheet(c.ConsistencyDescriptor), nil
}

// BatchSeeds はパネル i ごとに base + i*10 のシードと、共通の一貫性プロンプトを返します。
func (r *Registry) BatchSeeds(id string, panelCount int) ([]domain.SeedPrompt, error) {
	c, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if panelCount < 0 {
		return nil, fmt.Errorf("パネル数が負です (%d): %w", panelCount, domain.ErrInvalidInput)
	}

	var base int64
	if c.Seed != nil {
		base = *c.Seed
	}

	seeds := make([]domain.SeedPrompt, panelCount)
	for i := range seeds {
		seeds[i] = domain.SeedPrompt{
			Index:             i,
			Seed:              base + int64(i)*SeedSpacing,
			ConsistencyPrompt: c.ConsistencyDescriptor,
		}
	}
	return seeds, nil
}
