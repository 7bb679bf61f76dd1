package domain

// Storyboard は複数のパネルから成るストーリーボード全体の構造です。
type Storyboard struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Panels      []Panel `json:"panels"`
}

// Panel はストーリーボードの1コマで、1回の生成リクエストに変換されます。
type Panel struct {
	ID             string   `json:"id,omitempty"`
	Description    string   `json:"description"`
	VisualPrompt   string   `json:"visual_prompt"`
	ShotType       string   `json:"shot_type,omitempty"`
	CameraAngle    string   `json:"camera_angle,omitempty"`
	CameraMovement string   `json:"camera_movement,omitempty"`
	CharacterIDs   []string `json:"character_ids,omitempty"`
	ReferenceURL   string   `json:"reference_url,omitempty"` // ポーズ参照用の画像

	// GeneratedImageURL は生成結果の保存先。入力としては扱いません。
	GeneratedImageURL string `json:"-"`
}

// Panels はパネルのスライスです。
type Panels []Panel

// GenerationSettings は生成リクエストごとの設定です。
// Model はプロンプト長や書式の制約を引くためだけに使います。
type GenerationSettings struct {
	Model          string `json:"model,omitempty"`
	Seed           *int64 `json:"seed,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
}

// EnhancementFlags はプロンプト合成のどの段階を有効にするかを指定します。
type EnhancementFlags struct {
	UseCharacterReference bool     `json:"use_character_reference"`
	UseStyleGuide         bool     `json:"use_style_guide"`
	AddCinematography     bool     `json:"add_cinematography"`
	AddLighting           bool     `json:"add_lighting"`
	AddComposition        bool     `json:"add_composition"`
	AddTechnicalDetails   bool     `json:"add_technical_details"`
	CustomModifiers       []string `json:"custom_modifiers,omitempty"`
}

// DefaultEnhancementFlags はすべての段階を有効にしたフラグを返します。
func DefaultEnhancementFlags() EnhancementFlags {
	return EnhancementFlags{
		UseCharacterReference: true,
		UseStyleGuide:         true,
		AddCinematography:     true,
		AddLighting:           true,
		AddComposition:        true,
		AddTechnicalDetails:   true,
	}
}

// SceneContext はシーン単位でキャラクター描写に上乗せする情報です。
// ClothingOverride はその呼び出しに限り Traits の服装を置き換えます。
type SceneContext struct {
	Emotion          string   `json:"emotion,omitempty"`
	Action           string   `json:"action,omitempty"`
	ClothingOverride string   `json:"clothing_override,omitempty"`
	Props            []string `json:"props,omitempty"`
}

// ComposedPrompt はプロンプト合成の結果です。保存せず、生成のたびに再計算します。
type ComposedPrompt struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Seed           *int64 `json:"seed,omitempty"`
}

// SeedPrompt はバッチ生成における1パネル分のシードと一貫性プロンプトです。
type SeedPrompt struct {
	Index             int    `json:"index"`
	Seed              int64  `json:"seed"`
	ConsistencyPrompt string `json:"consistency_prompt"`
}
