package domain

import (
	"encoding/json"
	"fmt"
)

// Traits はキャラクターの外見を構成する属性です。
// 空文字の属性は「未設定」として扱い、プロンプトには一切出力しません。
type Traits struct {
	Age                 string   `json:"age,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	Ethnicity           string   `json:"ethnicity,omitempty"`
	BodyType            string   `json:"body_type,omitempty"`
	HairStyle           string   `json:"hair_style,omitempty"`
	HairColor           string   `json:"hair_color,omitempty"`
	EyeColor            string   `json:"eye_color,omitempty"`
	ClothingStyle       string   `json:"clothing_style,omitempty"`
	DistinctiveFeatures []string `json:"distinctive_features,omitempty"`
}

// TraitsPatch は Traits の部分更新です。nil のフィールドは既存の値を維持します。
type TraitsPatch struct {
	Age                 *string  `json:"age,omitempty"`
	Gender              *string  `json:"gender,omitempty"`
	Ethnicity           *string  `json:"ethnicity,omitempty"`
	BodyType            *string  `json:"body_type,omitempty"`
	HairStyle           *string  `json:"hair_style,omitempty"`
	HairColor           *string  `json:"hair_color,omitempty"`
	EyeColor            *string  `json:"eye_color,omitempty"`
	ClothingStyle       *string  `json:"clothing_style,omitempty"`
	DistinctiveFeatures []string `json:"distinctive_features,omitempty"`
}

// Character はストーリーボードに登場するキャラクターの定義を保持します。
// VisualDescription と ConsistencyDescriptor は Traits と Name から導出される値で、
// 手で編集してはいけません。
type Character struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description,omitempty"`
	Traits                Traits   `json:"traits"`
	VisualDescription     string   `json:"visual_description"`
	ConsistencyDescriptor string   `json:"consistency_descriptor"`
	Seed                  *int64   `json:"seed,omitempty"`           // 生成時の一貫性を保つためのシード値
	ReferenceImages       []string `json:"reference_images,omitempty"` // 追記のみ
}

// CharactersMap はIDをキーとしたキャラクターの検索用マップなのだ。
type CharactersMap map[string]Character

// Apply は部分更新を適用した新しい Traits を返します。
func (t Traits) Apply(p TraitsPatch) Traits {
	merged := t.Clone()
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&merged.Age, p.Age)
	set(&merged.Gender, p.Gender)
	set(&merged.Ethnicity, p.Ethnicity)
	set(&merged.BodyType, p.BodyType)
	set(&merged.HairStyle, p.HairStyle)
	set(&merged.HairColor, p.HairColor)
	set(&merged.EyeColor, p.EyeColor)
	set(&merged.ClothingStyle, p.ClothingStyle)
	if p.DistinctiveFeatures != nil {
		merged.DistinctiveFeatures = append([]string(nil), p.DistinctiveFeatures...)
	}
	return merged
}

// Clone は Traits の防御的コピーを返します。
func (t Traits) Clone() Traits {
	c := t
	if t.DistinctiveFeatures != nil {
		c.DistinctiveFeatures = append([]string(nil), t.DistinctiveFeatures...)
	}
	return c
}

// Clone はスライスやポインタを共有しないキャラクターのコピーを返します。
func (c Character) Clone() Character {
	copied := c
	copied.Traits = c.Traits.Clone()
	if c.Seed != nil {
		s := *c.Seed
		copied.Seed = &s
	}
	if c.ReferenceImages != nil {
		copied.ReferenceImages = append([]string(nil), c.ReferenceImages...)
	}
	return copied
}

// String はキャラクターの情報を文字列で返すのだ。
func (c Character) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}

// BuildCharactersMap はスライス形式のデータを検索効率の良いマップ形式に変換するのだ。
func BuildCharactersMap(chars []Character) CharactersMap {
	m := make(CharactersMap, len(chars))
	for _, c := range chars {
		key := c.ID
		if key == "" {
			key = c.Name
		}
		m[key] = c
	}
	return m
}

// GetCharacters はJSONバイト列からキャラクターの一覧をパースして返します。
// この関数はステートレスであり、キャッシュを行いません。
func GetCharacters(charactersJSON []byte) ([]Character, error) {
	var chars []Character
	if err := json.Unmarshal(charactersJSON, &chars); err != nil {
		return nil, fmt.Errorf("キャラクター情報のJSONパースに失敗しました: %w", err)
	}
	return chars, nil
}

// Int64Ptr は値のポインタを返すヘルパーです。
func Int64Ptr(v int64) *int64 { return &v }

// StringPtr は値のポインタを返すヘルパーです。
func StringPtr(v string) *string { return &v }
