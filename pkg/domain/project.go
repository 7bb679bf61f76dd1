package domain

// Project は CLI やバッチ処理に渡すプロジェクト定義ファイルの構造です。
// StyleGuide が無く StylePreset が指定されていれば、プリセットからスタイルガイドを作ります。
// StyleBlend があれば、そのスタイルガイドを別のプリセットと混ぜます。
type Project struct {
	Title       string             `json:"title"`
	Characters  []Character        `json:"characters"`
	StyleGuide  *StyleGuide        `json:"style_guide,omitempty"`
	StylePreset string             `json:"style_preset,omitempty"`
	StyleBlend  *StyleBlend        `json:"style_blend,omitempty"`
	Panels      []Panel            `json:"panels"`
	Flags       *EnhancementFlags  `json:"flags,omitempty"`
	Settings    GenerationSettings `json:"settings"`
}

// StyleBlend はプロジェクトのスタイルガイドに混ぜるプリセットと比率です。
// Ratio は元のスタイルガイド側の重みで、省略時は 0.5 です。
type StyleBlend struct {
	Preset string   `json:"preset"`
	Ratio  *float64 `json:"ratio,omitempty"`
}

// EnhancementFlagsOrDefault は Flags が省略されていれば全段階有効のフラグを返します。
func (p Project) EnhancementFlagsOrDefault() EnhancementFlags {
	if p.Flags == nil {
		return DefaultEnhancementFlags()
	}
	return *p.Flags
}
