package parser

import "regexp"

var (
	// TitleRegex は "# タイトル" 形式のタイトル行をキャプチャします。
	TitleRegex = regexp.MustCompile(`^#\s+(.+)`)

	// PanelRegex は "## Panel" で始まるパネル区切り行を特定します。
	// "## Panel 2 [poses/run.png]" のように角括弧があれば参照画像のパスとしてキャプチャします。
	PanelRegex = regexp.MustCompile(`^##\s+Panel\b[^\[]*(?:\[([^\]]*)\])?`)

	// FieldRegex は "- key: value" 形式のフィールド行をキャプチャします。
	FieldRegex = regexp.MustCompile(`^\s*-\s*([a-zA-Z_]+):\s*(.+)`)
)
