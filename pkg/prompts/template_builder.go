package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

const (
	// ModeSystem はパネル生成用のシステムプロンプトです。
	ModeSystem = "system"
	// ModeSheet はキャラクターシート生成用のシステムプロンプトです。
	ModeSheet = "sheet"
)

//go:embed templates/*.md
var templateFS embed.FS

// modeFiles はモードとテンプレートファイルを紐づけるマップなのだ。
var modeFiles = map[string]string{
	ModeSystem: "templates/system.md",
	ModeSheet:  "templates/sheet.md",
}

// TemplateData はシステムプロンプトのテンプレートに渡すデータ構造です。
type TemplateData struct {
	Guide      *domain.StyleGuide
	Camera     *domain.CameraSetup
	Characters []string
	Descriptor string
}

// PromptBuilder は、システムプロンプトを構築する契約です。
type PromptBuilder interface {
	Build(mode string, data TemplateData) (string, error)
}

// TextPromptBuilder はテンプレートの構成を管理し、モード選択のロジックを内包します。
type TextPromptBuilder struct {
	templates map[string]*template.Template
}

// NewTextPromptBuilder は埋め込みテンプレートを解析して TextPromptBuilder を初期化します。
func NewTextPromptBuilder() (*TextPromptBuilder, error) {
	parsed := make(map[string]*template.Template, len(modeFiles))
	for mode, file := range modeFiles {
		content, err := templateFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("プロンプトテンプレート '%s' の読み込みに失敗しました: %w", mode, err)
		}
		if len(strings.TrimSpace(string(content))) == 0 {
			return nil, fmt.Errorf("プロンプトテンプレート '%s' の内容が空です", mode)
		}

		tmpl, err := template.New(mode).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("プロンプト '%s' の解析に失敗: %w", mode, err)
		}
		parsed[mode] = tmpl
	}

	return &TextPromptBuilder{templates: parsed}, nil
}

// Build は、要求されたモードに応じて適切なテンプレートを実行します。
func (b *TextPromptBuilder) Build(mode string, data TemplateData) (string, error) {
	tmpl, ok := b.templates[mode]
	if !ok {
		return "", fmt.Errorf("不明なモードです: '%s'", mode)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("プロンプトテンプレートの実行に失敗しました: %w", err)
	}

	return strings.TrimSpace(sb.String()), nil
}
