package prompts

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// Transform はモード固有の文字列変換です。
type Transform func(string) string

// ModelProfile は生成モデルごとのプロンプト制約です。
type ModelProfile struct {
	// MaxLength はサフィックスを含めた最大文字数（rune 単位）。0 なら無制限。
	MaxLength  int
	Transforms []Transform
	// Suffix は末尾に付ける固定のフラグ（例: "--v 6"）。
	Suffix string
}

const ellipsis = "..."

// DefaultModelProfiles はモデルIDごとの既定プロファイルを返します。
// 返り値は毎回新しいマップなので、呼び出し側で変更して構いません。
func DefaultModelProfiles() map[string]ModelProfile {
	return map[string]ModelProfile{
		"dall-e-3":                   {MaxLength: 4000},
		"dall-e-2":                   {MaxLength: 1000, Transforms: []Transform{StripBrackets}},
		"midjourney":                 {MaxLength: 6000, Suffix: "--v 6 --style raw"},
		"stable-diffusion-xl":        {MaxLength: 1000, Transforms: []Transform{EmphasizeTerms}},
		"stable-diffusion-1.5":       {MaxLength: 380, Transforms: []Transform{EmphasizeTerms}},
		"flux-pro":                   {MaxLength: 2000},
		"gemini-3-pro-image-preview": {MaxLength: 8000},
		"imagen-4":                   {MaxLength: 2000},
	}
}

var (
	bracketSegment = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	emphasisTerms  = regexp.MustCompile(`(?i)\b(high quality|character|face|cinematic)\b`)
)

// StripBrackets は [..] や (..) の区間を取り除き、空になった語句を詰めます。
func StripBrackets(prompt string) string {
	stripped := bracketSegment.ReplaceAllString(prompt, "")
	parts := strings.Split(stripped, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(p), ":"))
		if p != "" {
			out = append(out, strings.Join(strings.Fields(p), " "))
		}
	}
	return strings.Join(out, ", ")
}

// EmphasizeTerms は重要語を (term:1.2) の重み付き構文で囲みます。
func EmphasizeTerms(prompt string) string {
	return emphasisTerms.ReplaceAllString(prompt, "($1:1.2)")
}

// Truncate は rune 数で max を超える文字列を "..." 終端で切り詰めます。
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string([]rune(s)[:max])
	}
	head := strings.TrimRight(string([]rune(s)[:max-len(ellipsis)]), ", ")
	return head + ellipsis
}

// apply はプロファイルの変換・サフィックス付与・切り詰めを行います。
func (p ModelProfile) apply(prompt string) string {
	for _, t := range p.Transforms {
		prompt = t(prompt)
	}
	if p.Suffix == "" {
		return Truncate(prompt, p.MaxLength)
	}

	limit := p.MaxLength
	if limit > 0 {
		limit -= utf8.RuneCountInString(p.Suffix) + 1
		if limit < 1 {
			limit = 1
		}
	}
	return Truncate(prompt, limit) + " " + p.Suffix
}

// OptimizeForModel はモデル別のプロファイルを適用します。
// テーブルに無いモデルは *domain.UnsupportedModelError を返すので、
// 呼び出し側は最適化前のプロンプトで続行してください。
func (c *Composer) OptimizeForModel(prompt, model string) (string, error) {
	p, ok := c.profiles[strings.ToLower(strings.TrimSpace(model))]
	if !ok {
		return prompt, &domain.UnsupportedModelError{Model: model}
	}
	return p.apply(prompt), nil
}
