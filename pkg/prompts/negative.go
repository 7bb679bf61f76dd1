package prompts

import (
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// defaultNegativeTerms は人体の破綻・画質・アーティファクトを避けるための既定の除外語です。
var defaultNegativeTerms = []string{
	"blurry", "low quality", "low resolution", "worst quality", "jpeg artifacts",
	"pixelated", "out of focus", "overexposed", "underexposed", "grainy",
	"noisy", "bad anatomy", "deformed", "disfigured", "mutated",
	"extra limbs", "missing limbs", "extra fingers", "fused fingers", "poorly drawn hands",
	"poorly drawn face", "malformed hands", "long neck", "cross-eyed", "asymmetrical eyes",
	"duplicate", "cloned face", "cropped", "out of frame", "watermark",
	"signature", "text", "logo", "username", "stock photo",
	"ugly", "bad proportions", "cartoon", "anime", "3d render",
}

// 描画スタイルごとに除外語リストから外す語と、追加する語
var (
	photorealisticExcludes = []string{"3d render", "cartoon", "anime"}
	animatedExcludes       = []string{"photorealistic", "photo"}
	animatedAdditions      = []string{"realistic", "photo", "photograph"}
)

// BuildNegativePrompt は描画スタイルとユーザー指定の除外語からネガティブプロンプトを組み立てます。
// 結果はキャッシュせず、呼び出しのたびに既定リストから計算し直すのだ。
func BuildNegativePrompt(renderStyle domain.RenderStyle, userNegative string) string {
	terms := make([]string, 0, len(defaultNegativeTerms)+len(animatedAdditions))

	switch renderStyle {
	case domain.RenderPhotorealistic:
		terms = append(terms, withoutMatching(defaultNegativeTerms, photorealisticExcludes)...)
	case domain.RenderAnimated:
		terms = append(terms, withoutMatching(defaultNegativeTerms, animatedExcludes)...)
		terms = append(terms, animatedAdditions...)
	default:
		terms = append(terms, defaultNegativeTerms...)
	}

	terms = append(terms, strings.Split(userNegative, ",")...)

	return strings.Join(dedupe(terms), ", ")
}

// withoutMatching は excludes のいずれかを部分文字列として含む語を取り除きます。
func withoutMatching(terms, excludes []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if containsAny(strings.ToLower(t), excludes) {
			continue
		}
		out = append(out, t)
	}
	return out
}
