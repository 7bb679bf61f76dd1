package prompts

import "strings"

// 語句の並べ替えに使うバケットのキーワード。先に一致したバケットに入ります。
var (
	styleBucketKeywords       = []string{"photorealistic", "cinematic", "masterpiece"}
	subjectBucketKeywords     = []string{"character", "person", "face"}
	environmentBucketKeywords = []string{"location", "environment", "background"}
	technicalBucketKeywords   = []string{"shot", "angle", "lighting", "quality", "resolution"}
)

// OptimizePrompt は語句の重複を除いたうえで、
// スタイル → 被写体 → 環境 → その他 → 技術用語 の順に並べ替えます。
// 判定は大文字小文字を区別しない部分一致で、各バケット内の順序は入力順を保ちます。
func OptimizePrompt(phrases []string) []string {
	var style, subject, environment, rest, technical []string

	for _, p := range dedupe(phrases) {
		lower := strings.ToLower(p)
		switch {
		case containsAny(lower, styleBucketKeywords):
			style = append(style, p)
		case containsAny(lower, subjectBucketKeywords):
			subject = append(subject, p)
		case containsAny(lower, environmentBucketKeywords):
			environment = append(environment, p)
		case containsAny(lower, technicalBucketKeywords):
			technical = append(technical, p)
		default:
			rest = append(rest, p)
		}
	}

	out := make([]string, 0, len(style)+len(subject)+len(environment)+len(rest)+len(technical))
	out = append(out, style...)
	out = append(out, subject...)
	out = append(out, environment...)
	out = append(out, rest...)
	out = append(out, technical...)
	return out
}

// dedupe は前後の空白を除き、空文字と完全一致の重複を取り除きます。最初の出現が残ります。
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
