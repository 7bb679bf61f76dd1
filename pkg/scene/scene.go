package scene

import (
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// ライティングの語句
const (
	LightingNight    = "low-key lighting, moonlight, deep shadows"
	LightingMorning  = "golden hour lighting, warm morning sunlight"
	LightingSunset   = "golden hour lighting, warm sunset glow"
	LightingDramatic = "dramatic chiaroscuro lighting, strong contrast"
	LightingDefault  = "natural lighting, soft light"
)

// 構図の語句
const (
	CompositionCloseUp      = "centered composition, shallow depth of field, bokeh background"
	CompositionWide         = "rule of thirds, layered foreground and background depth"
	CompositionOverShoulder = "foreground framing, frame within a frame"
	CompositionTwoShot      = "balanced composition, negative space between subjects"
	CompositionDefault      = "rule of thirds composition"
)

type lightingRule struct {
	keywords []string
	phrase   string
}

// lightingRules は先頭から順に評価されます。順序を入れ替えてはいけません。
var lightingRules = []lightingRule{
	{keywords: []string{"night", "dark"}, phrase: LightingNight},
	{keywords: []string{"morning", "sunrise"}, phrase: LightingMorning},
	{keywords: []string{"sunset", "evening"}, phrase: LightingSunset},
	{keywords: []string{"dramatic", "tense"}, phrase: LightingDramatic},
}

// SelectLighting はシーン説明のキーワードからライティングの語句を選びます。
// どのキーワードにも一致しない場合はスタイルガイドの照明、それもなければ既定値を返します。
func SelectLighting(description string, guide *domain.StyleGuide) string {
	desc := strings.ToLower(description)
	for _, rule := range lightingRules {
		if containsAny(desc, rule.keywords...) {
			return rule.phrase
		}
	}
	if guide != nil && strings.TrimSpace(guide.Cinematography.Lighting) != "" {
		return guide.Cinematography.Lighting
	}
	return LightingDefault
}

// SelectComposition はショットタイプから構図の語句を選びます。
func SelectComposition(shotType string) string {
	s := strings.ToLower(shotType)
	switch {
	case strings.Contains(s, "close-up"):
		return CompositionCloseUp
	case containsAny(s, "wide", "establishing"):
		return CompositionWide
	case strings.Contains(s, "over-the-shoulder"):
		return CompositionOverShoulder
	case strings.Contains(s, "two-shot"):
		return CompositionTwoShot
	default:
		return CompositionDefault
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
