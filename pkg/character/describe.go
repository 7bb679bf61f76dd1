package character

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// consistencySuffix は一貫性記述子の末尾に付ける固定の強調語句です。
const consistencySuffix = "same person, consistent appearance, recognizable features"

// TraitPhrases は Traits を固定順の語句に変換します。
// 順序: 年齢 → 性別 → 民族 → 体型 → 髪 → 瞳 → 服装 → 特徴（そのまま）
// 未設定の属性はスキップされ、プレースホルダーは出力しません。
func TraitPhrases(t domain.Traits) []string {
	var parts []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	if age := strings.TrimSpace(t.Age); age != "" {
		if _, err := strconv.Atoi(age); err == nil {
			add(fmt.Sprintf("%s years old", age))
		} else {
			add(age)
		}
	}
	add(t.Gender)
	add(t.Ethnicity)
	if body := strings.TrimSpace(t.BodyType); body != "" {
		add(body + " build")
	}
	add(hairPhrase(t.HairStyle, t.HairColor))
	if eye := strings.TrimSpace(t.EyeColor); eye != "" {
		add(eye + " eyes")
	}
	if cloth := strings.TrimSpace(t.ClothingStyle); cloth != "" {
		add("wearing " + cloth)
	}
	for _, f := range t.DistinctiveFeatures {
		add(f)
	}
	return parts
}

func hairPhrase(style, color string) string {
	style, color = strings.TrimSpace(style), strings.TrimSpace(color)
	switch {
	case style != "" && color != "":
		return fmt.Sprintf("%s %s hair", style, color)
	case style != "":
		return style + " hair"
	case color != "":
		return color + " hair"
	default:
		return ""
	}
}

// DescribeTraits は Traits から視覚的な説明文を生成します。
// 例: {HairColor: "red", EyeColor: "green"} → "red hair, green eyes"
func DescribeTraits(t domain.Traits) string {
	return strings.Join(TraitPhrases(t), ", ")
}

// BuildConsistencyDescriptor は名前と説明文から一貫性記述子を組み立てます。
// 説明文が空の場合は名前タグの直後に強調語句が続くのだ。
func BuildConsistencyDescriptor(name, visual string) string {
	tag := fmt.Sprintf("[%s]:", strings.ToUpper(strings.TrimSpace(name)))
	if visual == "" {
		return fmt.Sprintf("%s %s", tag, consistencySuffix)
	}
	return fmt.Sprintf("%s %s, %s", tag, visual, consistencySuffix)
}

// derive は派生フィールドを Traits と Name から再計算します。
func derive(c *domain.Character) {
	c.VisualDescription = DescribeTraits(c.Traits)
	c.ConsistencyDescriptor = BuildConsistencyDescriptor(c.Name, c.VisualDescription)
}

// ScenePrompt はシーン情報を一貫性記述子に追記したプロンプトを返します。
// 服装の上書きがある場合、その呼び出しに限り Traits の服装を置き換えます。
func ScenePrompt(c domain.Character, sc *domain.SceneContext) string {
	if sc == nil {
		return BuildConsistencyDescriptor(c.Name, DescribeTraits(c.Traits))
	}

	traits := c.Traits
	if strings.TrimSpace(sc.ClothingOverride) != "" {
		traits = traits.Clone()
		traits.ClothingStyle = ""
	}

	parts := []string{BuildConsistencyDescriptor(c.Name, DescribeTraits(traits))}
	if e := strings.TrimSpace(sc.Emotion); e != "" {
		parts = append(parts, e+" expression")
	}
	if a := strings.TrimSpace(sc.Action); a != "" {
		parts = append(parts, a)
	}
	if o := strings.TrimSpace(sc.ClothingOverride); o != "" {
		parts = append(parts, "wearing "+o)
	}
	if props := nonEmpty(sc.Props); len(props) > 0 {
		parts = append(parts, "holding "+strings.Join(props, ", "))
	}
	return strings.Join(parts, ", ")
}

// referenceSheetTemplate はキャラクターシート用の固定テンプレートです。
const referenceSheetTemplate = "character reference sheet, %s, " +
	"multiple views: front view, side view, three-quarter view, back view, " +
	"expressions: neutral, smiling, serious, surprised, " +
	"turnaround, model sheet, white background, full body, consistent proportions"

// ReferenceSheet は一貫性記述子を埋め込んだキャラクターシートのプロンプトを返します。
func ReferenceSheet(descriptor string) string {
	return fmt.Sprintf(referenceSheetTemplate, descriptor)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
