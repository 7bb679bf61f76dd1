package publisher

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// MarkdownPublisher は、合成済みプロンプトを人が確認できる Markdown のプロンプトシートに整形します。
// パネル見出しと "- key: value" の書式は parser.MarkdownParser と揃えてあるので、
// 出力したシートはそのままストーリーボードとして読み戻せるのだ。
type MarkdownPublisher struct{}

func NewMarkdownPublisher() *MarkdownPublisher {
	return &MarkdownPublisher{}
}

// BuildPromptSheet は、タイトル、パネル、合成結果を統合した Markdown 文字列を生成します。
// results は panels と同じ index で対応し、nil や不足分は合成失敗として出力します。
func (mp *MarkdownPublisher) BuildPromptSheet(title string, panels []domain.Panel, results []*domain.ComposedPrompt) string {
	return mp.buildSheet(title, panels, results, nil)
}

func (mp *MarkdownPublisher) buildSheet(title string, panels []domain.Panel, results []*domain.ComposedPrompt, imagePaths []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)

	for i, panel := range panels {
		ref := panel.ReferenceURL
		if i < len(imagePaths) && imagePaths[i] != "" {
			ref = imagePaths[i]
		}
		if ref != "" {
			fmt.Fprintf(&sb, "## Panel %d [%s]\n", i+1, ref)
		} else {
			fmt.Fprintf(&sb, "## Panel %d\n", i+1)
		}

		writeField(&sb, "id", panel.ID)
		writeField(&sb, "description", panel.Description)
		writeField(&sb, "shot", panel.ShotType)
		writeField(&sb, "angle", panel.CameraAngle)
		writeField(&sb, "movement", panel.CameraMovement)
		writeField(&sb, "characters", strings.Join(panel.CharacterIDs, ", "))

		var res *domain.ComposedPrompt
		if i < len(results) {
			res = results[i]
		}
		if res == nil {
			writeField(&sb, "prompt", panel.VisualPrompt)
			sb.WriteString("- status: failed\n\n")
			continue
		}
		writeField(&sb, "prompt", res.Prompt)
		writeField(&sb, "negative", res.NegativePrompt)
		if res.Seed != nil {
			fmt.Fprintf(&sb, "- seed: %d\n", *res.Seed)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeField は値が空でないときだけフィールド行を出力します。改行はパーサーが扱えないので空白に置き換えるのだ。
func writeField(sb *strings.Builder, key, val string) {
	val = strings.Join(strings.Fields(val), " ")
	if val == "" {
		return
	}
	fmt.Fprintf(sb, "- %s: %s\n", key, val)
}
