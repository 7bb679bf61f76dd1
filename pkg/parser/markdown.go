package parser

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/scene"
)

const (
	fieldKeyID          = "id"
	fieldKeyDescription = "description"
	fieldKeyPrompt      = "prompt"
	fieldKeyShot        = "shot"
	fieldKeyAngle       = "angle"
	fieldKeyMovement    = "movement"
	fieldKeyCharacters  = "characters"
)

// StoryboardParser は Markdown 形式のストーリーボードを解析するためのインターフェースなのだ。
type StoryboardParser interface {
	// Parse はスクリプトのURLと内容を受け取り、構造化された Storyboard を返すのだ。
	Parse(scriptURL string, input string) (*domain.Storyboard, error)
}

// MarkdownParser はMarkdown形式を解析し、構造化データに変換する構造体です。
type MarkdownParser struct{}

// NewMarkdownParser は MarkdownParser を初期化するのだ。
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse は scriptURL を基に参照パスを解決し、Markdown テキストを domain.Storyboard に変換します。
// 最初のパネルより前にある見出し以外の行は、ストーリーボードの説明として連結します。
func (p *MarkdownParser) Parse(scriptURL string, input string) (*domain.Storyboard, error) {
	baseURL := resolveBaseURL(scriptURL)

	sb := &domain.Storyboard{}
	var (
		current     *domain.Panel
		description []string
	)

	addPreviousPanel := func() {
		if current != nil && current.HasContent() {
			sb.Panels = append(sb.Panels, *current)
		}
	}

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// "## Panel" は "# " にマッチしないので順序は気にしなくてよいのだ
		if m := TitleRegex.FindStringSubmatch(trimmed); m != nil {
			sb.Title = strings.TrimSpace(m[1])
			continue
		}

		if m := PanelRegex.FindStringSubmatch(trimmed); m != nil {
			addPreviousPanel()
			current = &domain.Panel{
				ReferenceURL: resolveFullPath(baseURL, strings.TrimSpace(m[1])),
			}
			continue
		}

		if current == nil {
			if !strings.HasPrefix(trimmed, "#") {
				description = append(description, trimmed)
			}
			continue
		}

		m := FieldRegex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		key, val := strings.ToLower(m[1]), strings.TrimSpace(m[2])
		switch key {
		case fieldKeyID:
			current.ID = val
		case fieldKeyDescription:
			current.Description = val
		case fieldKeyPrompt:
			current.VisualPrompt = val
		case fieldKeyShot:
			current.ShotType = val
			warnUnknown(key, scene.ShotTypes, val)
		case fieldKeyAngle:
			current.CameraAngle = val
			warnUnknown(key, scene.CameraAngles, val)
		case fieldKeyMovement:
			current.CameraMovement = val
			warnUnknown(key, scene.CameraMovements, val)
		case fieldKeyCharacters:
			current.CharacterIDs = splitList(val)
		default:
			slog.Debug("Markdown内に未知のフィールドキーが見つかりました", "key", key)
		}
	}

	addPreviousPanel()
	sb.Description = strings.Join(description, " ")

	if len(sb.Panels) == 0 {
		return nil, fmt.Errorf("有効なパネル情報が見つかりませんでした: %w", domain.ErrInvalidInput)
	}
	return sb, nil
}

// resolveFullPath はベースURLと相対パスから絶対URLを構築するのだ。
func resolveFullPath(baseURL string, refPath string) string {
	if refPath == "" {
		return ""
	}

	// SchemeとHostが存在すれば絶対URLとみなす
	u, err := url.Parse(refPath)
	if err == nil && u.Scheme != "" && u.Host != "" {
		return refPath
	}

	return baseURL + strings.TrimPrefix(refPath, "./")
}

// splitList はカンマ区切りの値を空要素を除いて分割します。
func splitList(val string) []string {
	var out []string
	for _, s := range strings.Split(val, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// warnUnknown は語彙に無い値をそのまま使うことをログに残します。
func warnUnknown(key string, vocabulary []string, val string) {
	if !scene.IsKnown(vocabulary, val) {
		slog.Debug("既知の語彙に無い値です。そのままプロンプトに使います", "key", key, "value", val)
	}
}
