package asset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultImageDir は生成された画像を格納するデフォルトのディレクトリ名です。
	DefaultImageDir = "images"
	// DefaultPromptSheetName はプロンプトシートのデフォルト Markdown ファイル名です。
	DefaultPromptSheetName = "prompt_sheet.md"
	// DefaultPanelFileName はパネル画像の共通のベースファイル名です。
	DefaultPanelFileName = "panel.png"
)

// PanelFileRegex はパネル画像 (panel_1.png, panel_2.jpg 等) に一致します
var PanelFileRegex = createIndexedRegex(DefaultPanelFileName)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// GenerateIndexedPath は、指定されたベースパスの拡張子の前に連番を挿入し、
// 新しいパス文字列を生成します。index は1以上の整数である必要があります。
// 例: "path/to/image.png", 1 -> "path/to/image_1.png"
func GenerateIndexedPath(basePath string, index int) (string, error) {
	return urlpath.GenerateIndexedPath(basePath, index)
}

// PanelImagePath は画像ディレクトリ、パネルの index (0 始まり)、MIME タイプから保存先を決めます。
func PanelImagePath(imageDir string, index int, mimeType string) (string, error) {
	name := strings.TrimSuffix(DefaultPanelFileName, filepath.Ext(DefaultPanelFileName)) + extensionFor(mimeType)
	basePath, err := ResolveOutputPath(imageDir, name)
	if err != nil {
		return "", err
	}
	return GenerateIndexedPath(basePath, index+1)
}

// extensionFor は MIME タイプに対応する拡張子を返します。不明な場合は .png なのだ。
func extensionFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// createIndexedRegex は、ファイル名に基づきインデックス付きファイル用の正規表現を生成します。
// 例: "panel.png" -> ^panel_\d+\.(png|jpg|webp)$
func createIndexedRegex(fileName string) *regexp.Regexp {
	baseName := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	pattern := fmt.Sprintf(`^%s_\d+\.(png|jpg|webp)$`, regexp.QuoteMeta(baseName))
	return regexp.MustCompile(pattern)
}
