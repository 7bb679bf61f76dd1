package publisher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-storyboard-kit/pkg/asset"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/generator"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	SheetPath  string   // 生成されたプロンプトシートのパス
	ImagePaths []string // 保存された画像のパス。保存しなかったパネルは空文字
}

// StoryboardPublisher は成果物の永続化を担います。
type StoryboardPublisher struct {
	writer   remoteio.OutputWriter
	markdown *MarkdownPublisher
}

// NewStoryboardPublisher は StoryboardPublisher を生成します。
// writer が nil ならクラウドのクライアントを持たない remoteio のライターを使うので、書き出せるのはローカルだけなのだ。
func NewStoryboardPublisher(writer remoteio.OutputWriter) *StoryboardPublisher {
	if writer == nil {
		writer = remoteio.NewUniversalIOWriter(nil, nil)
	}
	return &StoryboardPublisher{
		writer:   writer,
		markdown: NewMarkdownPublisher(),
	}
}

// Publish は画像の保存とプロンプトシートの書き出しを一括して実行し、生成されたファイル情報を返すのだ。
// images は panels と同じ index で対応し、nil の要素は保存しません。
func (p *StoryboardPublisher) Publish(
	ctx context.Context,
	title string,
	panels []domain.Panel,
	prompts []*domain.ComposedPrompt,
	images []*generator.GenerationResult,
	opts Options,
) (PublishResult, error) {
	result := PublishResult{}
	if opts.OutputDir == "" {
		return result, errors.New("出力ディレクトリが指定されていません")
	}

	sheetPath, err := asset.ResolveOutputPath(opts.OutputDir, asset.DefaultPromptSheetName)
	if err != nil {
		return result, err
	}
	imgDir, err := asset.ResolveOutputPath(opts.OutputDir, asset.DefaultImageDir)
	if err != nil {
		return result, err
	}

	saved, err := p.saveImages(ctx, images, imgDir)
	if err != nil {
		return result, fmt.Errorf("画像の書き込みに失敗しました: %w", err)
	}
	result.ImagePaths = saved

	// シートからは出力ディレクトリ基準の相対パスで参照するのだ
	relative := make([]string, len(saved))
	for i, fullPath := range saved {
		if fullPath != "" {
			relative[i] = path.Join(asset.DefaultImageDir, filepath.Base(fullPath))
		}
	}

	content := p.markdown.buildSheet(title, panels, prompts, relative)
	if err := p.writer.Write(ctx, sheetPath, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("プロンプトシートの書き込みに失敗しました: %w", err)
	}
	result.SheetPath = sheetPath

	slog.InfoContext(ctx, "プロンプトシートを出力しました", "path", sheetPath, "panels", len(panels))
	return result, nil
}

// saveImages は画像データを保存し、パネルと同じ index のパスを返します。
func (p *StoryboardPublisher) saveImages(ctx context.Context, images []*generator.GenerationResult, baseDir string) ([]string, error) {
	paths := make([]string, len(images))
	for i, img := range images {
		if img == nil || len(img.Data) == 0 {
			continue
		}
		fullPath, err := asset.PanelImagePath(baseDir, i, img.MimeType)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}
		if err := p.writer.Write(ctx, fullPath, bytes.NewReader(img.Data), img.MimeType); err != nil {
			return nil, fmt.Errorf("画像の書き込みに失敗しました %s: %w", fullPath, err)
		}
		paths[i] = fullPath
	}
	return paths, nil
}
