package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
)

// stdinReader は "-" を標準入力として扱い、それ以外を remoteio のリーダーに委ねるのだ。
type stdinReader struct {
	remoteio.InputReader
}

// Open は "-" なら標準入力を、それ以外はローカルファイルや gs:// / s3:// のオブジェクトを開きます。
func (r stdinReader) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return r.InputReader.Open(ctx, path)
}

// NewLocalReader はクラウドのクライアントを持たない remoteio のリーダーを返します。
// ローカルパスと標準入力だけを読めればよい CLI の既定値なのだ。
func NewLocalReader() remoteio.InputReader {
	return stdinReader{InputReader: remoteio.NewUniversalInputReader(nil, nil)}
}

// ProjectParser は JSON 形式のプロジェクト定義を解析する構造体です。
type ProjectParser struct {
	reader remoteio.InputReader
}

// NewProjectParser は新しい ProjectParser を生成します。r が nil なら NewLocalReader を使います。
func NewProjectParser(r remoteio.InputReader) *ProjectParser {
	if r == nil {
		r = NewLocalReader()
	}
	return &ProjectParser{reader: r}
}

// ParseFromPath は指定されたパスからプロジェクト定義を読み込み、domain.Project を返します。
func (p *ProjectParser) ParseFromPath(ctx context.Context, projectFile string) (*domain.Project, error) {
	slog.InfoContext(ctx, "プロジェクトファイルを読み込んでいます", "path", projectFile)
	rc, err := p.reader.Open(ctx, projectFile)
	if err != nil {
		return nil, fmt.Errorf("プロジェクトファイルのオープンに失敗しました (%s): %w", projectFile, err)
	}
	defer rc.Close()

	return ParseProject(rc)
}

// ParseProject は JSON を読み込んでプロジェクト定義を返します。
// 名前の無いキャラクターと重複したキャラクターIDは ErrInvalidInput になるのだ。
func ParseProject(r io.Reader) (*domain.Project, error) {
	project := &domain.Project{}
	if err := json.NewDecoder(r).Decode(project); err != nil {
		return nil, fmt.Errorf("プロジェクトJSONのパースに失敗しました: %w", err)
	}

	seen := make(map[string]struct{}, len(project.Characters))
	for _, c := range project.Characters {
		if c.Name == "" {
			return nil, fmt.Errorf("名前の無いキャラクターが含まれています: %w", domain.ErrInvalidInput)
		}
		if c.ID == "" {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("キャラクターID %q が重複しています: %w", c.ID, domain.ErrInvalidInput)
		}
		seen[c.ID] = struct{}{}
	}
	return project, nil
}
