package publisher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/shouni/go-storyboard-kit/pkg/asset"
	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/shouni/go-storyboard-kit/pkg/generator"
	"github.com/shouni/go-storyboard-kit/pkg/parser"
)

type memoryWriter struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (w *memoryWriter) Write(_ context.Context, path string, r io.Reader, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files == nil {
		w.files = make(map[string][]byte)
	}
	w.files[path] = data
	return nil
}

func samplePanels() []domain.Panel {
	return []domain.Panel{
		{ID: "p1", VisualPrompt: "Aria in the rain", ShotType: "close-up", CharacterIDs: []string{"aria", "bram"}},
		{ID: "p2", Description: "empty street\nat night", ReferenceURL: "poses/walk.png"},
	}
}

func TestMarkdownPublisher_BuildPromptSheet(t *testing.T) {
	results := []*domain.ComposedPrompt{
		{Prompt: "Aria in the rain, [ARIA]: red hair", NegativePrompt: "blurry, watermark", Seed: domain.Int64Ptr(42)},
	}

	sheet := NewMarkdownPublisher().BuildPromptSheet("Rain", samplePanels(), results)

	for _, want := range []string{
		"# Rain\n",
		"## Panel 1\n",
		"- prompt: Aria in the rain, [ARIA]: red hair\n",
		"- negative: blurry, watermark\n",
		"- seed: 42\n",
		"- characters: aria, bram\n",
		"## Panel 2 [poses/walk.png]\n",
		"- description: empty street at night\n",
		"- status: failed\n",
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("シートに %q が含まれていません:\n%s", want, sheet)
		}
	}

	t.Run("シートをストーリーボードとして読み戻せること", func(t *testing.T) {
		sb, err := parser.NewMarkdownParser().Parse("", sheet)
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		if sb.Title != "Rain" || len(sb.Panels) != 2 {
			t.Fatalf("読み戻した結果が不正です: %+v", sb)
		}
		if sb.Panels[0].ShotType != "close-up" || len(sb.Panels[0].CharacterIDs) != 2 {
			t.Errorf("パネル1が不正です: %+v", sb.Panels[0])
		}
		if sb.Panels[1].ReferenceURL != "poses/walk.png" {
			t.Errorf("参照パスが失われています: %+v", sb.Panels[1])
		}
	})
}

func TestStoryboardPublisher_Publish(t *testing.T) {
	t.Run("画像とシートを書き出すこと", func(t *testing.T) {
		w := &memoryWriter{}
		images := []*generator.GenerationResult{
			nil,
			{Data: []byte("jpg"), MimeType: "image/jpeg"},
		}
		prompts := []*domain.ComposedPrompt{{Prompt: "a"}, {Prompt: "b"}}

		res, err := NewStoryboardPublisher(w).Publish(context.Background(), "Rain", samplePanels(), prompts, images, Options{OutputDir: "gs://bucket/out"})
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		wantSheet, _ := asset.ResolveOutputPath("gs://bucket/out", asset.DefaultPromptSheetName)
		imgDir, _ := asset.ResolveOutputPath("gs://bucket/out", asset.DefaultImageDir)
		wantImage, _ := asset.PanelImagePath(imgDir, 1, "image/jpeg")
		if res.SheetPath != wantSheet {
			t.Errorf("期待値 '%s', 実際の値 '%s'", wantSheet, res.SheetPath)
		}
		if res.ImagePaths[0] != "" || res.ImagePaths[1] != wantImage {
			t.Errorf("画像のパスが不正です: %v", res.ImagePaths)
		}
		if !strings.HasSuffix(wantImage, "panel_2.jpg") {
			t.Errorf("画像のファイル名が不正です: %s", wantImage)
		}
		if string(w.files[wantImage]) != "jpg" {
			t.Error("画像が書き込まれていません")
		}
		if !strings.Contains(string(w.files[res.SheetPath]), "## Panel 2 [images/panel_2.jpg]") {
			t.Errorf("シートが保存画像を参照していません:\n%s", w.files[res.SheetPath])
		}
	})

	t.Run("ローカルに書き出すこと", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested")
		res, err := NewStoryboardPublisher(nil).Publish(context.Background(), "Rain", samplePanels(), nil, nil, Options{OutputDir: dir})
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		data, err := os.ReadFile(res.SheetPath)
		if err != nil {
			t.Fatalf("シートが読めません: %v", err)
		}
		if !strings.HasPrefix(string(data), "# Rain") {
			t.Errorf("シートの内容が不正です:\n%s", data)
		}
	})

	t.Run("出力先が無い場合はエラー", func(t *testing.T) {
		if _, err := NewStoryboardPublisher(nil).Publish(context.Background(), "x", nil, nil, nil, Options{}); err == nil {
			t.Error("エラーが期待されました")
		}
	})
}

func TestStoryboardPublisher_DefaultWriter(t *testing.T) {
	t.Run("クライアント無しの既定ライターでは gs:// に書き出せないこと", func(t *testing.T) {
		_, err := NewStoryboardPublisher(nil).Publish(context.Background(), "Rain", samplePanels(), nil, nil, Options{OutputDir: "gs://bucket/out"})
		if err == nil {
			t.Error("GCS クライアントが無いのにエラーになりませんでした")
		}
	})
}
