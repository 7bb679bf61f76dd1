package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// runCommand はフラグの状態をリセットしてからコマンドを実行し、標準出力を返します。
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts = Options{}
	color.NoColor = true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const testProject = `{
	"title": "CLI",
	"characters": [{"id": "aria", "name": "Aria", "seed": 100, "traits": {"hair_color": "red"}}],
	"panels": [
		{"visual_prompt": "Aria on a bridge", "character_ids": ["aria"]},
		{"visual_prompt": "Aria at the station", "character_ids": ["aria"]}
	]
}`

func writeProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	if err := os.WriteFile(path, []byte(testProject), 0o644); err != nil {
		t.Fatalf("準備に失敗: %v", err)
	}
	return path
}

func TestPresetsCommand(t *testing.T) {
	out, err := runCommand(t, "presets")
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	for _, key := range []string{"film-noir", "cyberpunk-scifi", "hollywood-blockbuster"} {
		if !strings.Contains(out, key) {
			t.Errorf("%s が一覧にありません:\n%s", key, out)
		}
	}
}

func TestComposeCommand(t *testing.T) {
	t.Run("標準出力にシートを表示すること", func(t *testing.T) {
		out, err := runCommand(t, "compose", "--project", writeProject(t), "--char", "aria")
		if err != nil {
			t.Fatalf("予期せぬエラー: %v", err)
		}
		for _, want := range []string{"# CLI", "- seed: 100\n", "- seed: 110\n", "[ARIA]"} {
			if !strings.Contains(out, want) {
				t.Errorf("%q が出力にありません:\n%s", want, out)
			}
		}
	})

	t.Run("入力が無い場合はエラー", func(t *testing.T) {
		if _, err := runCommand(t, "compose"); err == nil {
			t.Error("エラーが期待されました")
		}
	})
}

func TestPlanAndSheetCommand(t *testing.T) {
	project := writeProject(t)

	out, err := runCommand(t, "plan", "--project", project, "--char", "aria", "--count", "3")
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	for _, want := range []string{"panel 1\tseed 100", "panel 3\tseed 120"} {
		if !strings.Contains(out, want) {
			t.Errorf("%q が出力にありません:\n%s", want, out)
		}
	}

	out, err = runCommand(t, "sheet", "--project", project, "--char", "aria")
	if err != nil {
		t.Fatalf("予期せぬエラー: %v", err)
	}
	if !strings.Contains(out, "character reference sheet") || !strings.Contains(out, "[ARIA]: red hair") {
		t.Errorf("シートのプロンプトが不正です:\n%s", out)
	}

	if _, err := runCommand(t, "sheet", "--project", project, "--char", "nobody"); err == nil {
		t.Error("存在しないキャラクターでエラーになりませんでした")
	}
}
