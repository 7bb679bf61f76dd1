package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/shouni/go-storyboard-kit/pkg/config"
	"github.com/shouni/go-storyboard-kit/pkg/workflow"
	"github.com/spf13/cobra"
)

// Options は CLI フラグから渡される実行時のパラメータなのだ。
type Options struct {
	Verbose bool

	ProjectFile    string // --project
	StoryboardFile string // --storyboard
	OutputDir      string // --output
	Model          string // --model

	CharacterID string // --char
	Count       int    // --count
}

var opts Options

var heading = color.New(color.FgCyan, color.Bold)

var rootCmd = &cobra.Command{
	Use:   "storyboard",
	Short: "キャラクターの一貫性を保った画像生成プロンプトを合成するのだ。",
	Long: `キャラクターの特徴、スタイルガイド、シーンの説明から、
生成用のプロンプト、ネガティブプロンプト、再現可能なシードを組み立てるのだ。`,
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "デバッグログを出力するのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Model, "model", "", "プロンプトを最適化するモデルIDなのだ（未指定なら STORYBOARD_MODEL）。")
}

// preRunAppE は、コマンド実行前にログの出力レベルを設定するのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// newManager は環境変数の設定に CLI フラグを重ねて Manager を構築するのだ。
func newManager() (*workflow.Manager, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.Model != "" {
		cfg.Model = opts.Model
	}
	return workflow.New(cfg)
}

// printHeading は色付きの見出しを出力するのだ。
func printHeading(w io.Writer, format string, args ...any) {
	heading.Fprintf(w, format+"\n", args...)
}

func init() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(presetsCmd, composeCmd, planCmd, sheetCmd)
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("エラー: %v", err))
		os.Exit(1)
	}
}
