package cmd

import (
	"fmt"

	"github.com/shouni/go-storyboard-kit/pkg/style"
	"github.com/spf13/cobra"
)

// presetsCmd は、組み込みのスタイルプリセットを一覧表示するのだ。
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "スタイルプリセットの一覧を表示するのだ。",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, key := range style.PresetKeys() {
			p, _ := style.Preset(key)
			printHeading(out, "%s", key)
			fmt.Fprintf(out, "  %s: %s\n", p.Name, p.Description)
			fmt.Fprintf(out, "  render: %s, aspect ratio: %s\n", p.TechnicalSpecs.RenderStyle, p.TechnicalSpecs.AspectRatio)
		}
		return nil
	},
}
