package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// planCmd は、キャラクターのバッチシード計画を表示するのだ。
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "キャラクターのバッチシードを計画するのだ。",
	Long: `プロジェクトのキャラクターに対して、パネルごとのシード（10刻み）と一貫性プロンプトを表示するのだ。
--count を省略するとプロジェクトのパネル数を使うのだよ。`,
	Args: cobra.NoArgs,
	RunE: planCommand,
}

func init() {
	planCmd.Flags().StringVarP(&opts.ProjectFile, "project", "p", "", "プロジェクト定義の JSON パスなのだ。")
	planCmd.Flags().StringVarP(&opts.CharacterID, "char", "c", "", "対象のキャラクターIDなのだ。")
	planCmd.Flags().IntVarP(&opts.Count, "count", "n", 0, "計画するパネル数なのだ。")
}

func planCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if opts.ProjectFile == "" || opts.CharacterID == "" {
		return errors.New("--project と --char を指定してほしいのだ")
	}

	m, err := newManager()
	if err != nil {
		return err
	}
	project, err := m.LoadProject(ctx, opts.ProjectFile)
	if err != nil {
		return err
	}
	sess, err := m.ApplyProject(project)
	if err != nil {
		return err
	}

	count := opts.Count
	if count == 0 {
		count = len(sess.Panels)
	}
	seeds, err := m.Planner().Plan(opts.CharacterID, count)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(seeds) > 0 {
		printHeading(out, "%s", seeds[0].ConsistencyPrompt)
	}
	for _, sp := range seeds {
		fmt.Fprintf(out, "panel %d\tseed %d\n", sp.Index+1, sp.Seed)
	}
	return nil
}
