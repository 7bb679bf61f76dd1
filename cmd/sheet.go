package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// sheetCmd は、キャラクターシート生成用のプロンプトを表示するのだ。
var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "キャラクターシート用のプロンプトを表示するのだ。",
	Args:  cobra.NoArgs,
	RunE:  sheetCommand,
}

func init() {
	sheetCmd.Flags().StringVarP(&opts.ProjectFile, "project", "p", "", "プロジェクト定義の JSON パスなのだ。")
	sheetCmd.Flags().StringVarP(&opts.CharacterID, "char", "c", "", "対象のキャラクターIDなのだ。")
}

func sheetCommand(cmd *cobra.Command, args []string) error {
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
	if _, err := m.ApplyProject(project); err != nil {
		return err
	}

	sheet, err := m.ReferenceSheet(opts.CharacterID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeading(out, "PROMPT")
	fmt.Fprintln(out, sheet.Prompt)
	printHeading(out, "SYSTEM PROMPT")
	fmt.Fprintln(out, sheet.SystemPrompt)
	if sheet.Seed != nil {
		printHeading(out, "SEED")
		fmt.Fprintln(out, *sheet.Seed)
	}
	return nil
}
