package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shouni/go-storyboard-kit/pkg/domain"
	"github.com/spf13/cobra"
)

// composeCmd は、プロジェクトまたはストーリーボードの全パネルのプロンプトを合成するのだ。
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "パネルごとのプロンプトを合成するのだ。",
	Long: `--project の JSON か --storyboard の Markdown からパネルを読み込み、
プロンプト、ネガティブプロンプト、シードを合成するのだ。
両方を指定した場合は、キャラクターとスタイルをプロジェクトから、パネルをストーリーボードから使うのだよ。
--char を指定すると、そのキャラクターのバッチシードをパネル順に割り当てるのだ。`,
	Args: cobra.NoArgs,
	RunE: composeCommand,
}

func init() {
	composeCmd.Flags().StringVarP(&opts.ProjectFile, "project", "p", "", "プロジェクト定義の JSON パスなのだ（'-'で標準入力）。")
	composeCmd.Flags().StringVarP(&opts.StoryboardFile, "storyboard", "s", "", "ストーリーボードの Markdown パスなのだ。")
	composeCmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "プロンプトシートの出力先ディレクトリなのだ。未指定なら標準出力に表示するのだ。")
	composeCmd.Flags().StringVarP(&opts.CharacterID, "char", "c", "", "バッチシードを割り当てるキャラクターIDなのだ。")
}

func composeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if opts.ProjectFile == "" && opts.StoryboardFile == "" {
		return errors.New("--project または --storyboard を指定してほしいのだ")
	}

	m, err := newManager()
	if err != nil {
		return err
	}

	project := &domain.Project{}
	if opts.ProjectFile != "" {
		if project, err = m.LoadProject(ctx, opts.ProjectFile); err != nil {
			return err
		}
	}
	sess, err := m.ApplyProject(project)
	if err != nil {
		return err
	}

	panels := sess.Panels
	if opts.StoryboardFile != "" {
		sb, err := m.LoadStoryboard(ctx, opts.StoryboardFile)
		if err != nil {
			return err
		}
		panels = sb.Panels
		if sess.Title == "" {
			sess.Title = sb.Title
		}
	}
	if len(panels) == 0 {
		return fmt.Errorf("合成するパネルがありません: %w", domain.ErrInvalidInput)
	}

	var panelSettings []domain.GenerationSettings
	if opts.CharacterID != "" {
		if panelSettings, err = m.PlanPanelSettings(sess, opts.CharacterID, panels); err != nil {
			return err
		}
	}

	res := m.ComposePanels(sess, panels, panelSettings)
	if failed := res.Failed(); failed > 0 {
		slog.Warn("一部のパネルの合成に失敗しました", "failed", failed, "total", len(panels))
	}

	if opts.OutputDir == "" {
		fmt.Fprint(cmd.OutOrStdout(), m.PromptSheet(res))
		return nil
	}

	out, err := m.Publish(ctx, res, nil, opts.OutputDir)
	if err != nil {
		return err
	}
	printHeading(cmd.OutOrStdout(), "プロンプトシートを出力したのだ: %s", out.SheetPath)
	return nil
}
