package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/subpair/subpair/internal/align"
	"github.com/subpair/subpair/internal/config"
	"github.com/subpair/subpair/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview [subtitle_a] [subtitle_b]",
	Short: "Show the aligned rows as a terminal table",
	Long: `Run the same alignment as merge but print the rows to the terminal
instead of rendering a PDF, for a quick check of threshold and pairing.

Examples:
  subpair preview movie.ko.srt movie.ja.srt
  subpair preview a.srt b.srt --threshold 700ms --limit 20`,
	Args: cobra.ExactArgs(2),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().
		DurationP("threshold", "t", align.DefaultThreshold, "Widest start-time gap that still merges two entries")
	previewCmd.Flags().
		String("lang-a", "ko", "Language of the first subtitle file")
	previewCmd.Flags().
		String("lang-b", "ja", "Language of the second subtitle file")
	previewCmd.Flags().
		IntP("limit", "n", 0, "Show only the first N rows (0 = all)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	pathA, pathB := args[0], args[1]

	langA, _ := cmd.Flags().GetString("lang-a")
	langB, _ := cmd.Flags().GetString("lang-b")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	threshold, err := resolveThreshold(cmd, cfg)
	if err != nil {
		return err
	}

	rows, err := loadAndAlign(pathA, pathB, langA, langB, threshold)
	if err != nil {
		return err
	}

	total := len(rows)
	if limit > 0 && limit < total {
		rows = rows[:limit]
	}

	fmt.Println(renderPreviewTable(rows, langA, langB))
	if len(rows) < total {
		fmt.Printf("(%d of %d rows)\n", len(rows), total)
	}

	return nil
}

func renderPreviewTable(rows []align.Row, langA, langB string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Time", langA, langB})

	for _, row := range rows {
		tw.AppendRow(table.Row{
			row.Start.Text,
			render.StripMarkup(row.TextA),
			render.StripMarkup(row.TextB),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMax: 40, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, WidthMax: 40, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
