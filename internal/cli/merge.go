package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/subpair/subpair/internal/align"
	"github.com/subpair/subpair/internal/config"
	"github.com/subpair/subpair/internal/language"
	"github.com/subpair/subpair/internal/render"
	"github.com/subpair/subpair/internal/subtitle"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [subtitle_a] [subtitle_b]",
	Short: "Merge two subtitle files into a bilingual PDF",
	Long: `Merge two subtitle files describing the same video into one PDF with
the first file's text in the left column and the second file's in the
right. Entries whose start times are within the threshold of each other
share a row; the rest get a row of their own.

Fonts come from the config file as a language -> TTF mapping and can be
overridden per run with --font-a/--font-b.

Examples:
  subpair merge movie.ko.srt movie.ja.srt
  subpair merge a.srt b.srt -o out.pdf --threshold 700ms
  subpair merge a.srt b.srt --lang-a ko --lang-b ja --font-b ipaexg.ttf`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().
		DurationP("threshold", "t", align.DefaultThreshold, "Widest start-time gap that still merges two entries")
	mergeCmd.Flags().
		String("lang-a", "ko", "Language of the first subtitle file")
	mergeCmd.Flags().
		String("lang-b", "ja", "Language of the second subtitle file")
	mergeCmd.Flags().
		String("font-a", "", "TTF font file for the first language (overrides config)")
	mergeCmd.Flags().
		String("font-b", "", "TTF font file for the second language (overrides config)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	pathA, pathB := args[0], args[1]

	langA, _ := cmd.Flags().GetString("lang-a")
	langB, _ := cmd.Flags().GetString("lang-b")
	fontA, _ := cmd.Flags().GetString("font-a")
	fontB, _ := cmd.Flags().GetString("font-b")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}

	threshold, err := resolveThreshold(cmd, cfg)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(pathA, pathB)
	}

	logger.Infow("Merging subtitle files",
		"file_a", pathA,
		"file_b", pathB,
		"output", outputPath,
		"threshold", threshold,
	)

	rows, err := loadAndAlign(pathA, pathB, langA, langB, threshold)
	if err != nil {
		return err
	}

	columnA, err := resolveFont(cfg, langA, fontA)
	if err != nil {
		return err
	}
	columnB, err := resolveFont(cfg, langB, fontB)
	if err != nil {
		return err
	}

	if err := render.MakeDir(outputPath); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer := render.NewPDF(columnA, columnB, render.Options{
		PageSize: cfg.Page.Size,
		MarginMM: cfg.Page.MarginMM,
		FontSize: cfg.Page.FontSize,
	})
	if err := renderer.Render(rows, outputPath); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	logger.Infow("Rendered PDF", "rows", len(rows))

	merged := 0
	for _, row := range rows {
		if row.Merged() {
			merged++
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Bilingual PDF created: %s\n", absOutput)
	fmt.Printf("  Rows: %d (%d merged)\n", len(rows), merged)

	return nil
}

// resolveThreshold picks the merge threshold: an explicit --threshold
// flag wins, otherwise the configured value applies.
func resolveThreshold(
	cmd *cobra.Command,
	cfg config.Config,
) (time.Duration, error) {
	threshold := cfg.Threshold()
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetDuration("threshold")
	}
	if threshold < 0 {
		return 0, fmt.Errorf("threshold must be >= 0, got %s", threshold)
	}
	return threshold, nil
}

// loadAndAlign parses both tracks and merges them, with the warnings the
// pipeline owes the user: empty tracks and disordered timestamps.
func loadAndAlign(
	pathA, pathB, langA, langB string,
	threshold time.Duration,
) ([]align.Row, error) {
	trackA, err := subtitle.ParseFile(pathA, langA)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pathA, err)
	}
	trackB, err := subtitle.ParseFile(pathB, langB)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pathB, err)
	}

	logger.Infow("Parsed subtitle files",
		"entries_a", len(trackA.Entries),
		"entries_b", len(trackB.Entries),
	)

	if trackA.Empty() && trackB.Empty() {
		return nil, fmt.Errorf(
			"no usable subtitle entries in %s or %s",
			pathA, pathB,
		)
	}
	for _, track := range []subtitle.Track{trackA, trackB} {
		if track.Empty() {
			logger.Warnw("Subtitle file has no usable entries; output will be single-language",
				"path", track.Path,
			)
		}
		if n := align.CountDisordered(track.Entries); n > 0 {
			logger.Warnw("Timestamps are not in order; rows may pair the wrong lines",
				"path", track.Path,
				"descending_steps", n,
			)
		}
	}

	rows := align.Merge(trackA.Entries, trackB.Entries, threshold)
	logger.Infow("Aligned subtitle tracks", "rows", len(rows))

	return rows, nil
}

// defaultOutputPath derives an output name from both input stems, next to
// the first input: a.ko.srt + b.ja.srt -> a.ko.b.ja.pdf
func defaultOutputPath(pathA, pathB string) string {
	stemA := strings.TrimSuffix(filepath.Base(pathA), filepath.Ext(pathA))
	stemB := strings.TrimSuffix(filepath.Base(pathB), filepath.Ext(pathB))
	return filepath.Join(filepath.Dir(pathA), stemA+"."+stemB+".pdf")
}

// resolveFont picks the font for a language: an explicit override file
// wins, otherwise the first configured candidate whose file exists.
func resolveFont(
	cfg config.Config,
	lang, override string,
) (render.Column, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return render.Column{}, fmt.Errorf(
				"font file not found: %s",
				override,
			)
		}
		name := strings.TrimSuffix(
			filepath.Base(override),
			filepath.Ext(override),
		)
		return render.Column{FontName: name, FontFile: override}, nil
	}

	tag := language.Normalize(lang)
	candidates := cfg.Fonts[tag]
	if len(candidates) == 0 {
		return render.Column{}, fmt.Errorf(
			"no font configured for language %q: add a [[fonts.%s]] entry or pass --font-a/--font-b",
			lang, tag,
		)
	}
	for _, font := range candidates {
		if _, err := os.Stat(font.File); err == nil {
			return render.Column{
				FontName: font.Name,
				FontFile: font.File,
			}, nil
		}
	}
	return render.Column{}, fmt.Errorf(
		"none of the configured font files for language %q exist",
		lang,
	)
}
