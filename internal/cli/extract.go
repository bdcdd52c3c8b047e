package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subpair/subpair/internal/video"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract an embedded subtitle track from a video file",
	Long: `Extract a subtitle stream from a video container and save it as an
SRT file, ready to be used as a merge input.

Examples:
  subpair extract movie.mkv
  subpair extract movie.mkv -o movie.ja.srt --stream 1`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the container (0 = first)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	stream, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		ext := filepath.Ext(videoPath)
		outputPath = strings.TrimSuffix(videoPath, ext) + ".srt"
	}

	logger.Infow("Extracting subtitle track",
		"video", videoPath,
		"output", outputPath,
		"stream", stream,
	)

	processor := video.NewProcessor()

	opts := video.ExtractSubtitleOptions{
		Stream: stream,
	}

	ctx := context.Background()
	if err := processor.ExtractSubtitle(
		ctx,
		videoPath,
		outputPath,
		opts,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle track extracted successfully: %s\n", absOutput)

	return nil
}
