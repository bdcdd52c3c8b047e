package cli

import (
	"github.com/spf13/cobra"

	"github.com/subpair/subpair/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subpair",
	Short: "Merge two subtitle tracks into a bilingual side-by-side PDF",
	Long: `Subpair pairs up two subtitle files for the same video by start-time
proximity and renders the result as a two-column PDF, one language per
side. Entries with no close counterpart in the other track keep their own
row.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default ~/.config/subpair/config.toml)")
}
