package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

var (
	// Global flags
	cfgPath string
	docsDir string
	output  string
	verbose bool
	noColor bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command. Run without arguments it performs
// the full analysis pipeline, same as `doclens scan`.
var rootCmd = &cobra.Command{
	Use:   "doclens",
	Short: "doclens - documentation length and structure auditor",
	Long: `doclens scans a directory of markdown documentation, buckets each file
by line count into severity tiers, prints a human-readable summary, and
writes a markdown optimization report with remediation suggestions.

Run without arguments to analyze ./docs and write
DOCUMENT_OPTIMIZATION_REPORT.md to the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runScan,
}

// versionCmd prints the doclens version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the doclens version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("doclens %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".doclens.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs-dir", "", "Directory to scan (overrides config)")
	rootCmd.PersistentFlags().StringVar(&output, "output", "", "Report file path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable terminal colors")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(structureCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
