// Package main implements the doclens CLI commands. This file runs the full
// analysis pipeline: collect, classify, console report, markdown report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doclens/internal/config"
	"doclens/internal/docs"
	"doclens/internal/report"
)

// scanCmd is the explicit form of the default pipeline.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Analyze the docs directory and write the optimization report",
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := scanDocs(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	styles := report.DefaultStyles()
	if noColor || !cfg.Color {
		styles = report.PlainStyles()
	}
	console := report.NewConsole(cmd.OutOrStdout(), styles)
	console.Render(result)
	console.RenderStrategies(result)

	md := report.NewMarkdown()
	if err := md.WriteFile(cfg.Output, result); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Failed to write report: %v\n", err)
		logger.Error("report write failed", zap.String("path", cfg.Output), zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n📄 Report generated: %s\n", cfg.Output)
	fmt.Fprintln(cmd.OutOrStdout(), "🎉 Analysis complete!")
	return nil
}

// loadConfig resolves the effective configuration: file, then environment,
// then flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if docsDir != "" {
		cfg.DocsDir = docsDir
	}
	if output != "" {
		cfg.Output = output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// scanDocs runs the collector. A missing docs directory is reported and
// yields an empty result so the pipeline still produces both reports.
func scanDocs(ctx context.Context, cfg *config.Config) (*docs.ScanResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	scanner := docs.NewScanner(cfg.Extension, logger)
	result, err := scanner.ScanDirectory(ctx, cfg.DocsDir)
	if err != nil {
		if errors.Is(err, docs.ErrMissingDirectory) {
			reportMissingDir(os.Stderr, cfg.DocsDir)
			return &docs.ScanResult{}, nil
		}
		return nil, err
	}
	return result, nil
}

func reportMissingDir(w io.Writer, dir string) {
	fmt.Fprintf(w, "⚠️  Docs directory not found: %s\n", dir)
}
