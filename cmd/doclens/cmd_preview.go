// Package main implements the doclens CLI commands. This file renders the
// generated markdown report in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"doclens/internal/config"
)

// previewCmd pretty-prints the generated report in the terminal.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the generated optimization report in the terminal",
	RunE:  runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no report at %s, run `doclens scan` first", cfg.Output)
		}
		return fmt.Errorf("reading report %s: %w", cfg.Output, err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	rendered, err := renderer.Render(string(data))
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
