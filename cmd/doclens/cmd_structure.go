// Package main implements the doclens CLI commands. This file handles the
// single-document structure analysis.
package main

import (
	"github.com/spf13/cobra"

	"doclens/internal/structure"
)

// structureCmd analyzes the structure of one markdown document.
var structureCmd = &cobra.Command{
	Use:   "structure <file>",
	Short: "Analyze the structure of a single markdown document",
	Long: `Counts headings by level, fenced code blocks, table rows, and bullet
lists, computes an information-density heuristic, and suggests structural
improvements. Operates on one file; it is not part of the directory scan.`,
	Args: cobra.ExactArgs(1),
	RunE: runStructure,
}

func runStructure(cmd *cobra.Command, args []string) error {
	rep, err := structure.AnalyzeFile(args[0])
	if err != nil {
		return err
	}
	structure.Render(cmd.OutOrStdout(), rep)
	return nil
}
