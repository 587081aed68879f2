// Package structure inspects a single markdown document and reports its
// structural makeup: heading levels, fenced code blocks, table rows, bullet
// lists, and an information-density heuristic. It is an optional analysis
// path, independent of the directory-wide scan.
package structure

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	headingRes = [6]*regexp.Regexp{
		regexp.MustCompile(`(?m)^# `),
		regexp.MustCompile(`(?m)^## `),
		regexp.MustCompile(`(?m)^### `),
		regexp.MustCompile(`(?m)^#### `),
		regexp.MustCompile(`(?m)^##### `),
		regexp.MustCompile(`(?m)^###### `),
	}
	fenceRe = regexp.MustCompile("(?m)^```")
	tableRe = regexp.MustCompile(`(?m)^\|.*\|.*\|`)
	listRe  = regexp.MustCompile(`(?m)^- `)
)

// Report holds the structural metrics of one document.
type Report struct {
	Path       string
	TotalLines int
	// Headings[i] is the count of level i+1 headings.
	Headings   [6]int
	CodeBlocks int
	TableRows  int
	ListItems  int
	// Density is the percentage of lines estimated to carry content rather
	// than structural overhead. May exceed [0,100] on pathological inputs;
	// zero for an empty document.
	Density float64
}

// Analyze computes the structure report for markdown content.
func Analyze(content string) Report {
	var r Report
	if content == "" {
		return r
	}

	r.TotalLines = strings.Count(content, "\n") + 1

	totalHeadings := 0
	for i, re := range headingRes {
		n := len(re.FindAllStringIndex(content, -1))
		r.Headings[i] = n
		totalHeadings += n
	}

	// Fences come in open/close pairs; an unclosed fence is not a block.
	r.CodeBlocks = len(fenceRe.FindAllStringIndex(content, -1)) / 2
	r.TableRows = len(tableRe.FindAllStringIndex(content, -1))
	r.ListItems = len(listRe.FindAllStringIndex(content, -1))

	substantive := r.TotalLines - totalHeadings - 3*r.CodeBlocks
	r.Density = float64(substantive) / float64(r.TotalLines) * 100

	return r
}

// AnalyzeFile reads a UTF-8 markdown file and analyzes it.
func AnalyzeFile(path string) (Report, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return Report{}, fmt.Errorf("%s: not valid UTF-8", path)
	}
	r := Analyze(string(content))
	r.Path = path
	return r, nil
}

// Suggestions returns the heuristic optimization hints for the report.
func (r Report) Suggestions() []string {
	var out []string
	if r.Headings[2]+r.Headings[3] > 10 {
		out = append(out, "Consider splitting into multiple focused documents")
	}
	if r.CodeBlocks > 5 {
		out = append(out, "Move extensive code examples to separate reference")
	}
	if r.Density < 60 {
		out = append(out, "Increase information density - too much structural overhead")
	}
	if r.Density > 85 {
		out = append(out, "Add more structure and organization - content too dense")
	}
	return out
}

// Render writes the human-readable structure report to w.
func Render(w io.Writer, r Report) {
	fmt.Fprintf(w, "🔍 Structure Analysis: %s\n", r.Path)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "Total lines: %d\n", r.TotalLines)
	fmt.Fprintf(w, "Information density: %.1f%%\n", r.Density)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📑 Heading Structure:")
	for i, count := range r.Headings {
		if count > 0 {
			fmt.Fprintf(w, "  H%d: %d\n", i+1, count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📊 Content Elements:")
	fmt.Fprintf(w, "  Code blocks: %d\n", r.CodeBlocks)
	fmt.Fprintf(w, "  Tables: %d\n", r.TableRows)
	fmt.Fprintf(w, "  Lists: %d\n", r.ListItems)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "💡 Optimization Suggestions:")
	for _, s := range r.Suggestions() {
		fmt.Fprintf(w, "  ✅ %s\n", s)
	}
	fmt.Fprintln(w)
}
