// Package report renders the results of a documentation scan: a
// human-readable console summary and a markdown report file. Both renderers
// consume the same enriched document list and sort it themselves; they never
// rely on collection order.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"doclens/internal/classify"
	"doclens/internal/docs"
)

// Console renders the scan summary to a writer in a fixed block order:
// per-file findings, summary statistics, category distribution, optimization
// candidates, then strategy recommendations.
type Console struct {
	out    io.Writer
	styles Styles
}

// NewConsole creates a console renderer. Pass PlainStyles for uncolored
// output.
func NewConsole(out io.Writer, styles Styles) *Console {
	return &Console{out: out, styles: styles}
}

func (c *Console) priorityStyle(p classify.Priority) string {
	switch p {
	case classify.PriorityHigh:
		return c.styles.High.Render(p.Label())
	case classify.PriorityMedium:
		return c.styles.Medium.Render(p.Label())
	case classify.PriorityLow:
		return c.styles.Low.Render(p.Label())
	}
	return p.Label()
}

// Render writes the four main report blocks. With an empty document list the
// statistics and distribution blocks are replaced by a single notice.
func (c *Console) Render(result *docs.ScanResult) {
	fmt.Fprintln(c.out, c.styles.Title.Render("📊 Document Length Analysis"))
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintln(c.out)

	for _, d := range result.Documents {
		fmt.Fprintf(c.out, "%s: %d lines\n", c.styles.Filename.Render(d.Name), d.LineCount)
		fmt.Fprintf(c.out, "  Category: %s\n", d.Category.Display())
		fmt.Fprintf(c.out, "  Priority: %s\n", c.priorityStyle(d.Priority))
		fmt.Fprintf(c.out, "  Recommendation: %s\n", d.Recommendation)
		fmt.Fprintln(c.out)
	}

	for _, sk := range result.Skipped {
		fmt.Fprintf(c.out, "⚠️  Skipped %s: %v\n", sk.Name, sk.Err)
	}
	if len(result.Skipped) > 0 {
		fmt.Fprintln(c.out)
	}

	if result.TotalFiles() == 0 {
		fmt.Fprintln(c.out, "⚠️  No documentation files found")
		return
	}

	fmt.Fprintln(c.out, c.styles.Section.Render("📈 Summary Statistics"))
	fmt.Fprintln(c.out, strings.Repeat("-", 30))
	fmt.Fprintf(c.out, "Total files analyzed: %d\n", result.TotalFiles())
	fmt.Fprintf(c.out, "Total lines: %d\n", result.TotalLines)
	fmt.Fprintf(c.out, "Average lines per file: %.1f\n", result.AverageLines())
	fmt.Fprintln(c.out)

	c.renderDistribution(result)
	c.renderCandidates(result)
}

func (c *Console) renderDistribution(result *docs.ScanResult) {
	counts := result.CategoryCounts()

	present := make([]classify.Category, 0, len(counts))
	for cat := range counts {
		present = append(present, cat)
	}
	// Ascending by category name, matching the original report.
	sort.Slice(present, func(i, j int) bool {
		return present[i].String() < present[j].String()
	})

	fmt.Fprintln(c.out, c.styles.Section.Render("📊 Category Distribution"))
	fmt.Fprintln(c.out, strings.Repeat("-", 30))
	for _, cat := range present {
		count := counts[cat]
		percentage := float64(count) / float64(result.TotalFiles()) * 100
		fmt.Fprintf(c.out, "%s: %d files (%.1f%%)\n", cat.Display(), count, percentage)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) renderCandidates(result *docs.ScanResult) {
	candidates := result.Candidates()
	sortByLinesDescending(candidates)

	fmt.Fprintln(c.out, c.styles.Section.Render(fmt.Sprintf("🎯 Optimization Candidates: %d files", len(candidates))))
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	for _, d := range candidates {
		fmt.Fprintf(c.out, "%s: %d lines (%s)\n", d.Name, d.LineCount, c.priorityStyle(d.Priority))
	}
}

// RenderStrategies writes the per-priority strategy recommendations and the
// fixed implementation timeline.
func (c *Console) RenderStrategies(result *docs.ScanResult) {
	byPriority := func(p classify.Priority) []docs.Document {
		var out []docs.Document
		for _, d := range result.Documents {
			if d.Priority == p {
				out = append(out, d)
			}
		}
		sortByLinesDescending(out)
		return out
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Title.Render("🎯 Optimization Strategy Recommendations"))
	fmt.Fprintln(c.out, strings.Repeat("=", 45))
	fmt.Fprintln(c.out)

	tiers := []struct {
		priority classify.Priority
		header   string
		rule     int
		strategy string
		target   string
	}{
		{classify.PriorityHigh, "🔴 HIGH PRIORITY (500+ lines):", 35, "Document splitting + content extraction", "60% length reduction"},
		{classify.PriorityMedium, "🟡 MEDIUM PRIORITY (400-499 lines):", 38, "Section extraction + summarization", "40% length reduction"},
		{classify.PriorityLow, "🟢 LOW PRIORITY (300-399 lines):", 36, "Content summarization + TOC enhancement", "20% length reduction"},
	}

	for _, tier := range tiers {
		group := byPriority(tier.priority)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintln(c.out, c.styles.Section.Render(tier.header))
		fmt.Fprintln(c.out, strings.Repeat("-", tier.rule))
		for _, d := range group {
			fmt.Fprintf(c.out, "%s: %d lines\n", d.Name, d.LineCount)
			fmt.Fprintf(c.out, "  Strategy: %s\n", tier.strategy)
			fmt.Fprintf(c.out, "  Target: %s\n", tier.target)
			fmt.Fprintln(c.out)
		}
	}

	fmt.Fprintln(c.out, c.styles.Section.Render("📅 Recommended Implementation Timeline:"))
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
	fmt.Fprintln(c.out, "Week 1-2: High priority documents")
	fmt.Fprintln(c.out, "Week 3-4: Medium priority documents")
	fmt.Fprintln(c.out, "Week 5-6: Low priority documents")
	fmt.Fprintln(c.out, "Week 7-8: Review, testing, and finalization")
	fmt.Fprintln(c.out)
}

// sortByLinesDescending orders documents by line count, longest first, with
// name as a deterministic tie-break.
func sortByLinesDescending(ds []docs.Document) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].LineCount != ds[j].LineCount {
			return ds[i].LineCount > ds[j].LineCount
		}
		return ds[i].Name < ds[j].Name
	})
}
