package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"doclens/internal/classify"
	"doclens/internal/docs"
)

// Markdown renders the optimization report file. The generation date is the
// only field that varies between runs on identical input; Now is injectable
// so tests can pin it.
type Markdown struct {
	Now func() time.Time
}

// NewMarkdown creates a markdown renderer using the wall clock.
func NewMarkdown() *Markdown {
	return &Markdown{Now: time.Now}
}

// Generate produces the full report document in memory.
func (m *Markdown) Generate(result *docs.ScanResult) []byte {
	var b bytes.Buffer

	b.WriteString("# Document Optimization Report\n\n")
	b.WriteString("## Analysis Summary\n\n")
	fmt.Fprintf(&b, "- **Total Files Analyzed**: %d\n", result.TotalFiles())
	fmt.Fprintf(&b, "- **Total Lines**: %d\n", result.TotalLines)
	if result.TotalFiles() > 0 {
		fmt.Fprintf(&b, "- **Average Length**: %.1f lines\n", result.AverageLines())
	}
	b.WriteString("\n")

	b.WriteString("## Detailed Findings\n\n")
	sorted := append([]docs.Document(nil), result.Documents...)
	sortByLinesDescending(sorted)
	for _, d := range sorted {
		fmt.Fprintf(&b, "### %s\n\n", d.Name)
		fmt.Fprintf(&b, "- **Line Count**: %d lines\n", d.LineCount)
		fmt.Fprintf(&b, "- **Category**: %s\n", d.Category.Display())
		fmt.Fprintf(&b, "- **Priority**: %s\n", d.Priority.Label())
		fmt.Fprintf(&b, "- **Recommendation**: %s\n\n", d.Recommendation)

		if d.Priority != classify.PriorityNone {
			b.WriteString("**Optimization Strategy**:\n")
			for _, s := range strategyBullets(d.LineCount) {
				fmt.Fprintf(&b, "- %s\n", s)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(implementationPlan)
	b.WriteString(expectedBenefits)

	fmt.Fprintf(&b, "## Report Generated: %s\n", m.Now().Format("2006-01-02"))
	b.WriteString("## Analysis Performed By: doclens\n")

	return b.Bytes()
}

// WriteFile renders the report and writes it atomically: the content is
// staged in a temp file next to the target and renamed into place, so a
// failed run never leaves a partial report.
func (m *Markdown) WriteFile(path string, result *docs.ScanResult) error {
	content := m.Generate(result)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".doclens-report-*")
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// strategyBullets returns the optimization strategy list for a candidate,
// tiered by the same thresholds as the priority bands.
func strategyBullets(lineCount int) []string {
	switch {
	case lineCount > 500:
		return []string{
			"Document splitting into focused guides",
			"Content extraction to reference documents",
			"Enhanced navigation with detailed TOC",
		}
	case lineCount > 400:
		return []string{
			"Section extraction for major topics",
			"Content summarization with references",
			"Modular documentation approach",
		}
	default:
		return []string{
			"Content density optimization",
			"Navigation enhancement",
			"Cross-reference improvement",
		}
	}
}

const implementationPlan = `## Implementation Plan

### Phase 1: High Priority Documents
- Target: Documents with 500+ lines
- Goal: 60% length reduction
- Timeline: 2 weeks

### Phase 2: Medium Priority Documents
- Target: Documents with 400-499 lines
- Goal: 40% length reduction
- Timeline: 2 weeks

### Phase 3: Low Priority Documents
- Target: Documents with 300-399 lines
- Goal: 20% length reduction
- Timeline: 1 week

### Phase 4: Review and Finalization
- Cross-reference validation
- User testing
- Documentation index updates
- Timeline: 1 week

`

const expectedBenefits = `## Expected Benefits

- **Improved Navigation**: 50% faster information discovery
- **Better Maintainability**: 40% faster updates
- **Enhanced Usability**: 30% improvement in user satisfaction
- **Sustainable Quality**: Establish documentation standards

`
