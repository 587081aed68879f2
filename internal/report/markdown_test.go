package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/internal/docs"
)

func fixedClock() time.Time {
	return time.Date(2025, 12, 7, 10, 0, 0, 0, time.UTC)
}

func TestMarkdownSectionOrder(t *testing.T) {
	md := &Markdown{Now: fixedClock}
	out := string(md.Generate(threeDocResult()))

	title := strings.Index(out, "# Document Optimization Report")
	summary := strings.Index(out, "## Analysis Summary")
	findings := strings.Index(out, "## Detailed Findings")
	plan := strings.Index(out, "## Implementation Plan")
	benefits := strings.Index(out, "## Expected Benefits")
	footer := strings.Index(out, "## Report Generated: 2025-12-07")
	require.True(t, title == 0 && summary > title && findings > summary &&
		plan > findings && benefits > plan && footer > benefits,
		"sections out of order:\n%s", out)

	assert.True(t, strings.HasSuffix(out, "## Analysis Performed By: doclens\n"))
}

func TestMarkdownFindingsSortedDescending(t *testing.T) {
	md := &Markdown{Now: fixedClock}
	out := string(md.Generate(threeDocResult()))

	huge := strings.Index(out, "### huge.md")
	growing := strings.Index(out, "### growing.md")
	small := strings.Index(out, "### small.md")
	require.True(t, huge >= 0 && growing > huge && small > growing,
		"findings must be ordered 600, 350, 50:\n%s", out)
}

func TestMarkdownStrategyTiers(t *testing.T) {
	md := &Markdown{Now: fixedClock}
	out := string(md.Generate(threeDocResult()))

	// huge.md (600) and growing.md (350) carry strategy bullets; small.md
	// has priority NONE and gets none.
	hugeSection := section(out, "### huge.md", "### growing.md")
	assert.Contains(t, hugeSection, "**Optimization Strategy**:")
	assert.Contains(t, hugeSection, "- Document splitting into focused guides")

	growingSection := section(out, "### growing.md", "### small.md")
	assert.Contains(t, growingSection, "**Optimization Strategy**:")
	assert.Contains(t, growingSection, "- Content density optimization")

	smallSection := section(out, "### small.md", "## Implementation Plan")
	assert.NotContains(t, smallSection, "Optimization Strategy")
}

// section slices out the text between two markers.
func section(s, from, to string) string {
	start := strings.Index(s, from)
	end := strings.Index(s, to)
	if start < 0 || end < 0 || end < start {
		return ""
	}
	return s[start:end]
}

func TestMarkdownMediumTierBullets(t *testing.T) {
	result := &docs.ScanResult{
		Documents:  []docs.Document{doc("mid.md", 450)},
		TotalLines: 450,
	}
	md := &Markdown{Now: fixedClock}
	out := string(md.Generate(result))

	assert.Contains(t, out, "- Section extraction for major topics")
	assert.NotContains(t, out, "- Document splitting into focused guides")
}

func TestMarkdownEmptyResult(t *testing.T) {
	md := &Markdown{Now: fixedClock}
	out := string(md.Generate(&docs.ScanResult{}))

	assert.Contains(t, out, "- **Total Files Analyzed**: 0")
	assert.Contains(t, out, "- **Total Lines**: 0")
	assert.NotContains(t, out, "Average Length")
	assert.Contains(t, out, "## Implementation Plan")
}

func TestMarkdownRoundTrip(t *testing.T) {
	md := &Markdown{Now: fixedClock}
	first := md.Generate(threeDocResult())
	second := md.Generate(threeDocResult())

	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("report not byte-identical across runs (-first +second):\n%s", diff)
	}
}

func TestMarkdownWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "REPORT.md")

	md := &Markdown{Now: fixedClock}
	require.NoError(t, md.WriteFile(path, threeDocResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(md.Generate(threeDocResult())), string(data))

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestMarkdownWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "REPORT.md")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	md := &Markdown{Now: fixedClock}
	require.NoError(t, md.WriteFile(path, &docs.ScanResult{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestMarkdownWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "REPORT.md")
	md := &Markdown{Now: fixedClock}

	err := md.WriteFile(path, &docs.ScanResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial report may be left behind")
}
