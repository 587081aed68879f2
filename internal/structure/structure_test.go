package structure

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCounts(t *testing.T) {
	content := strings.Join([]string{
		"# Title",
		"## Section",
		"### Detail",
		"#### Fine print",
		"Some prose here.",
		"```",
		"code",
		"```",
		"| a | b |",
		"| - | - |",
		"| 1 | 2 |",
		"- first item",
		"- second item",
	}, "\n")

	r := Analyze(content)
	assert.Equal(t, 13, r.TotalLines)
	assert.Equal(t, 1, r.Headings[0])
	assert.Equal(t, 1, r.Headings[1])
	assert.Equal(t, 1, r.Headings[2])
	assert.Equal(t, 1, r.Headings[3])
	assert.Equal(t, 0, r.Headings[4])
	assert.Equal(t, 1, r.CodeBlocks)
	assert.Equal(t, 3, r.TableRows)
	assert.Equal(t, 2, r.ListItems)
}

func TestAnalyzeDensity(t *testing.T) {
	// 10 lines, 2 headings, 1 code block: (10 - 2 - 3) / 10 = 50%.
	content := "# A\n## B\n```\nx\n```\np\np\np\np\np"
	r := Analyze(content)
	require.Equal(t, 10, r.TotalLines)
	assert.InDelta(t, 50.0, r.Density, 0.001)
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	r := Analyze("")
	assert.Equal(t, 0, r.TotalLines)
	assert.Equal(t, 0.0, r.Density)
}

func TestUnclosedFenceIsNotABlock(t *testing.T) {
	r := Analyze("```\ncode without closing fence")
	assert.Equal(t, 0, r.CodeBlocks)
}

func TestSplitSuggestionBoundary(t *testing.T) {
	mkdoc := func(h3, h4 int) string {
		var b strings.Builder
		for i := 0; i < h3; i++ {
			b.WriteString("### H\n")
		}
		for i := 0; i < h4; i++ {
			b.WriteString("#### H\n")
		}
		// Pad with prose so density heuristics stay quiet.
		for i := 0; i < 200; i++ {
			b.WriteString("prose line\n")
		}
		return b.String()
	}

	t.Run("12 subsection headings triggers split", func(t *testing.T) {
		r := Analyze(mkdoc(7, 5))
		assert.Contains(t, r.Suggestions(), "Consider splitting into multiple focused documents")
	})

	t.Run("10 subsection headings does not", func(t *testing.T) {
		r := Analyze(mkdoc(5, 5))
		assert.NotContains(t, r.Suggestions(), "Consider splitting into multiple focused documents")
	})
}

func TestCodeBlockSuggestionBoundary(t *testing.T) {
	mkdoc := func(blocks int) string {
		var b strings.Builder
		for i := 0; i < blocks; i++ {
			b.WriteString("```\nx\n```\n")
		}
		for i := 0; i < 300; i++ {
			b.WriteString("prose line\n")
		}
		return b.String()
	}

	assert.Contains(t, Analyze(mkdoc(6)).Suggestions(), "Move extensive code examples to separate reference")
	assert.NotContains(t, Analyze(mkdoc(5)).Suggestions(), "Move extensive code examples to separate reference")
}

func TestDensitySuggestions(t *testing.T) {
	t.Run("low density", func(t *testing.T) {
		// 10 lines, 5 headings, 1 code block: (10-5-3)/10 = 20%.
		content := "# A\n# B\n# C\n# D\n# E\n```\nx\n```\np\np"
		r := Analyze(content)
		assert.Less(t, r.Density, 60.0)
		assert.Contains(t, r.Suggestions(), "Increase information density - too much structural overhead")
	})

	t.Run("high density", func(t *testing.T) {
		content := strings.Repeat("prose line\n", 100)
		r := Analyze(content)
		assert.Greater(t, r.Density, 85.0)
		assert.Contains(t, r.Suggestions(), "Add more structure and organization - content too dense")
	})
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# T\nbody\n"), 0644))

	r, err := AnalyzeFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, r.Path)
	assert.Equal(t, 2, r.TotalLines)

	_, err = AnalyzeFile(filepath.Join(dir, "missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.md")
}

func TestAnalyzeFileRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.md")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe}, 0644))

	_, err := AnalyzeFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestRender(t *testing.T) {
	r := Report{Path: "doc.md", TotalLines: 12, Density: 75.0}
	r.Headings[0] = 1
	r.Headings[2] = 3

	var buf bytes.Buffer
	Render(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "🔍 Structure Analysis: doc.md")
	assert.Contains(t, out, "Total lines: 12")
	assert.Contains(t, out, "Information density: 75.0%")
	assert.Contains(t, out, "H1: 1")
	assert.Contains(t, out, "H3: 3")
	assert.NotContains(t, out, "H2:")
}
