// Package docs collects documentation files from a directory and records
// their line counts. Each matching file yields exactly one Document,
// classified at collection time and never mutated afterwards.
package docs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"doclens/internal/classify"
)

// ErrMissingDirectory reports that the docs directory does not exist.
// Callers treat it as recoverable and continue with an empty result.
var ErrMissingDirectory = errors.New("directory does not exist")

// Document is one scanned documentation file, enriched with its
// classification.
type Document struct {
	Name           string
	Path           string
	LineCount      int
	Category       classify.Category
	Priority       classify.Priority
	Recommendation string
}

// SkippedFile records a per-file failure that did not abort the scan.
type SkippedFile struct {
	Name string
	Err  error
}

// ScanResult aggregates one directory scan.
type ScanResult struct {
	Documents  []Document
	TotalLines int
	Skipped    []SkippedFile
}

// TotalFiles returns the number of successfully scanned documents.
func (r *ScanResult) TotalFiles() int {
	return len(r.Documents)
}

// AverageLines returns the mean line count. Only valid when TotalFiles > 0;
// callers guard the zero-file case.
func (r *ScanResult) AverageLines() float64 {
	return float64(r.TotalLines) / float64(len(r.Documents))
}

// CategoryCounts returns the number of documents per category present.
func (r *ScanResult) CategoryCounts() map[classify.Category]int {
	counts := make(map[classify.Category]int)
	for _, d := range r.Documents {
		counts[d.Category]++
	}
	return counts
}

// Candidates returns the documents with HIGH or MEDIUM priority, i.e. the
// optimization candidates. Order is unspecified; renderers sort.
func (r *ScanResult) Candidates() []Document {
	var out []Document
	for _, d := range r.Documents {
		if d.Priority == classify.PriorityHigh || d.Priority == classify.PriorityMedium {
			out = append(out, d)
		}
	}
	return out
}

// Scanner enumerates files of a single directory level and counts their
// lines. Enumeration order is filesystem-dependent; nothing downstream may
// rely on it.
type Scanner struct {
	extension string
	logger    *zap.Logger
}

// NewScanner creates a scanner for files ending in ext (e.g. ".md").
// A nil logger disables debug logging.
func NewScanner(ext string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{extension: ext, logger: logger}
}

// ScanDirectory reads every matching file in dir and produces one Document
// per file. A missing directory returns ErrMissingDirectory (wrapped with
// the path). Unreadable or non-UTF-8 files are skipped and recorded on the
// result, never aborting the scan.
func (s *Scanner) ScanDirectory(ctx context.Context, dir string) (*ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrMissingDirectory)
		}
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	result := &ScanResult{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.extension) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			result.Skipped = append(result.Skipped, SkippedFile{Name: entry.Name(), Err: err})
			continue
		}
		if !utf8.Valid(content) {
			err := fmt.Errorf("%s: not valid UTF-8", path)
			s.logger.Warn("skipping file with invalid encoding", zap.String("path", path))
			result.Skipped = append(result.Skipped, SkippedFile{Name: entry.Name(), Err: err})
			continue
		}

		lines := CountLines(content)
		cls := classify.Classify(lines)
		result.Documents = append(result.Documents, Document{
			Name:           entry.Name(),
			Path:           path,
			LineCount:      lines,
			Category:       cls.Category,
			Priority:       cls.Priority,
			Recommendation: cls.Recommendation,
		})
		result.TotalLines += lines

		s.logger.Debug("scanned document",
			zap.String("name", entry.Name()),
			zap.Int("lines", lines),
			zap.String("category", cls.Category.String()),
			zap.String("priority", cls.Priority.String()))
	}

	s.logger.Info("scan complete",
		zap.String("dir", dir),
		zap.Int("files", result.TotalFiles()),
		zap.Int("total_lines", result.TotalLines),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// CountLines counts line-terminator-delimited lines. A trailing chunk
// without a final newline still counts as a line; an empty file has zero.
func CountLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	n := bytes.Count(content, []byte{'\n'})
	if content[len(content)-1] != '\n' {
		n++
	}
	return n
}
