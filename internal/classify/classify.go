// Package classify buckets documents by line count into length categories
// and remediation priorities. Both axes are pure functions of the line count
// and are computed independently: the category describes how long a document
// is, the priority describes how urgently it should be trimmed. The two sets
// of thresholds intentionally do not align (a 350-line file is "long" but
// only LOW priority).
package classify

// Category is the coarse length bucket of a document.
type Category int

const (
	CategoryShort Category = iota
	CategoryMedium
	CategoryLong
	CategoryVeryLong
)

// String returns the canonical lowercase name used for sorting and config.
func (c Category) String() string {
	switch c {
	case CategoryShort:
		return "short"
	case CategoryMedium:
		return "medium"
	case CategoryLong:
		return "long"
	case CategoryVeryLong:
		return "very_long"
	}
	return "unknown"
}

// Display returns the human-readable form used in reports ("VERY LONG").
func (c Category) Display() string {
	switch c {
	case CategoryShort:
		return "SHORT"
	case CategoryMedium:
		return "MEDIUM"
	case CategoryLong:
		return "LONG"
	case CategoryVeryLong:
		return "VERY LONG"
	}
	return "UNKNOWN"
}

// Recommendation returns the fixed remediation phrase for the category.
func (c Category) Recommendation() string {
	switch c {
	case CategoryShort:
		return "No optimization needed"
	case CategoryMedium:
		return "Light optimization recommended"
	case CategoryLong:
		return "Moderate optimization recommended"
	case CategoryVeryLong:
		return "Significant optimization needed"
	}
	return "No optimization needed"
}

// Priority is the remediation urgency tier.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// String returns the bare tier name.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	}
	return "NONE"
}

// Label returns the iconographic form used in reports.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "🔴 HIGH"
	case PriorityMedium:
		return "🟡 MEDIUM"
	case PriorityLow:
		return "🟢 LOW"
	}
	return "✅ NONE"
}

// Result is the full classification of a single line count.
type Result struct {
	Category       Category
	Priority       Priority
	Recommendation string
}

// categoryRange is one closed interval of the category table. The top tier
// is open-ended and handled separately in CategoryFor.
type categoryRange struct {
	min, max int
	cat      Category
}

// Ordered, disjoint ranges over non-negative line counts. Iteration order
// does not affect the result; the explicit table just keeps the boundaries
// in one place.
var categoryRanges = []categoryRange{
	{1, 100, CategoryShort},
	{101, 300, CategoryMedium},
	{301, 500, CategoryLong},
}

// CategoryFor maps a line count to its length category. Counts below every
// range (an empty document) fall back to short.
func CategoryFor(lineCount int) Category {
	if lineCount > 500 {
		return CategoryVeryLong
	}
	for _, r := range categoryRanges {
		if lineCount >= r.min && lineCount <= r.max {
			return r.cat
		}
	}
	return CategoryShort
}

// PriorityFor maps a line count to its remediation priority. Thresholds are
// strict and checked high to low.
func PriorityFor(lineCount int) Priority {
	switch {
	case lineCount > 500:
		return PriorityHigh
	case lineCount > 400:
		return PriorityMedium
	case lineCount > 300:
		return PriorityLow
	default:
		return PriorityNone
	}
}

// Classify computes the full classification for a line count.
func Classify(lineCount int) Result {
	cat := CategoryFor(lineCount)
	return Result{
		Category:       cat,
		Priority:       PriorityFor(lineCount),
		Recommendation: cat.Recommendation(),
	}
}

// Categories lists all categories in ascending length order.
func Categories() []Category {
	return []Category{CategoryShort, CategoryMedium, CategoryLong, CategoryVeryLong}
}
