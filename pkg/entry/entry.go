// Package entry defines the PESTLE entry model and its tag handling.
package entry

import (
	"strconv"
	"strings"

	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/timeutil"
)

// Entry is a single recorded observation within a project, scoped to one
// category. Category and Created are fixed at creation; edits touch only
// Narrative, Risk, Tags, and Updated.
type Entry struct {
	ID        string            `json:"entry_id"`
	Category  category.Category `json:"category"`
	Narrative string            `json:"narrative"`
	Risk      float64           `json:"risk_factor"`
	Tags      []string          `json:"tags"`
	Created   timeutil.Timestamp `json:"created_at"`
	Updated   timeutil.Timestamp `json:"updated_at"`
}

// New builds an unsaved entry. The narrative is trimmed; the tag string is
// split on commas. The caller assigns ID and timestamps.
func New(c category.Category, narrative string, risk float64, tagsRaw string) *Entry {
	return &Entry{
		Category:  c,
		Narrative: strings.TrimSpace(narrative),
		Risk:      risk,
		Tags:      SplitTags(tagsRaw),
	}
}

// SplitTags derives the tag sequence from a comma-separated string: each
// piece trimmed, empty pieces dropped, first-appearance order preserved,
// duplicates kept. Always returns a non-nil slice so tags serialize as [].
func SplitTags(raw string) []string {
	tags := make([]string, 0)
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tags = append(tags, piece)
	}
	return tags
}

// JoinTags renders the tag sequence back to its display form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// FormatRisk renders a risk value without a trailing decimal point for
// integral inputs. Out-of-range and fractional values are preserved as
// submitted; nothing clamps here.
func FormatRisk(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
