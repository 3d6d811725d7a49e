// Package quote defines the Quote entity and the pure derivations over a
// quote list: normalization, filtering, category listing and the seed set.
package quote

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultCategory is assigned when a quote is created without a category.
	DefaultCategory = "uncategorized"

	// AllCategories is the filter value that matches every category.
	AllCategories = "all"
)

// Quote is a single piece of text with a category label.
// The JSON field names are part of the export format and must not change.
type Quote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// IDFunc generates a fresh, unique quote id.
type IDFunc func() string

// NewID returns a time-ordered UUID, falling back to a random one.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Normalize trims text and category and substitutes the default category.
// The returned bool is false when the text is blank.
func Normalize(text, category string) (string, string, bool) {
	text = strings.TrimSpace(text)
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	return text, category, text != ""
}

// Tag returns the category label as drawn on images, e.g. "#cinta".
func (q Quote) Tag() string {
	return "#" + q.Category
}

// ClipboardText returns the text copied to the clipboard for a quote.
func (q Quote) ClipboardText() string {
	return fmt.Sprintf("\"%s\" — %s", q.Text, q.Tag())
}

// Seed returns the built-in quotes used when no stored list is available.
func Seed(ids IDFunc) []Quote {
	if ids == nil {
		ids = NewID
	}
	return []Quote{
		{ID: ids(), Text: "Hidup adalah perjalanan, bukan tujuan.", Category: "motivasi"},
		{ID: ids(), Text: "Cinta adalah bahasa yang semua orang mengerti.", Category: "cinta"},
		{ID: ids(), Text: "Barangsiapa bertakwa kepada Allah, niscaya Dia akan memberi jalan keluar.", Category: "islami"},
	}
}
