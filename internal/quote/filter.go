package quote

import "strings"

// Query selects a subset of quotes. The zero value matches everything.
type Query struct {
	Search   string
	Category string
}

// Matches reports whether q passes both the category and the search predicate.
func (f Query) Matches(q Quote) bool {
	if f.Category != "" && f.Category != AllCategories && q.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(q.Text), strings.ToLower(f.Search))
}

// Filter returns the quotes matching query, preserving their order.
func Filter(quotes []Quote, query Query) []Quote {
	result := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if query.Matches(q) {
			result = append(result, q)
		}
	}
	return result
}

// Categories returns "all" followed by each distinct category in first-seen order.
func Categories(quotes []Quote) []string {
	seen := make(map[string]bool, len(quotes))
	result := []string{AllCategories}
	for _, q := range quotes {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		result = append(result, q.Category)
	}
	return result
}

// NextCategory cycles through categories starting after current.
// An unknown current value restarts at the first entry.
func NextCategory(categories []string, current string, step int) string {
	if len(categories) == 0 {
		return AllCategories
	}
	idx := -1
	for i, c := range categories {
		if c == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return categories[0]
	}
	n := len(categories)
	return categories[((idx+step)%n+n)%n]
}
