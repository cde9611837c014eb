package domain

import "strings"

// Wildcard matches any category, location or stock bucket
const Wildcard = "all"

// FilterCriteria narrows the component collection. Zero values and the
// "all" wildcard disable the corresponding predicate.
type FilterCriteria struct {
	Search      string
	Category    string
	Location    string
	StockStatus string
}

// Matches reports whether a component passes every predicate. An empty
// search matches everything; otherwise the name or the part number must
// contain the search text, case-insensitively.
func (f FilterCriteria) Matches(c *Component) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.PartNumber), search) {
			return false
		}
	}

	if f.Category != "" && f.Category != Wildcard && c.Category != f.Category {
		return false
	}

	if f.Location != "" && f.Location != Wildcard && c.Location != f.Location {
		return false
	}

	if f.StockStatus != "" && f.StockStatus != Wildcard {
		if string(c.StockStatus()) != f.StockStatus {
			return false
		}
	}

	return true
}

// Filter returns the order-preserving subset of components matching the
// criteria. Pure; the input slice is never modified.
func (f FilterCriteria) Filter(components []Component) []Component {
	filtered := make([]Component, 0, len(components))
	for i := range components {
		if f.Matches(&components[i]) {
			filtered = append(filtered, components[i])
		}
	}
	return filtered
}
