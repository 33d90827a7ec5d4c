package logic

import (
	"strings"

	"denpicker/internal/domain"
)

// FilterOptions returns the entries whose display label contains query,
// case-insensitively, in catalog order. An empty query matches everything.
func FilterOptions(entries []domain.CatalogEntry, query string) []domain.CatalogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	matches := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(Capitalize(e.Name)), query) {
			matches = append(matches, e)
		}
	}
	return matches
}
