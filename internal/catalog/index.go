package catalog

import (
	"strconv"
	"strings"

	"denpicker/internal/domain"
)

// Index groups catalog entries by id. It is derived from one catalog and never mutated.
type Index map[int][]domain.CatalogEntry

// BuildIndex groups entries by id, keeping catalog order inside each group
func BuildIndex(entries []domain.CatalogEntry) Index {
	idx := make(Index, len(entries))
	for _, e := range entries {
		idx[e.ID] = append(idx[e.ID], e)
	}
	return idx
}

// Lookup returns every entry sharing id; nil when unknown
func (idx Index) Lookup(id int) []domain.CatalogEntry {
	return idx[id]
}

// LookupString resolves a selection identifier by its leading decimal
// integer, so "25abc" finds 25. Identifiers without one resolve to nothing.
func (idx Index) LookupString(id string) []domain.CatalogEntry {
	n, ok := leadingInt(id)
	if !ok {
		return nil
	}
	return idx.Lookup(n)
}

// leadingInt parses an optional sign and the digits that follow it,
// ignoring leading whitespace and anything after the digits
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Name returns the raw name of the first entry for id, or "" for stale ids
func (idx Index) Name(id string) string {
	group := idx.LookupString(id)
	if len(group) == 0 {
		return ""
	}
	return group[0].Name
}
