package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"denpicker/internal/domain"
)

// Shape names an upstream catalog schema
type Shape string

const (
	// ShapeCharacters is the nested characters.results list
	ShapeCharacters Shape = "characters"
	// ShapeSpecies is the flat pokemon species list
	ShapeSpecies Shape = "species"
)

const charactersQuery = `query {
  characters {
    results {
      id
      name
    }
  }
}`

const speciesQuery = `query {
  pokemon_v2_pokemonspecies(order_by: {id: asc}) {
    id
    name
  }
}`

// ParseShape validates a shape name
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case ShapeCharacters:
		return ShapeCharacters, nil
	case ShapeSpecies:
		return ShapeSpecies, nil
	default:
		return "", fmt.Errorf("unknown catalog shape %q", s)
	}
}

// Query returns the GraphQL document for the shape
func (s Shape) Query() string {
	if s == ShapeSpecies {
		return speciesQuery
	}
	return charactersQuery
}

// record is one upstream {id, name} object
type record struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

// flexID accepts both JSON numbers and GraphQL ID strings
type flexID struct {
	value int
	valid bool
}

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		// Not an integer id; the record is dropped during normalization
		return nil
	}
	f.value, f.valid = n, true
	return nil
}

type charactersData struct {
	Characters *struct {
		Results []record `json:"results"`
	} `json:"characters"`
}

type speciesData struct {
	Species []record `json:"pokemon_v2_pokemonspecies"`
}

// Decode normalizes the GraphQL data object for the shape into catalog entries
func (s Shape) Decode(data json.RawMessage) ([]domain.CatalogEntry, error) {
	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return []domain.CatalogEntry{}, nil
	}

	var records []record
	switch s {
	case ShapeSpecies:
		var d speciesData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to decode species list: %w", err)
		}
		records = d.Species
	default:
		var d charactersData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to decode characters list: %w", err)
		}
		if d.Characters != nil {
			records = d.Characters.Results
		}
	}
	return normalize(records), nil
}

func normalize(records []record) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(records))
	for _, r := range records {
		if !r.ID.valid {
			continue
		}
		entries = append(entries, domain.CatalogEntry{ID: r.ID.value, Name: r.Name})
	}
	return entries
}
