package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"denpicker/internal/domain"
)

const charactersResponse = `{
  "data": {
    "characters": {
      "results": [
        {"id": "1", "name": "rick Sanchez"},
        {"id": "2", "name": "morty Smith"},
        {"id": "oops", "name": "broken"},
        {"id": "25", "name": "pikachu"}
      ]
    }
  }
}`

const speciesResponse = `{
  "data": {
    "pokemon_v2_pokemonspecies": [
      {"id": 1, "name": "rick Sanchez"},
      {"id": 2, "name": "morty Smith"},
      {"id": null, "name": "broken"},
      {"id": 25, "name": "pikachu"}
    ]
  }
}`

var wantEntries = []domain.CatalogEntry{
	{ID: 1, Name: "rick Sanchez"},
	{ID: 2, Name: "morty Smith"},
	{ID: 25, Name: "pikachu"},
}

func graphQLServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var req graphQLRequest
		assert.NoError(t, json.Unmarshal(raw, &req))
		gotQuery = req.Query

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &gotQuery
}

func TestGraphQLSourceShapes(t *testing.T) {
	cases := []struct {
		shape Shape
		body  string
		field string
	}{
		{ShapeCharacters, charactersResponse, "characters"},
		{ShapeSpecies, speciesResponse, "pokemon_v2_pokemonspecies"},
	}
	for _, tc := range cases {
		t.Run(string(tc.shape), func(t *testing.T) {
			srv, query := graphQLServer(t, http.StatusOK, tc.body)
			src := NewGraphQLSource(srv.URL, tc.shape, WithLogger(zaptest.NewLogger(t)))

			entries, err := src.Fetch(context.Background())
			require.NoError(t, err)
			assert.Equal(t, wantEntries, entries)
			assert.Contains(t, *query, tc.field)
		})
	}
}

func TestGraphQLSourceErrors(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		errMsg string
	}{
		"http status":   {http.StatusBadGateway, `oops`, "502"},
		"bad json":      {http.StatusOK, `not-json`, "decode"},
		"graphql error": {http.StatusOK, `{"data":null,"errors":[{"message":"rate limited"}]}`, "rate limited"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := graphQLServer(t, tc.status, tc.body)
			_, err := NewGraphQLSource(srv.URL, ShapeCharacters).Fetch(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestGraphQLSourcePartialErrorsKeepData(t *testing.T) {
	body := `{"data":{"characters":{"results":[{"id":"3","name":"summer"}]}},"errors":[{"message":"partial"}]}`
	srv, _ := graphQLServer(t, http.StatusOK, body)

	entries, err := NewGraphQLSource(srv.URL, ShapeCharacters).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CatalogEntry{{ID: 3, Name: "summer"}}, entries)
}

func TestGraphQLSourceEmptyCatalog(t *testing.T) {
	srv, _ := graphQLServer(t, http.StatusOK, `{"data":{"characters":null}}`)

	entries, err := NewGraphQLSource(srv.URL, ShapeCharacters).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGraphQLSourceTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	src := NewGraphQLSource(srv.URL, ShapeCharacters, WithTimeout(50*time.Millisecond))
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.json")
	require.NoError(t, os.WriteFile(plain, []byte(`[{"id":1,"name":"rick Sanchez"},{"id":"2","name":"morty Smith"},{"id":25,"name":"pikachu"}]`), 0644))
	entries, err := NewFileSource(plain, ShapeCharacters).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wantEntries, entries)

	saved := filepath.Join(dir, "species.json")
	require.NoError(t, os.WriteFile(saved, []byte(speciesResponse), 0644))
	entries, err = NewFileSource(saved, ShapeSpecies).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wantEntries, entries)

	_, err = NewFileSource(filepath.Join(dir, "missing.json"), ShapeSpecies).Fetch(context.Background())
	require.Error(t, err)
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape(" Species ")
	require.NoError(t, err)
	assert.Equal(t, ShapeSpecies, s)

	s, err = ParseShape("characters")
	require.NoError(t, err)
	assert.Equal(t, ShapeCharacters, s)

	_, err = ParseShape("pokedex")
	require.Error(t, err)
}

func TestIndex(t *testing.T) {
	idx := BuildIndex([]domain.CatalogEntry{
		{ID: 25, Name: "pikachu"},
		{ID: 1, Name: "bulbasaur"},
		{ID: 25, Name: "pikachu-alt"},
	})

	assert.Len(t, idx.Lookup(25), 2, "entries sharing an id are grouped")
	assert.Equal(t, "pikachu", idx.Name("25"))
	assert.Equal(t, "bulbasaur", idx.Name(" 1 "))
	assert.Empty(t, idx.Lookup(999))
	assert.Empty(t, idx.LookupString("abc"))
	assert.Equal(t, "", idx.Name("999"))
	assert.Equal(t, "", idx.Name(""))
}

func TestLookupStringUsesLeadingInteger(t *testing.T) {
	idx := BuildIndex([]domain.CatalogEntry{{ID: 25, Name: "pikachu"}})

	for _, id := range []string{"25", "025", "+25", " 25", "25abc", "25 ", "25.9"} {
		assert.Equal(t, "pikachu", idx.Name(id), "id %q", id)
	}
	for _, id := range []string{"", "abc", "a25", "-", "+", "-25", "99999999999999999999999"} {
		assert.Empty(t, idx.LookupString(id), "id %q", id)
	}
}

func TestNilIndexLookup(t *testing.T) {
	var idx Index
	assert.Empty(t, idx.Lookup(1))
	assert.Equal(t, "", idx.Name("1"))

	assert.Empty(t, BuildIndex(nil).Lookup(1))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://rickandmortyapi.com/api/character/avatar/25.jpeg",
		ImageURL(DefaultImageTemplate(ShapeCharacters), "25"))
	assert.Equal(t,
		"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/dream-world/1.svg",
		ImageURL(DefaultImageTemplate(ShapeSpecies), "1"))
	assert.Equal(t, "", ImageURL("", "1"))
	assert.Equal(t, "", ImageURL(CharacterImageTemplate, ""))
}
