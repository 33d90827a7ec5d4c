//go:build e2e && unix

package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
)

// fixtureCatalog is served through --catalog-file so no test touches the network
const fixtureCatalog = `{
  "data": {
    "pokemon_v2_pokemonspecies": [
      {"id": 1, "name": "bulbasaur"},
      {"id": 4, "name": "charmander"},
      {"id": 7, "name": "squirtle"},
      {"id": 25, "name": "pikachu"},
      {"id": 39, "name": "jigglypuff"},
      {"id": 52, "name": "meowth"},
      {"id": 54, "name": "psyduck"},
      {"id": 133, "name": "eevee"}
    ]
  }
}`

func (tt *TUITest) catalogPath() string {
	return filepath.Join(tt.workspace, "catalog.json")
}

func (tt *TUITest) denPath() string {
	return filepath.Join(tt.workspace, "den.json")
}

func (tt *TUITest) fixtureFlags() []string {
	return []string{
		"--config", filepath.Join(tt.workspace, "config.toml"),
		"--catalog-file", tt.catalogPath(),
		"--shape", "species",
		"--storage", "file",
		"--storage-path", tt.denPath(),
	}
}

// SeedDen writes a saved selection before the app starts
func (tt *TUITest) SeedDen(ids ...string) {
	tt.t.Helper()
	value, err := json.Marshal(ids)
	require.NoError(tt.t, err)
	data, err := json.Marshal(map[string]string{"names": string(value)})
	require.NoError(tt.t, err)
	require.NoError(tt.t, os.WriteFile(tt.denPath(), data, 0644))
}

// SavedDen reads the persisted selection
func (tt *TUITest) SavedDen() []string {
	tt.t.Helper()
	raw, err := os.ReadFile(tt.denPath())
	require.NoError(tt.t, err)

	var values map[string]string
	require.NoError(tt.t, json.Unmarshal(raw, &values))
	var ids []string
	require.NoError(tt.t, json.Unmarshal([]byte(values["names"]), &ids))
	return ids
}
