package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"denpicker/internal/domain"
)

// FileSource reads the catalog from a local JSON file. The file holds either a
// plain [{"id":..,"name":..}] array or a saved GraphQL response of the given shape.
type FileSource struct {
	path  string
	shape Shape
}

// NewFileSource creates a file-backed source
func NewFileSource(path string, shape Shape) *FileSource {
	return &FileSource{path: path, shape: shape}
}

func (s *FileSource) Fetch(ctx context.Context) ([]domain.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file: %w", err)
		}
		return normalize(records), nil
	}
	return decodeResponse(trimmed, s.shape)
}
