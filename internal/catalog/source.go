package catalog

import (
	"context"

	"denpicker/internal/domain"
)

// Source supplies the creature catalog
type Source interface {
	Fetch(ctx context.Context) ([]domain.CatalogEntry, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) ([]domain.CatalogEntry, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]domain.CatalogEntry, error) {
	return f(ctx)
}
