// Package repository defines the persistence ports of the catalog domain.
package repository

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/errors"
)

// ErrDocumentNotFound is returned when a document key or name matches
// nothing in the store.
var ErrDocumentNotFound = errors.New("project document not found")

// ProjectStore is the hosted document store holding project documents,
// keyed by an opaque record key distinct from the project's own ID.
// Implementations only accept projects whose asset refs are all stored;
// pending refs never reach the document store.
type ProjectStore interface {
	// Add writes a new document and returns the store's record key.
	Add(ctx context.Context, project *entity.Project) (string, error)

	// Get reads one document by record key.
	Get(ctx context.Context, docID string) (*entity.Project, error)

	// Update field-merges the project's mutable fields over the existing
	// document, preserving creation metadata.
	Update(ctx context.Context, docID string, project *entity.Project) error

	// Delete removes the document.
	Delete(ctx context.Context, docID string) error

	// ListByCategory returns every project of one category.
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Project, error)

	// List returns the whole catalog.
	List(ctx context.Context) ([]*entity.Project, error)

	// FindByName looks a project up by its display name, the catalog's
	// natural secondary key.
	FindByName(ctx context.Context, name string) (*entity.Project, error)
}
