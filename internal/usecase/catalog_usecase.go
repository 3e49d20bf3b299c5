// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"
)

// ProjectFilter narrows a catalog listing. Nil fields leave the
// dimension unconstrained.
type ProjectFilter struct {
	Category  *entity.Category
	Bedrooms  *int
	Bathrooms *int
	HasGarage *bool
	MaxMP     *float64
	PriceMin  *float64
	PriceMax  *float64
}

// CatalogUsecase defines the public, read-only catalog operations.
type CatalogUsecase interface {
	// ListProjects returns the catalog entries matching the filter.
	ListProjects(ctx context.Context, filter *ProjectFilter) ([]*entity.Project, error)

	// GetProjectByName returns the catalog entry with the given name.
	GetProjectByName(ctx context.Context, name string) (*entity.Project, error)

	// SimilarProjects returns other entries of the same category, capped
	// by configuration, for the detail page strip.
	SimilarProjects(ctx context.Context, name string) ([]*entity.Project, error)

	// GenerateShareQR returns a PNG QR code linking to the named
	// project's public detail page.
	GenerateShareQR(ctx context.Context, name string) ([]byte, error)
}
