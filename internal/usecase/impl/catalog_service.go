// Package impl provides the concrete usecase implementations.
package impl

import (
	"context"

	"atelier/config"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSimilarLimit = 6

type catalogService struct {
	store  repository.ProjectStore
	qrcode service.QRCodeService
	config *config.Config
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Store         repository.ProjectStore
	QRCodeService service.QRCodeService
	Config        *config.Config
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		store:  params.Store,
		qrcode: params.QRCodeService,
		config: params.Config,
	}
}

// ListProjects returns the catalog entries matching the filter
func (s *catalogService) ListProjects(ctx context.Context, filter *usecase.ProjectFilter) ([]*entity.Project, error) {
	if filter == nil {
		filter = &usecase.ProjectFilter{}
	}

	var projects []*entity.Project
	var err error

	if filter.Category != nil {
		projects, err = s.store.ListByCategory(ctx, *filter.Category)
	} else {
		projects, err = s.store.List(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	matched := make([]*entity.Project, 0, len(projects))
	for _, project := range projects {
		if matchesFilter(project, filter) {
			matched = append(matched, project)
		}
	}

	return matched, nil
}

// GetProjectByName returns the catalog entry with the given name
func (s *catalogService) GetProjectByName(ctx context.Context, name string) (*entity.Project, error) {
	project, err := s.store.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by name")
	}

	return project, nil
}

// SimilarProjects returns other entries of the same category for the
// detail page strip. Entries without gallery images are skipped.
func (s *catalogService) SimilarProjects(ctx context.Context, name string) ([]*entity.Project, error) {
	project, err := s.GetProjectByName(ctx, name)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.ListByCategory(ctx, project.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list similar projects")
	}

	limit := defaultSimilarLimit
	if s.config.Catalog != nil && s.config.Catalog.SimilarLimit > 0 {
		limit = s.config.Catalog.SimilarLimit
	}

	similar := make([]*entity.Project, 0, limit)
	for _, candidate := range candidates {
		if candidate.Name == project.Name || len(candidate.Images) == 0 {
			continue
		}
		similar = append(similar, candidate)
		if len(similar) == limit {
			break
		}
	}

	return similar, nil
}

// GenerateShareQR returns a PNG QR code for the named project
func (s *catalogService) GenerateShareQR(ctx context.Context, name string) ([]byte, error) {
	if _, err := s.GetProjectByName(ctx, name); err != nil {
		return nil, err
	}

	qrBytes, err := s.qrcode.GenerateShareQR(name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return qrBytes, nil
}

func matchesFilter(project *entity.Project, filter *usecase.ProjectFilter) bool {
	if filter.Bedrooms != nil && project.Bedrooms() != *filter.Bedrooms {
		return false
	}
	if filter.Bathrooms != nil && project.Bathrooms() != *filter.Bathrooms {
		return false
	}
	if filter.HasGarage != nil && (project.Garages() > 0) != *filter.HasGarage {
		return false
	}
	if filter.MaxMP != nil && project.TotalMP > *filter.MaxMP {
		return false
	}
	if filter.PriceMin != nil && project.Price < *filter.PriceMin {
		return false
	}
	if filter.PriceMax != nil && project.Price > *filter.PriceMax {
		return false
	}

	return true
}
