package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	repo      repository.ProjectRepository
	store     repository.ProjectStore
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	Repo      repository.ProjectRepository
	Store     repository.ProjectStore
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProjectService creates a new project admin service instance
func NewProjectService(params ProjectServiceParams) usecase.ProjectAdminUsecase {
	return &projectService{
		repo:      params.Repo,
		store:     params.Store,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// CreateProject validates and persists a new catalog entry
func (s *projectService) CreateProject(ctx context.Context, input *usecase.ProjectInput, createdBy string) (*repository.MutationResult, error) {
	project := projectFromInput(input)
	project.CreatedBy = createdBy
	if project.ID == "" {
		project.ID = entity.NewProjectID()
	}

	if err := s.checkSubmission(ctx, project, ""); err != nil {
		return nil, err
	}

	result, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error("project create failed", slog.String("name", project.Name), slog.Any("error", err))

		return nil, domainerrors.ErrProjectSaveFailed
	}

	s.publishEvent(ctx, service.EventProjectCreated, result.Project)

	return result, nil
}

// UpdateProject validates and persists changes to an existing entry
func (s *projectService) UpdateProject(ctx context.Context, docID string, input *usecase.ProjectInput) (*repository.MutationResult, error) {
	project := projectFromInput(input)

	if err := s.checkSubmission(ctx, project, docID); err != nil {
		return nil, err
	}

	result, err := s.repo.Update(ctx, docID, project)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}
		s.logger.Error("project update failed", slog.String("doc_id", docID), slog.Any("error", err))

		return nil, domainerrors.ErrProjectSaveFailed
	}

	s.publishEvent(ctx, service.EventProjectUpdated, result.Project)

	return result, nil
}

// DeleteProject removes an entry and its stored assets
func (s *projectService) DeleteProject(ctx context.Context, docID string) (*repository.DeleteResult, error) {
	project, err := s.store.Get(ctx, docID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to load project before delete")
	}

	result, err := s.repo.Delete(ctx, docID)
	if err != nil {
		s.logger.Error("project delete failed", slog.String("doc_id", docID), slog.Any("error", err))

		return nil, domainerrors.ErrProjectDeleteFailed
	}

	s.publishEvent(ctx, service.EventProjectDeleted, project)

	return result, nil
}

// checkSubmission runs the completeness checks, rejects duplicate
// gallery entries and enforces name uniqueness across the catalog.
// currentDocID exempts the entry being updated from the name check.
func (s *projectService) checkSubmission(ctx context.Context, project *entity.Project, currentDocID string) error {
	if violations := project.Violations(); len(violations) > 0 {
		names := make([]string, 0, len(violations))
		for _, v := range violations {
			names = append(names, string(v))
		}

		return domainerrors.ErrProjectInvalid.WithDetails(strings.Join(names, ", "))
	}

	if hasDuplicateImages(project.Images) {
		return domainerrors.ErrDuplicateImage
	}

	if err := checkFloorStructure(project.Category, project.Floors); err != nil {
		return err
	}

	existing, err := s.store.FindByName(ctx, project.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check name uniqueness")
	}

	if existing.DocID != currentDocID {
		return domainerrors.ErrProjectNameTaken
	}

	return nil
}

// publishEvent notifies subscribers of a catalog change. Publishing is
// best-effort: a failure is logged, never surfaced to the admin.
func (s *projectService) publishEvent(ctx context.Context, eventType string, project *entity.Project) {
	event := &service.CatalogEvent{
		Type:      eventType,
		ProjectID: project.ID,
		DocID:     project.DocID,
		Name:      project.Name,
		Category:  string(project.Category),
	}

	if err := s.publisher.PublishCatalogEvent(ctx, event); err != nil {
		s.logger.Warn("catalog event publish failed",
			slog.String("type", eventType),
			slog.String("project_id", project.ID),
			slog.Any("error", err),
		)
	}
}

// checkFloorStructure enforces the category's floor rules on a
// submission: mandatory floors must be present and every floor must be
// one the category allows, without duplicates.
func checkFloorStructure(category entity.Category, floors []entity.Floor) error {
	rule := entity.RuleFor(category)

	for _, t := range rule.UndeletableFloors {
		present := slices.ContainsFunc(floors, func(f entity.Floor) bool { return f.Type == t })
		if !present {
			return domainerrors.ErrFloorUndeletable.WithDetails(string(t))
		}
	}

	accepted := make([]entity.Floor, 0, len(floors))
	for _, f := range floors {
		if !entity.CanAddFloor(category, accepted, f.Type) {
			return domainerrors.ErrFloorNotAllowed.WithDetails(string(f.Type))
		}
		accepted = append(accepted, f)
	}

	return nil
}

func projectFromInput(input *usecase.ProjectInput) *entity.Project {
	return &entity.Project{
		ID:       input.ID,
		Name:     strings.TrimSpace(input.Name),
		Category: input.Category,
		Price:    input.Price,
		TotalMP:  input.TotalMP,
		UsableMP: input.UsableMP,
		Images:   input.Images,
		Floors:   input.Floors,
		Plans:    input.Plans,
	}
}

// hasDuplicateImages reports whether two gallery entries point at the
// same file, by pending filename or by stored URL.
func hasDuplicateImages(images []entity.AssetRef) bool {
	seen := make(map[string]struct{}, len(images))
	for _, img := range images {
		key := img.URL()
		if img.Pending() {
			key = "pending:" + img.Filename()
		}

		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}

	return false
}
