package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validProjectInput() *usecase.ProjectInput {
	return &usecase.ProjectInput{
		Name:     "Vila Moderna",
		Category: entity.CategoryParter,
		Price:    1000,
		TotalMP:  200,
		UsableMP: 150,
		Images: []entity.AssetRef{
			entity.PendingAsset("fata.jpg", []byte("front"), "image/jpeg"),
		},
		Floors: []entity.Floor{
			{Type: entity.FloorParter, Rooms: []entity.Room{{RoomType: entity.RoomDormitor, MP: 14}}},
		},
		Plans: map[entity.FloorType]entity.AssetRef{
			entity.FloorParter: entity.PendingAsset("parter.jpg", []byte("plan"), "image/jpeg"),
		},
	}
}

func newProjectService(t *testing.T) (usecase.ProjectAdminUsecase, *mockRepo.MockProjectRepository, *mockRepo.MockProjectStore, *mockSvc.MockEventPublisher) {
	t.Helper()

	repo := mockRepo.NewMockProjectRepository(t)
	store := mockRepo.NewMockProjectStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProjectService(ProjectServiceParams{
		Repo:      repo,
		Store:     store,
		Publisher: publisher,
		Logger:    logger,
	})

	return svc, repo, store, publisher
}

func TestProjectService_CreateProject(t *testing.T) {
	svc, repo, store, publisher := newProjectService(t)
	ctx := context.Background()

	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(nil, repository.ErrDocumentNotFound)

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		RunAndReturn(func(_ context.Context, project *entity.Project) (*repository.MutationResult, error) {
			assert.NotEmpty(t, project.ID)
			assert.Equal(t, "admin@example.com", project.CreatedBy)
			project.DocID = "doc-1"

			return &repository.MutationResult{DocID: "doc-1", Project: project}, nil
		})

	publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		RunAndReturn(func(_ context.Context, event *service.CatalogEvent) error {
			assert.Equal(t, service.EventProjectCreated, event.Type)
			assert.Equal(t, "doc-1", event.DocID)

			return nil
		})

	result, err := svc.CreateProject(ctx, validProjectInput(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", result.DocID)
}

func TestProjectService_CreateProject_Invalid(t *testing.T) {
	svc, _, _, _ := newProjectService(t)

	input := validProjectInput()
	input.Name = "  "

	_, err := svc.CreateProject(context.Background(), input, "admin@example.com")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROJECT_INVALID", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "EMPTY_NAME")
}

func TestProjectService_CreateProject_NameTaken(t *testing.T) {
	svc, _, store, _ := newProjectService(t)
	ctx := context.Background()

	existing := &entity.Project{DocID: "doc-other", Name: "Vila Moderna"}
	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(existing, nil)

	_, err := svc.CreateProject(ctx, validProjectInput(), "admin@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrProjectNameTaken)
}

func TestProjectService_CreateProject_DuplicateImages(t *testing.T) {
	svc, _, _, _ := newProjectService(t)

	input := validProjectInput()
	input.Images = append(input.Images, entity.PendingAsset("fata.jpg", []byte("again"), "image/jpeg"))

	_, err := svc.CreateProject(context.Background(), input, "admin@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateImage)
}

func TestProjectService_CreateProject_DisallowedFloor(t *testing.T) {
	svc, _, _, _ := newProjectService(t)

	// Ground-floor-only designs cannot carry upper storeys.
	input := validProjectInput()
	input.Floors = append(input.Floors, entity.Floor{
		Type:  entity.FloorEtaj1,
		Rooms: []entity.Room{{RoomType: entity.RoomBirou, MP: 10}},
	})
	input.Plans[entity.FloorEtaj1] = entity.PendingAsset("etaj1.jpg", []byte("plan"), "image/jpeg")

	_, err := svc.CreateProject(context.Background(), input, "admin@example.com")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FLOOR_NOT_ALLOWED", appErr.ErrorCode())
}

func TestProjectService_CreateProject_MissingMandatoryFloor(t *testing.T) {
	svc, _, _, _ := newProjectService(t)

	input := validProjectInput()
	input.Category = entity.CategoryMansarda
	// Mansarda designs require both Parter and Mansarda; only Parter is sent.

	_, err := svc.CreateProject(context.Background(), input, "admin@example.com")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FLOOR_UNDELETABLE", appErr.ErrorCode())
	assert.Equal(t, "Mansarda", appErr.Details())
}

func TestProjectService_CreateProject_SaveFailure(t *testing.T) {
	svc, repo, store, _ := newProjectService(t)
	ctx := context.Background()

	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(nil, repository.ErrDocumentNotFound)
	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil, errors.New("bucket unavailable"))

	_, err := svc.CreateProject(ctx, validProjectInput(), "admin@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrProjectSaveFailed)
}

func TestProjectService_UpdateProject(t *testing.T) {
	svc, repo, store, publisher := newProjectService(t)
	ctx := context.Background()

	existing := &entity.Project{DocID: "doc-1", Name: "Vila Moderna"}
	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(existing, nil)

	repo.EXPECT().
		Update(ctx, "doc-1", mock.AnythingOfType("*entity.Project")).
		RunAndReturn(func(_ context.Context, docID string, project *entity.Project) (*repository.MutationResult, error) {
			project.DocID = docID

			return &repository.MutationResult{DocID: docID, Project: project}, nil
		})

	publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		RunAndReturn(func(_ context.Context, event *service.CatalogEvent) error {
			assert.Equal(t, service.EventProjectUpdated, event.Type)

			return nil
		})

	result, err := svc.UpdateProject(ctx, "doc-1", validProjectInput())
	require.NoError(t, err)
	assert.Equal(t, "doc-1", result.DocID)
}

func TestProjectService_UpdateProject_KeepingOwnNameIsNotAConflict(t *testing.T) {
	svc, repo, store, publisher := newProjectService(t)
	ctx := context.Background()

	// The name is taken, but by the entry being updated.
	existing := &entity.Project{DocID: "doc-1", Name: "Vila Moderna"}
	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(existing, nil)
	repo.EXPECT().
		Update(ctx, "doc-1", mock.AnythingOfType("*entity.Project")).
		Return(&repository.MutationResult{DocID: "doc-1", Project: existing}, nil)
	publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	_, err := svc.UpdateProject(ctx, "doc-1", validProjectInput())
	assert.NoError(t, err)
}

func TestProjectService_UpdateProject_NotFound(t *testing.T) {
	svc, repo, store, _ := newProjectService(t)
	ctx := context.Background()

	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(nil, repository.ErrDocumentNotFound)
	repo.EXPECT().
		Update(ctx, "missing", mock.AnythingOfType("*entity.Project")).
		Return(nil, repository.ErrDocumentNotFound)

	_, err := svc.UpdateProject(ctx, "missing", validProjectInput())
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_DeleteProject(t *testing.T) {
	svc, repo, store, publisher := newProjectService(t)
	ctx := context.Background()

	existing := &entity.Project{ID: "p1", DocID: "doc-1", Name: "Vila Moderna", Category: entity.CategoryParter}
	store.EXPECT().Get(ctx, "doc-1").Return(existing, nil)
	repo.EXPECT().Delete(ctx, "doc-1").Return(&repository.DeleteResult{}, nil)

	publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		RunAndReturn(func(_ context.Context, event *service.CatalogEvent) error {
			assert.Equal(t, service.EventProjectDeleted, event.Type)
			assert.Equal(t, "p1", event.ProjectID)

			return nil
		})

	result, err := svc.DeleteProject(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, result.CleanupFailures)
}

func TestProjectService_DeleteProject_NotFound(t *testing.T) {
	svc, _, store, _ := newProjectService(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, "missing").Return(nil, repository.ErrDocumentNotFound)

	_, err := svc.DeleteProject(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestProjectService_CreateProject_PublishFailureDoesNotFailOperation(t *testing.T) {
	svc, repo, store, publisher := newProjectService(t)
	ctx := context.Background()

	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(nil, repository.ErrDocumentNotFound)
	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		RunAndReturn(func(_ context.Context, project *entity.Project) (*repository.MutationResult, error) {
			return &repository.MutationResult{DocID: "doc-1", Project: project}, nil
		})
	publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(errors.New("broker down"))

	_, err := svc.CreateProject(ctx, validProjectInput(), "admin@example.com")
	assert.NoError(t, err)
}
