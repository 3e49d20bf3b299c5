package persistence

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/infra/content"
)

// memoryProjectStore is an in-memory ProjectStore used to exercise the
// repository orchestration without Firestore.
type memoryProjectStore struct {
	mu   sync.Mutex
	seq  int
	docs map[string]*entity.Project
}

func newMemoryProjectStore() *memoryProjectStore {
	return &memoryProjectStore{docs: make(map[string]*entity.Project)}
}

func (s *memoryProjectStore) Add(_ context.Context, project *entity.Project) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	docID := fmt.Sprintf("doc-%d", s.seq)
	stored := *project
	stored.DocID = docID
	s.docs[docID] = &stored

	return docID, nil
}

func (s *memoryProjectStore) Get(_ context.Context, docID string) (*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.docs[docID]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}
	copied := *project

	return &copied, nil
}

func (s *memoryProjectStore) Update(_ context.Context, docID string, project *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[docID]
	if !ok {
		return repository.ErrDocumentNotFound
	}

	merged := *project
	merged.DocID = docID
	merged.CreatedAt = existing.CreatedAt
	merged.CreatedBy = existing.CreatedBy
	s.docs[docID] = &merged

	return nil
}

func (s *memoryProjectStore) Delete(_ context.Context, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, docID)

	return nil
}

func (s *memoryProjectStore) ListByCategory(_ context.Context, category entity.Category) ([]*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []*entity.Project
	for _, p := range s.docs {
		if p.Category == category {
			copied := *p
			projects = append(projects, &copied)
		}
	}

	return projects, nil
}

func (s *memoryProjectStore) List(_ context.Context) ([]*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []*entity.Project
	for _, p := range s.docs {
		copied := *p
		projects = append(projects, &copied)
	}

	return projects, nil
}

func (s *memoryProjectStore) FindByName(_ context.Context, name string) (*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.docs {
		if p.Name == name {
			copied := *p

			return &copied, nil
		}
	}

	return nil, repository.ErrDocumentNotFound
}

func newTestRepository(t *testing.T) (repository.ProjectRepository, *memoryProjectStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	contents := content.New(bucket, "https://content.example.com", logger)
	documents := newMemoryProjectStore()

	return NewProjectRepository(documents, contents, logger), documents, bucket
}

func pendingProject() *entity.Project {
	return &entity.Project{
		ID:       "p1",
		Name:     "Vila Moderna",
		Category: entity.CategoryParter,
		Price:    1000,
		TotalMP:  200,
		UsableMP: 150,
		Images: []entity.AssetRef{
			entity.PendingAsset("fata.jpg", []byte("front"), "image/jpeg"),
			entity.PendingAsset("spate.jpg", []byte("back"), "image/jpeg"),
		},
		Floors: []entity.Floor{
			{Type: entity.FloorParter, Rooms: []entity.Room{{RoomType: entity.RoomDormitor, MP: 14}}},
		},
		Plans: map[entity.FloorType]entity.AssetRef{
			entity.FloorParter: entity.PendingAsset("parter.jpg", []byte("plan"), "image/jpeg"),
		},
		CreatedBy: "studio@example.com",
	}
}

func TestProjectRepository_CreateUploadsAndPersists(t *testing.T) {
	repo, documents, bucket := newTestRepository(t)
	ctx := context.Background()

	result, err := repo.Create(ctx, pendingProject())
	require.NoError(t, err)
	require.NotEmpty(t, result.DocID)
	assert.Empty(t, result.CleanupFailures)
	assert.False(t, result.Project.CreatedAt.IsZero())

	for _, img := range result.Project.Images {
		assert.True(t, img.Stored())
	}
	assert.Equal(t, "https://content.example.com/projects/p1/plans/parter.jpg", result.Project.Plans[entity.FloorParter].URL())

	exists, err := bucket.Exists(ctx, "projects/p1/images/fata.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	stored, err := documents.Get(ctx, result.DocID)
	require.NoError(t, err)
	assert.Equal(t, "Vila Moderna", stored.Name)
}

func TestProjectRepository_UpdateKeepsAddsAndRemovesAssets(t *testing.T) {
	repo, _, bucket := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, pendingProject())
	require.NoError(t, err)

	// Keep the first image, drop the second, add a third.
	next := pendingProject()
	next.Images = []entity.AssetRef{
		created.Project.Images[0],
		entity.PendingAsset("interior.jpg", []byte("inside"), "image/jpeg"),
	}
	next.Plans = map[entity.FloorType]entity.AssetRef{
		entity.FloorParter: created.Project.Plans[entity.FloorParter],
	}

	updated, err := repo.Update(ctx, created.DocID, next)
	require.NoError(t, err)
	assert.Empty(t, updated.CleanupFailures)
	assert.Equal(t, created.Project.CreatedAt, updated.Project.CreatedAt)
	assert.Equal(t, "studio@example.com", updated.Project.CreatedBy)
	assert.False(t, updated.Project.UpdatedAt.IsZero())

	exists, err := bucket.Exists(ctx, "projects/p1/images/fata.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = bucket.Exists(ctx, "projects/p1/images/interior.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = bucket.Exists(ctx, "projects/p1/images/spate.jpg")
	require.NoError(t, err)
	assert.False(t, exists, "unreferenced asset should be cleaned up")
}

func TestProjectRepository_UpdateMissingDocument(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	_, err := repo.Update(context.Background(), "missing", pendingProject())
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}

func TestProjectRepository_DeleteRemovesAssetsAndDocument(t *testing.T) {
	repo, documents, bucket := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, pendingProject())
	require.NoError(t, err)

	result, err := repo.Delete(ctx, created.DocID)
	require.NoError(t, err)
	assert.Empty(t, result.CleanupFailures)

	_, err = documents.Get(ctx, created.DocID)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	exists, err := bucket.Exists(ctx, "projects/p1/images/fata.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProjectRepository_DeleteToleratesAlreadyMissingAssets(t *testing.T) {
	repo, _, bucket := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, pendingProject())
	require.NoError(t, err)

	require.NoError(t, bucket.Delete(ctx, "projects/p1/images/fata.jpg"))

	result, err := repo.Delete(ctx, created.DocID)
	require.NoError(t, err)
	assert.Empty(t, result.CleanupFailures)
}
