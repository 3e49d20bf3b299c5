package impl

import (
	"context"
	"testing"

	"atelier/config"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogProject(name string, bedrooms int, garage bool, price, totalMP float64) *entity.Project {
	rooms := []entity.Room{}
	for range bedrooms {
		rooms = append(rooms, entity.Room{RoomType: entity.RoomDormitor, MP: 12})
	}
	rooms = append(rooms, entity.Room{RoomType: entity.RoomBaie, MP: 6})
	if garage {
		rooms = append(rooms, entity.Room{RoomType: entity.RoomGaraj, MP: 18})
	}

	return &entity.Project{
		ID:       "id-" + name,
		DocID:    "doc-" + name,
		Name:     name,
		Category: entity.CategoryParter,
		Price:    price,
		TotalMP:  totalMP,
		UsableMP: totalMP * 0.8,
		Images:   []entity.AssetRef{entity.StoredAsset("https://cdn.example.com/" + name + ".jpg")},
		Floors:   []entity.Floor{{Type: entity.FloorParter, Rooms: rooms}},
		Plans: map[entity.FloorType]entity.AssetRef{
			entity.FloorParter: entity.StoredAsset("https://cdn.example.com/" + name + "-plan.jpg"),
		},
	}
}

func newCatalogService(t *testing.T, similarLimit int) (usecase.CatalogUsecase, *mockRepo.MockProjectStore, *mockSvc.MockQRCodeService) {
	t.Helper()

	store := mockRepo.NewMockProjectStore(t)
	qr := mockSvc.NewMockQRCodeService(t)
	cfg := &config.Config{Catalog: &config.CatalogConfig{SimilarLimit: similarLimit}}

	service := NewCatalogService(CatalogServiceParams{
		Store:         store,
		QRCodeService: qr,
		Config:        cfg,
	})

	return service, store, qr
}

func intPtr(v int) *int                         { return &v }
func boolPtr(v bool) *bool                      { return &v }
func floatPtr(v float64) *float64               { return &v }
func catPtr(c entity.Category) *entity.Category { return &c }

func TestCatalogService_ListProjects_NoFilter(t *testing.T) {
	service, store, _ := newCatalogService(t, 6)
	ctx := context.Background()

	store.EXPECT().List(ctx).Return([]*entity.Project{
		catalogProject("Vila Moderna", 3, true, 1500, 200),
		catalogProject("Casa Mica", 2, false, 800, 120),
	}, nil)

	projects, err := service.ListProjects(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestCatalogService_ListProjects_CategoryUsesIndexedQuery(t *testing.T) {
	service, store, _ := newCatalogService(t, 6)
	ctx := context.Background()

	store.EXPECT().ListByCategory(ctx, entity.CategoryParter).Return([]*entity.Project{
		catalogProject("Vila Moderna", 3, true, 1500, 200),
	}, nil)

	projects, err := service.ListProjects(ctx, &usecase.ProjectFilter{Category: catPtr(entity.CategoryParter)})
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestCatalogService_ListProjects_Filters(t *testing.T) {
	all := []*entity.Project{
		catalogProject("Vila Moderna", 3, true, 1500, 200),
		catalogProject("Casa Mica", 2, false, 800, 120),
		catalogProject("Casa Medie", 3, false, 1100, 160),
	}

	tests := []struct {
		name   string
		filter *usecase.ProjectFilter
		want   []string
	}{
		{
			"bedrooms exact",
			&usecase.ProjectFilter{Bedrooms: intPtr(3)},
			[]string{"Vila Moderna", "Casa Medie"},
		},
		{
			"garage required",
			&usecase.ProjectFilter{HasGarage: boolPtr(true)},
			[]string{"Vila Moderna"},
		},
		{
			"no garage",
			&usecase.ProjectFilter{HasGarage: boolPtr(false)},
			[]string{"Casa Mica", "Casa Medie"},
		},
		{
			"max area",
			&usecase.ProjectFilter{MaxMP: floatPtr(150)},
			[]string{"Casa Mica"},
		},
		{
			"price range",
			&usecase.ProjectFilter{PriceMin: floatPtr(1000), PriceMax: floatPtr(1200)},
			[]string{"Casa Medie"},
		},
		{
			"bathrooms exact",
			&usecase.ProjectFilter{Bathrooms: intPtr(1)},
			[]string{"Vila Moderna", "Casa Mica", "Casa Medie"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, _ := newCatalogService(t, 6)
			ctx := context.Background()

			store.EXPECT().List(ctx).Return(all, nil)

			projects, err := service.ListProjects(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(projects))
			for _, p := range projects {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCatalogService_GetProjectByName_NotFound(t *testing.T) {
	service, store, _ := newCatalogService(t, 6)
	ctx := context.Background()

	store.EXPECT().FindByName(ctx, "Inexistent").Return(nil, repository.ErrDocumentNotFound)

	_, err := service.GetProjectByName(ctx, "Inexistent")
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestCatalogService_SimilarProjects_ExcludesSelfAndCapsLimit(t *testing.T) {
	service, store, _ := newCatalogService(t, 2)
	ctx := context.Background()

	self := catalogProject("Vila Moderna", 3, true, 1500, 200)
	noImages := catalogProject("Fara Poze", 2, false, 900, 130)
	noImages.Images = nil

	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(self, nil)
	store.EXPECT().ListByCategory(ctx, entity.CategoryParter).Return([]*entity.Project{
		self,
		noImages,
		catalogProject("Casa Mica", 2, false, 800, 120),
		catalogProject("Casa Medie", 3, false, 1100, 160),
		catalogProject("Casa Mare", 4, true, 2000, 250),
	}, nil)

	similar, err := service.SimilarProjects(ctx, "Vila Moderna")
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, "Casa Mica", similar[0].Name)
	assert.Equal(t, "Casa Medie", similar[1].Name)
}

func TestCatalogService_GenerateShareQR(t *testing.T) {
	service, store, qr := newCatalogService(t, 6)
	ctx := context.Background()

	store.EXPECT().FindByName(ctx, "Vila Moderna").Return(catalogProject("Vila Moderna", 3, true, 1500, 200), nil)
	qr.EXPECT().GenerateShareQR("Vila Moderna").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	qrBytes, err := service.GenerateShareQR(ctx, "Vila Moderna")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestCatalogService_GenerateShareQR_UnknownProject(t *testing.T) {
	service, store, _ := newCatalogService(t, 6)
	ctx := context.Background()

	store.EXPECT().FindByName(ctx, "Inexistent").Return(nil, repository.ErrDocumentNotFound)

	_, err := service.GenerateShareQR(ctx, "Inexistent")
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}
