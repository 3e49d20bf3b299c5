package usecase

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
)

// ProjectInput carries one admin submission of a project, with assets
// as a mix of already-stored URLs and files pending upload.
type ProjectInput struct {
	// ID is the asset-namespace identifier. Empty on a first create;
	// clients retrying a failed create resend the same ID so uploads
	// overwrite instead of duplicating.
	ID       string
	Name     string
	Category entity.Category
	Price    float64
	TotalMP  float64
	UsableMP float64
	Images   []entity.AssetRef
	Floors   []entity.Floor
	Plans    map[entity.FloorType]entity.AssetRef
}

// ProjectAdminUsecase defines the catalog mutation operations available
// to the admin account.
type ProjectAdminUsecase interface {
	// CreateProject validates and persists a new catalog entry.
	CreateProject(ctx context.Context, input *ProjectInput, createdBy string) (*repository.MutationResult, error)

	// UpdateProject validates and persists changes to an existing entry.
	UpdateProject(ctx context.Context, docID string, input *ProjectInput) (*repository.MutationResult, error)

	// DeleteProject removes an entry and its stored assets.
	DeleteProject(ctx context.Context, docID string) (*repository.DeleteResult, error)
}
