// Package persistence coordinates the document store and the content
// store into a single project repository.
package persistence

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/errors"
)

type projectRepository struct {
	documents repository.ProjectStore
	contents  repository.ContentStore
	logger    *slog.Logger
}

// NewProjectRepository wires the two stores into the ProjectRepository
// implementation.
func NewProjectRepository(documents repository.ProjectStore, contents repository.ContentStore, logger *slog.Logger) repository.ProjectRepository {
	return &projectRepository{documents: documents, contents: contents, logger: logger}
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) (*repository.MutationResult, error) {
	if project.ID == "" {
		project.ID = entity.NewProjectID()
	}

	resolved, err := r.uploadPending(ctx, project)
	if err != nil {
		return nil, err
	}

	resolved.CreatedAt = time.Now().UTC()
	resolved.UpdatedAt = time.Time{}

	docID, err := r.documents.Add(ctx, resolved)
	if err != nil {
		return nil, err
	}
	resolved.DocID = docID

	return &repository.MutationResult{DocID: docID, Project: resolved}, nil
}

func (r *projectRepository) Update(ctx context.Context, docID string, project *entity.Project) (*repository.MutationResult, error) {
	existing, err := r.documents.Get(ctx, docID)
	if err != nil {
		return nil, err
	}

	project.ID = existing.ID

	resolved, err := r.uploadPending(ctx, project)
	if err != nil {
		return nil, err
	}

	resolved.DocID = docID
	resolved.CreatedAt = existing.CreatedAt
	resolved.CreatedBy = existing.CreatedBy
	resolved.UpdatedAt = time.Now().UTC()

	failures := r.cleanupUnreferenced(ctx, existing, resolved)

	if err := r.documents.Update(ctx, docID, resolved); err != nil {
		return nil, err
	}

	return &repository.MutationResult{DocID: docID, Project: resolved, CleanupFailures: failures}, nil
}

func (r *projectRepository) Delete(ctx context.Context, docID string) (*repository.DeleteResult, error) {
	existing, err := r.documents.Get(ctx, docID)
	if err != nil {
		return nil, err
	}

	failures := r.contents.DeletePrefix(ctx, "projects/"+existing.ID+"/")

	if err := r.documents.Delete(ctx, docID); err != nil {
		return nil, err
	}

	return &repository.DeleteResult{CleanupFailures: failures}, nil
}

// uploadPending uploads every pending asset concurrently and returns a
// copy of the project holding only stored refs. Stored refs pass through
// untouched.
func (r *projectRepository) uploadPending(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	resolved := *project

	images := make([]entity.AssetRef, len(project.Images))

	planTypes := make([]entity.FloorType, 0, len(project.Plans))
	planRefs := make([]entity.AssetRef, 0, len(project.Plans))
	for floorType, plan := range project.Plans {
		planTypes = append(planTypes, floorType)
		planRefs = append(planRefs, plan)
	}

	g, gctx := errgroup.WithContext(ctx)

	for i, img := range project.Images {
		if img.Stored() {
			images[i] = img

			continue
		}

		g.Go(func() error {
			key := "projects/" + project.ID + "/images/" + img.Filename()
			url, err := r.contents.Upload(gctx, key, img.Content(), img.ContentType())
			if err != nil {
				return errors.Wrapf(err, "failed to upload image %s", img.Filename())
			}
			images[i] = entity.StoredAsset(url)

			return nil
		})
	}

	for i, plan := range planRefs {
		if plan.Stored() {
			continue
		}

		g.Go(func() error {
			key := "projects/" + project.ID + "/plans/" + plan.Filename()
			url, err := r.contents.Upload(gctx, key, plan.Content(), plan.ContentType())
			if err != nil {
				return errors.Wrapf(err, "failed to upload plan %s", plan.Filename())
			}
			planRefs[i] = entity.StoredAsset(url)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	plans := make(map[entity.FloorType]entity.AssetRef, len(planRefs))
	for i, floorType := range planTypes {
		plans[floorType] = planRefs[i]
	}

	resolved.Images = images
	resolved.Plans = plans

	return &resolved, nil
}

// cleanupUnreferenced deletes assets the previous revision referenced
// that the new one no longer does. Deletions are best-effort: failures
// are logged and reported, never fatal.
func (r *projectRepository) cleanupUnreferenced(ctx context.Context, previous, current *entity.Project) []repository.CleanupFailure {
	referenced := make(map[string]struct{})
	for _, img := range current.Images {
		referenced[img.URL()] = struct{}{}
	}
	for _, plan := range current.Plans {
		referenced[plan.URL()] = struct{}{}
	}

	var failures []repository.CleanupFailure

	remove := func(ref entity.AssetRef) {
		if _, ok := referenced[ref.URL()]; ok {
			return
		}

		key, ok := r.contents.KeyFromURL(ref.URL())
		if !ok {
			return
		}

		if err := r.contents.Delete(ctx, key); err != nil {
			r.logger.Warn("cleanup of replaced asset failed", slog.String("key", key), slog.Any("error", err))
			failures = append(failures, repository.CleanupFailure{Key: key, Reason: err.Error()})
		}
	}

	for _, img := range previous.Images {
		remove(img)
	}
	for _, plan := range previous.Plans {
		remove(plan)
	}

	return failures
}
