package repository

import (
	"context"

	"atelier/internal/domain/entity"
)

// MutationResult reports the outcome of a repository create or update.
// CleanupFailures lists assets whose best-effort deletion failed; they
// never fail the operation itself.
type MutationResult struct {
	DocID           string
	Project         *entity.Project
	CleanupFailures []CleanupFailure
}

// DeleteResult reports the outcome of a repository delete.
type DeleteResult struct {
	CleanupFailures []CleanupFailure
}

// ProjectRepository translates a validated in-memory project, pending
// binary assets included, into persisted state across the content store
// and the document store, and reverses the operation. There is no
// transaction spanning the two stores; consistency between them is
// eventual and partial failure surfaces in the result.
type ProjectRepository interface {
	// Create uploads every pending asset and writes one document with the
	// resulting URLs and a server-assigned creation timestamp. Any upload
	// or write failure fails the whole operation; assets already uploaded
	// are not rolled back.
	Create(ctx context.Context, project *entity.Project) (*MutationResult, error)

	// Update reads the existing document, uploads pending assets, keeps
	// stored URLs as-is, deletes no-longer-referenced assets best-effort,
	// and field-merges the new values with an update timestamp.
	Update(ctx context.Context, docID string, project *entity.Project) (*MutationResult, error)

	// Delete removes every asset under the project's storage namespace
	// best-effort, then deletes the document.
	Delete(ctx context.Context, docID string) (*DeleteResult, error)
}
