package repository

import "context"

// CleanupFailure records one best-effort asset deletion that did not
// succeed. Callers surface these alongside the overall result instead of
// swallowing them.
type CleanupFailure struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// ContentStore is the path-addressed blob store holding project images
// and floor plans under projects/{id}/images/{filename} and
// projects/{id}/plans/{filename}.
type ContentStore interface {
	// Upload writes the bytes under key and returns the fetchable URL.
	// Re-uploading the same key overwrites, which makes retried creates
	// idempotent.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes one blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every blob under a path prefix, best-effort
	// per item, and reports the failures.
	DeletePrefix(ctx context.Context, prefix string) []CleanupFailure

	// KeyFromURL maps a fetchable URL back to its storage key; ok is
	// false for URLs outside this store.
	KeyFromURL(url string) (key string, ok bool)
}
