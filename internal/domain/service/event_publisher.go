package service

import (
	"context"
)

// Catalog event types published on admin mutations.
const (
	EventProjectCreated = "project.created"
	EventProjectUpdated = "project.updated"
	EventProjectDeleted = "project.deleted"
)

// CatalogEvent notifies downstream consumers (page caches, search
// indexes) that the catalog changed.
type CatalogEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	ProjectID string `json:"project_id"`
	DocID     string `json:"doc_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
}

// EventPublisher defines the interface for publishing catalog events to a
// message queue.
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change event.
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
