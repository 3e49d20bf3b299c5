// Package entity contains the core business objects of the catalog,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is one catalog entry: a house design with pricing, areas, a
// floor/room breakdown, gallery images and one plan per floor.
//
// ID namespaces the project's assets in the content store and is assigned
// by the service; DocID is the document store's own record key and is only
// set once the project has been persisted. Name doubles as the lookup key
// from listing to detail views and is unique across the catalog.
type Project struct {
	ID       string                 `json:"id"`
	DocID    string                 `json:"docId,omitempty"`
	Name     string                 `json:"name"`
	Category Category               `json:"category"`
	Price    float64                `json:"price"`
	TotalMP  float64                `json:"totalMP"`
	UsableMP float64                `json:"usableMP"`
	Images   []AssetRef             `json:"images"`
	Floors   []Floor                `json:"floors"`
	Plans    map[FloorType]AssetRef `json:"plans"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty"`
}

// NewProjectID returns a fresh asset-namespace identifier for a project.
func NewProjectID() string {
	return uuid.NewString()
}

// Violations runs the project completeness checks and reports every rule
// the project breaks.
func (p *Project) Violations() []Violation {
	return ProjectViolations(p.Name, p.Images, p.Price, p.TotalMP, p.UsableMP, p.Floors, p.Plans)
}

// Valid reports whether the project passes all completeness checks.
func (p *Project) Valid() bool {
	return len(p.Violations()) == 0
}

// Bedrooms counts rooms of the bedroom synonym set across all floors.
func (p *Project) Bedrooms() int { return CountRooms(p.Floors, BedroomTypes) }

// Bathrooms counts rooms of the bathroom synonym set across all floors.
func (p *Project) Bathrooms() int { return CountRooms(p.Floors, BathroomTypes) }

// Garages counts garage rooms across all floors.
func (p *Project) Garages() int { return CountRooms(p.Floors, GarageTypes) }
