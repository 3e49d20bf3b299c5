package entity

import "fmt"

// Category is a project's design class. It determines which floors a
// project must, may and may not have.
type Category string

const (
	CategoryParter   Category = "Proiecte Case Parter"
	CategoryEtaj     Category = "Proiecte Case Etaj"
	CategoryMansarda Category = "Proiecte Case Mansarda"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryParter, CategoryEtaj, CategoryMansarda}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// CategoryFloorRule constrains the floor composition of a category.
type CategoryFloorRule struct {
	// DefaultFloors are auto-populated when the category is selected.
	DefaultFloors []FloorType

	// DisabledOptions may never be added for this category.
	DisabledOptions []FloorType

	// UndeletableFloors cannot be removed while the category is active.
	// Always a subset of DefaultFloors.
	UndeletableFloors []FloorType
}

var categoryFloorRules = map[Category]CategoryFloorRule{
	CategoryParter: {
		DefaultFloors:     []FloorType{FloorParter},
		DisabledOptions:   []FloorType{FloorEtaj1, FloorEtaj2, FloorEtaj3},
		UndeletableFloors: []FloorType{FloorParter},
	},
	CategoryEtaj: {
		DefaultFloors:     []FloorType{FloorParter, FloorEtaj1},
		DisabledOptions:   nil,
		UndeletableFloors: []FloorType{FloorParter, FloorEtaj1},
	},
	CategoryMansarda: {
		DefaultFloors:     []FloorType{FloorParter, FloorMansarda},
		DisabledOptions:   nil,
		UndeletableFloors: []FloorType{FloorParter, FloorMansarda},
	},
}

// RuleFor returns the floor rule for a category. The rule table is total
// over the category enumeration; an unknown category is a configuration
// error, not a runtime case, so RuleFor panics on one.
func RuleFor(c Category) CategoryFloorRule {
	rule, ok := categoryFloorRules[c]
	if !ok {
		panic(fmt.Sprintf("entity: no floor rule for category %q", c))
	}

	return rule
}
