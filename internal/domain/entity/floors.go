package entity

import "slices"

// ReduceFloors recomputes a project's floor list after a category change.
// Floors whose type the new category still requires keep their rooms;
// newly required types are added with no rooms; everything else is
// dropped. The result always contains exactly the new category's default
// floors, in rule order.
func ReduceFloors(current []Floor, newCategory Category) []Floor {
	rule := RuleFor(newCategory)

	floors := make([]Floor, 0, len(rule.DefaultFloors))
	for _, t := range rule.DefaultFloors {
		kept := Floor{Type: t}
		for _, f := range current {
			if f.Type == t {
				kept = f

				break
			}
		}
		floors = append(floors, kept)
	}

	return floors
}

// CanAddFloor reports whether a floor of type t may be added to the
// current list under the active category: the type must exist, must not
// already be present, and must not be disabled for the category.
func CanAddFloor(category Category, current []Floor, t FloorType) bool {
	if !t.Valid() {
		return false
	}
	for _, f := range current {
		if f.Type == t {
			return false
		}
	}

	return !slices.Contains(RuleFor(category).DisabledOptions, t)
}

// CanRemoveFloor reports whether a floor of type t may be removed under
// the active category.
func CanRemoveFloor(category Category, t FloorType) bool {
	return !slices.Contains(RuleFor(category).UndeletableFloors, t)
}

// AvailableFloors lists the floor types that may still be added to the
// current list under the active category.
func AvailableFloors(category Category, current []Floor) []FloorType {
	var available []FloorType
	for _, t := range AllFloors {
		if CanAddFloor(category, current, t) {
			available = append(available, t)
		}
	}

	return available
}
