package entity

import "strings"

// Violation names a completeness rule a candidate project breaks.
type Violation string

const (
	ViolationEmptyName     Violation = "EMPTY_NAME"
	ViolationNoImages      Violation = "NO_IMAGES"
	ViolationPriceNotSet   Violation = "PRICE_NOT_POSITIVE"
	ViolationTotalMPNotSet Violation = "TOTAL_MP_NOT_POSITIVE"
	ViolationUsableMPNot   Violation = "USABLE_MP_NOT_POSITIVE"
	ViolationFloorNoRooms  Violation = "FLOOR_WITHOUT_ROOMS"
	ViolationFloorNoPlan   Violation = "FLOOR_WITHOUT_PLAN"
)

// ProjectViolations checks a candidate project's completeness and returns
// every rule it breaks. Room areas are deliberately not checked.
func ProjectViolations(name string, images []AssetRef, price, totalMP, usableMP float64, floors []Floor, plans map[FloorType]AssetRef) []Violation {
	var violations []Violation

	if strings.TrimSpace(name) == "" {
		violations = append(violations, ViolationEmptyName)
	}
	if len(images) == 0 {
		violations = append(violations, ViolationNoImages)
	}
	if price <= 0 {
		violations = append(violations, ViolationPriceNotSet)
	}
	if totalMP <= 0 {
		violations = append(violations, ViolationTotalMPNotSet)
	}
	if usableMP <= 0 {
		violations = append(violations, ViolationUsableMPNot)
	}

	for _, floor := range floors {
		if len(floor.Rooms) == 0 {
			violations = append(violations, ViolationFloorNoRooms)

			break
		}
	}

	for _, floor := range floors {
		if _, ok := plans[floor.Type]; !ok {
			violations = append(violations, ViolationFloorNoPlan)

			break
		}
	}

	return violations
}

// ValidateProject reports whether a candidate project passes every
// completeness check.
func ValidateProject(name string, images []AssetRef, price, totalMP, usableMP float64, floors []Floor, plans map[FloorType]AssetRef) bool {
	return len(ProjectViolations(name, images, price, totalMP, usableMP, floors, plans)) == 0
}
