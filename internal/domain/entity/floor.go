package entity

// FloorType names a level of a house design.
type FloorType string

const (
	FloorParter   FloorType = "Parter"
	FloorEtaj1    FloorType = "Etaj 1"
	FloorEtaj2    FloorType = "Etaj 2"
	FloorEtaj3    FloorType = "Etaj 3"
	FloorMansarda FloorType = "Mansarda"
	FloorSubsol   FloorType = "Subsol"
)

// AllFloors lists every floor type in display order.
var AllFloors = []FloorType{FloorParter, FloorEtaj1, FloorEtaj2, FloorEtaj3, FloorMansarda, FloorSubsol}

// Valid reports whether t is one of the fixed floor types.
func (t FloorType) Valid() bool {
	for _, known := range AllFloors {
		if t == known {
			return true
		}
	}

	return false
}

// Floor is a named level of a project containing rooms. A floor belongs to
// exactly one project and is not independently addressable.
type Floor struct {
	Type  FloorType `json:"type"`
	Rooms []Room    `json:"rooms"`
}

// Room is a named space on a floor with an area in square meters.
type Room struct {
	RoomType RoomType `json:"roomType"`
	MP       float64  `json:"mp"`
}
