package entity

// RoomType names the function of a room. The enumeration carries the
// locale synonyms used on the site: a matrimonial bedroom still counts as
// a bedroom, a "grup sanitar" still counts as a bathroom.
type RoomType string

const (
	RoomDormitor            RoomType = "Dormitor"
	RoomDormitorMatrimonial RoomType = "Dormitor matrimonial"
	RoomBaie                RoomType = "Baie"
	RoomBaieMatrimoniala    RoomType = "Baie matrimoniala"
	RoomGrupSanitar         RoomType = "Grup sanitar"
	RoomBucatarie           RoomType = "Bucatarie"
	RoomLiving              RoomType = "Living"
	RoomBirou               RoomType = "Birou"
	RoomGaraj               RoomType = "Garaj"
	RoomHol                 RoomType = "Hol"
	RoomDressing            RoomType = "Dressing"
	RoomTerasa              RoomType = "Terasa"
)

// RoomTypes lists every room type in the order the admin form offers them.
var RoomTypes = []RoomType{
	RoomDormitor,
	RoomDormitorMatrimonial,
	RoomBaie,
	RoomBaieMatrimoniala,
	RoomGrupSanitar,
	RoomBucatarie,
	RoomLiving,
	RoomBirou,
	RoomGaraj,
	RoomHol,
	RoomDressing,
	RoomTerasa,
}

// Synonym sets counted together on catalog cards and filters.
var (
	BedroomTypes  = []RoomType{RoomDormitor, RoomDormitorMatrimonial}
	BathroomTypes = []RoomType{RoomBaie, RoomBaieMatrimoniala, RoomGrupSanitar}
	OfficeTypes   = []RoomType{RoomBirou}
	GarageTypes   = []RoomType{RoomGaraj}
)

// CountRooms counts rooms across all floors whose type is a member of
// matchTypes. Absent or empty floors and rooms count as zero matches;
// ordering is irrelevant to the result.
func CountRooms(floors []Floor, matchTypes []RoomType) int {
	count := 0
	for _, floor := range floors {
		for _, room := range floor.Rooms {
			for _, t := range matchTypes {
				if room.RoomType == t {
					count++

					break
				}
			}
		}
	}

	return count
}
