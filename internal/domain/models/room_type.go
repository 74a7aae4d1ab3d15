package models

// Bed type values for bed configurations.
const (
	BedSingle      = "single"
	BedSuperSingle = "superSingle"
	BedDouble      = "double"
	BedQueen       = "queen"
	BedKing        = "king"
	BedSuperKing   = "superKing"
	BedBunk        = "bunk"
	BedKorean      = "korean"
)

var validBedTypes = map[string]bool{
	BedSingle:      true,
	BedSuperSingle: true,
	BedDouble:      true,
	BedQueen:       true,
	BedKing:        true,
	BedSuperKing:   true,
	BedBunk:        true,
	BedKorean:      true,
}

func IsValidBedType(bedType string) bool { return validBedTypes[bedType] }

type RoomType struct {
	ID              int64   `json:"id"`
	AccommodationID int64   `json:"accommodation_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	BaseOccupancy   int     `json:"base_occupancy"`
	MaxOccupancy    int     `json:"max_occupancy"`
	Area            float64 `json:"area,omitempty"`
	NumLivingRoom   int     `json:"num_living_room"`
	NumBedrooms     int     `json:"num_bedrooms"`
	NumBathrooms    int     `json:"num_bathrooms"`

	BedConfig []BedConfiguration `json:"bed_config,omitempty"`
	Packages  []Package          `json:"packages,omitempty"`
}

// BedConfiguration rows are unique per (room_type, bed_type).
type BedConfiguration struct {
	ID         int64  `json:"id"`
	RoomTypeID int64  `json:"room_type_id"`
	BedType    string `json:"bed_type"`
	Count      int    `json:"count"`
}
