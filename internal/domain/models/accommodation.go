package models

// Region values for accommodations.
const (
	RegionSeoul      = "seoul"
	RegionGyeonggi   = "gyeonggi"
	RegionGangwon    = "gangwon"
	RegionChungcheong = "chungcheong"
	RegionGyeongsang = "gyeongsang"
	RegionJeolla     = "jeolla"
	RegionJeju       = "jeju"
)

// AccommodationType values.
const (
	AccommodationHotel  = "hotel"
	AccommodationResort = "resort"
)

var validRegions = map[string]bool{
	RegionSeoul:       true,
	RegionGyeonggi:    true,
	RegionGangwon:     true,
	RegionChungcheong: true,
	RegionGyeongsang:  true,
	RegionJeolla:      true,
	RegionJeju:        true,
}

func IsValidRegion(region string) bool { return validRegions[region] }

type Accommodation struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Location           string  `json:"location"`
	Region             string  `json:"region"`
	CityID             int64   `json:"city_id,omitempty"`
	CityName           string  `json:"city,omitempty"`
	Type               string  `json:"type"`
	XCoordinate        float64 `json:"x_coordinate,omitempty"`
	YCoordinate        float64 `json:"y_coordinate,omitempty"`
	Homepage           string  `json:"homepage,omitempty"`
	Description        string  `json:"description,omitempty"`
	CheckInTime        string  `json:"check_in,omitempty"`
	CheckOutTime       string  `json:"check_out,omitempty"`
	CancellationPolicy string  `json:"cancellation_policy,omitempty"`
	Info               string  `json:"info,omitempty"`

	Amenities []Amenity  `json:"amenities,omitempty"`
	RoomTypes []RoomType `json:"room_types,omitempty"`
}

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Amenity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
