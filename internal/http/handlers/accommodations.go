package handlers

import (
	"net/http"

	"staybook/internal/http/middleware"
	"staybook/internal/repositories"
	"staybook/internal/services"

	"github.com/gin-gonic/gin"
)

func availabilityService(c *gin.Context) services.AvailabilityService {
	return services.AvailabilityService{
		AccommodationRepo: repositories.AccommodationRepo{},
		PackageRepo:       repositories.PackageRepo{},
		RequestID:         middleware.GetRequestID(c),
	}
}

// GET /api/v1/accommodations/
// An empty result is a client-visible failure here, not an empty success.
func ListAccommodations(c *gin.Context) {
	region := c.Query("region")

	accommodations, err := repositories.AccommodationRepo{}.List(region)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if len(accommodations) == 0 {
		RespondError(c, http.StatusNotFound, "No accommodations found")
		return
	}

	if region == "" {
		region = "all"
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "data": accommodations})
}

// GET /api/v1/accommodations/:id
func GetAccommodation(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	accommodation, err := repositories.AccommodationRepo{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// Eager-load room types with their packages for the detail payload.
	roomTypes, err := repositories.RoomTypeRepo{}.ListByAccommodation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	for i := range roomTypes {
		packages, err := repositories.PackageRepo{}.ListByRoomType(roomTypes[i].ID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		roomTypes[i].Packages = packages
	}
	accommodation.RoomTypes = roomTypes

	c.JSON(http.StatusOK, accommodation)
}

// GET /api/v1/accommodations/:id/room-types
func ListRoomTypes(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	if _, err := (repositories.AccommodationRepo{}).GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	roomTypes, err := repositories.RoomTypeRepo{}.ListByAccommodation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomTypes)
}

// GET /api/v1/accommodations/:id/room-packages
func ListRoomPackages(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	combos, err := availabilityService(c).ListCombos(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, combos)
}

// GET /api/v1/accommodations/:id/available-room-packages?check_in=&check_out=&guests=
func ListAvailableRoomPackages(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	window, err := services.ParseStayWindow(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	guests, err := services.ParseGuests(c.Query("guests"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	results, err := availabilityService(c).Search(id, window, guests)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// No match is an empty 200, unlike the list endpoint.
	c.JSON(http.StatusOK, results)
}
