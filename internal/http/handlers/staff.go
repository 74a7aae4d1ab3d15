package handlers

import (
	"net/http"

	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/http/middleware"
	"staybook/internal/repositories"
	"staybook/internal/utils"

	"github.com/gin-gonic/gin"
)

// Catalog management.

// GET /api/v1/staff/cities
func ListCities(c *gin.Context) {
	cities, err := repositories.CityRepo{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// POST /api/v1/staff/cities
func CreateCity(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if !BindValidated(c, &in) {
		return
	}

	id, err := repositories.CityRepo{}.Create(in.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.City{ID: id, Name: in.Name})
}

// PUT /api/v1/staff/cities/:id
func RenameCity(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if !BindValidated(c, &in) {
		return
	}
	if err := (repositories.CityRepo{}).Rename(id, in.Name); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.City{ID: id, Name: in.Name})
}

// DELETE /api/v1/staff/cities/:id
func DeleteCity(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.CityRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "City deleted"})
}

// GET /api/v1/staff/amenities
func ListAmenities(c *gin.Context) {
	amenities, err := repositories.AmenityRepo{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenities)
}

// POST /api/v1/staff/amenities
func CreateAmenity(c *gin.Context) {
	var in struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	if !BindValidated(c, &in) {
		return
	}

	amenity := models.Amenity{Name: in.Name, Description: in.Description, Icon: in.Icon}
	id, err := repositories.AmenityRepo{}.Create(amenity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	amenity.ID = id
	c.JSON(http.StatusCreated, amenity)
}

// PUT /api/v1/staff/amenities/:id
func UpdateAmenity(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var in struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	}
	if !BindValidated(c, &in) {
		return
	}
	err := repositories.AmenityRepo{}.Update(id, repositories.AmenityUpdate{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Amenity updated"})
}

// DELETE /api/v1/staff/amenities/:id
func DeleteAmenity(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.AmenityRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Amenity deleted"})
}

// Accommodation management.

// POST /api/v1/staff/accommodations
func CreateAccommodation(c *gin.Context) {
	var in struct {
		Name               string  `json:"name" binding:"required"`
		Location           string  `json:"location" binding:"required"`
		Region             string  `json:"region" binding:"required,region"`
		CityID             int64   `json:"city_id"`
		Type               string  `json:"type" binding:"required,oneof=hotel resort"`
		XCoordinate        float64 `json:"x_coordinate"`
		YCoordinate        float64 `json:"y_coordinate"`
		Homepage           string  `json:"homepage"`
		Description        string  `json:"description"`
		CheckInTime        string  `json:"check_in"`
		CheckOutTime       string  `json:"check_out"`
		CancellationPolicy string  `json:"cancellation_policy"`
		Info               string  `json:"info"`
	}
	if !BindValidated(c, &in) {
		return
	}

	repo := repositories.AccommodationRepo{}
	id, err := repo.Create(models.Accommodation{
		Name:               in.Name,
		Location:           in.Location,
		Region:             in.Region,
		CityID:             in.CityID,
		Type:               in.Type,
		XCoordinate:        in.XCoordinate,
		YCoordinate:        in.YCoordinate,
		Homepage:           in.Homepage,
		Description:        in.Description,
		CheckInTime:        in.CheckInTime,
		CheckOutTime:       in.CheckOutTime,
		CancellationPolicy: in.CancellationPolicy,
		Info:               in.Info,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/v1/staff/accommodations/:id
func UpdateAccommodation(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		Name               *string `json:"name"`
		Location           *string `json:"location"`
		Region             *string `json:"region" binding:"omitempty,region"`
		CityID             *int64  `json:"city_id"`
		Type               *string `json:"type" binding:"omitempty,oneof=hotel resort"`
		Homepage           *string `json:"homepage"`
		Description        *string `json:"description"`
		CheckInTime        *string `json:"check_in"`
		CheckOutTime       *string `json:"check_out"`
		CancellationPolicy *string `json:"cancellation_policy"`
		Info               *string `json:"info"`
	}
	if !BindValidated(c, &in) {
		return
	}

	repo := repositories.AccommodationRepo{}
	err := repo.Update(id, repositories.AccommodationUpdate{
		Name:               in.Name,
		Location:           in.Location,
		Region:             in.Region,
		CityID:             in.CityID,
		Type:               in.Type,
		Homepage:           in.Homepage,
		Description:        in.Description,
		CheckInTime:        in.CheckInTime,
		CheckOutTime:       in.CheckOutTime,
		CancellationPolicy: in.CancellationPolicy,
		Info:               in.Info,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/v1/staff/accommodations/:id
func DeleteAccommodation(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.AccommodationRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Accommodation deleted"})
}

// PUT /api/v1/staff/accommodations/:id/amenities
func SetAccommodationAmenities(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		AmenityIDs []int64 `json:"amenity_ids" binding:"required"`
	}
	if !BindValidated(c, &in) {
		return
	}

	repo := repositories.AccommodationRepo{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.SetAmenities(id, in.AmenityIDs); err != nil {
		RespondDomainError(c, err)
		return
	}

	amenities, err := repo.ListAmenities(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, amenities)
}

// Room type management.

// POST /api/v1/staff/accommodations/:id/room-types
func CreateRoomType(c *gin.Context) {
	accommodationID, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		Name          string  `json:"name" binding:"required"`
		Description   string  `json:"description"`
		BaseOccupancy int     `json:"base_occupancy" binding:"required,min=1"`
		MaxOccupancy  int     `json:"max_occupancy" binding:"required,min=1"`
		Area          float64 `json:"area"`
		NumLivingRoom int     `json:"num_living_room"`
		NumBedrooms   int     `json:"num_bedrooms"`
		NumBathrooms  int     `json:"num_bathrooms"`
	}
	if !BindValidated(c, &in) {
		return
	}
	if in.MaxOccupancy < in.BaseOccupancy {
		RespondDomainError(c, domain.ValidationError{Field: "max_occupancy", Msg: "'max_occupancy' must be at least 'base_occupancy'"})
		return
	}

	if _, err := (repositories.AccommodationRepo{}).GetByID(accommodationID); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.RoomTypeRepo{}
	id, err := repo.Create(models.RoomType{
		AccommodationID: accommodationID,
		Name:            in.Name,
		Description:     in.Description,
		BaseOccupancy:   in.BaseOccupancy,
		MaxOccupancy:    in.MaxOccupancy,
		Area:            in.Area,
		NumLivingRoom:   in.NumLivingRoom,
		NumBedrooms:     in.NumBedrooms,
		NumBathrooms:    in.NumBathrooms,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/v1/staff/room-types/:id
func UpdateRoomType(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		BaseOccupancy *int     `json:"base_occupancy" binding:"omitempty,min=1"`
		MaxOccupancy  *int     `json:"max_occupancy" binding:"omitempty,min=1"`
		Area          *float64 `json:"area"`
		NumLivingRoom *int     `json:"num_living_room"`
		NumBedrooms   *int     `json:"num_bedrooms"`
		NumBathrooms  *int     `json:"num_bathrooms"`
	}
	if !BindValidated(c, &in) {
		return
	}

	repo := repositories.RoomTypeRepo{}
	err := repo.Update(id, repositories.RoomTypeUpdate{
		Name:          in.Name,
		Description:   in.Description,
		BaseOccupancy: in.BaseOccupancy,
		MaxOccupancy:  in.MaxOccupancy,
		Area:          in.Area,
		NumLivingRoom: in.NumLivingRoom,
		NumBedrooms:   in.NumBedrooms,
		NumBathrooms:  in.NumBathrooms,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/v1/staff/room-types/:id
func DeleteRoomType(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := (repositories.RoomTypeRepo{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room type deleted"})
}

// PUT /api/v1/staff/room-types/:id/beds
func UpsertBedConfiguration(c *gin.Context) {
	roomTypeID, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		BedType string `json:"bed_type" binding:"required,bedtype"`
		Count   int    `json:"count" binding:"required,min=1"`
	}
	if !BindValidated(c, &in) {
		return
	}

	repo := repositories.RoomTypeRepo{}
	if _, err := repo.GetByID(roomTypeID); err != nil {
		RespondDomainError(c, err)
		return
	}
	err := repo.UpsertBedConfig(models.BedConfiguration{
		RoomTypeID: roomTypeID,
		BedType:    in.BedType,
		Count:      in.Count,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	beds, err := repo.ListBedConfig(roomTypeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, beds)
}

// Package management.

// POST /api/v1/staff/room-types/:id/packages
func CreatePackage(c *gin.Context) {
	roomTypeID, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		BasePrice   int64  `json:"base_price" binding:"min=0"`
		IsActive    *bool  `json:"is_active"`
	}
	if !BindValidated(c, &in) {
		return
	}

	if _, err := (repositories.RoomTypeRepo{}).GetByID(roomTypeID); err != nil {
		RespondDomainError(c, err)
		return
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	repo := repositories.PackageRepo{}
	id, err := repo.Create(models.Package{
		RoomTypeID:  roomTypeID,
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		IsActive:    active,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/v1/staff/packages/:id/active
func SetPackageActive(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if !BindValidated(c, &in) {
		return
	}

	repo := repositories.PackageRepo{}
	if err := repo.SetActive(id, *in.IsActive); err != nil {
		RespondDomainError(c, err)
		return
	}
	pkg, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// PUT /api/v1/staff/packages/:id/weekday-prices
func UpsertWeekdayPrice(c *gin.Context) {
	packageID, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		Weekday     *int  `json:"weekday" binding:"required,min=0,max=6"`
		RetailPrice int64 `json:"retail_price" binding:"required,min=1"`
		CostPrice   int64 `json:"cost_price" binding:"required,min=1"`
	}
	if !BindValidated(c, &in) {
		return
	}

	repo := repositories.PackageRepo{}
	if _, err := repo.GetByID(packageID); err != nil {
		RespondDomainError(c, err)
		return
	}
	err := repo.UpsertWeekdayBasePrice(models.WeekdayBasePrice{
		PackageID:   packageID,
		Weekday:     *in.Weekday,
		RetailPrice: in.RetailPrice,
		CostPrice:   in.CostPrice,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weekday price saved"})
}

// PUT /api/v1/staff/packages/:id/calendar
// Upserts daily rows over [from, to). A zero price pair keeps the weekday
// fallback in effect for those dates.
func UpsertPackageCalendar(c *gin.Context) {
	packageID, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		From        string `json:"from" binding:"required,dateymd"`
		To          string `json:"to" binding:"required,dateymd"`
		Status      string `json:"status" binding:"required,oneof=open close"`
		RetailPrice int64  `json:"retail_price" binding:"min=0"`
		CostPrice   int64  `json:"cost_price" binding:"min=0"`
	}
	if !BindValidated(c, &in) {
		return
	}

	from, _ := utils.ParseDate(in.From)
	to, _ := utils.ParseDate(in.To)
	if !from.Before(to) {
		RespondDomainError(c, domain.ValidationError{Msg: "'from' must be earlier than 'to'"})
		return
	}

	repo := repositories.PackageRepo{}
	if _, err := repo.GetByID(packageID); err != nil {
		RespondDomainError(c, err)
		return
	}

	dates := utils.DatesBetween(from, to)
	for _, date := range dates {
		err := repo.UpsertDailyAvailability(models.DailyAvailability{
			PackageID:   packageID,
			Date:        date,
			RetailPrice: in.RetailPrice,
			CostPrice:   in.CostPrice,
			Status:      in.Status,
		})
		if err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	utils.LogEvent(middleware.GetRequestID(c), "package", "calendar_upsert", in.From+".."+in.To)
	c.JSON(http.StatusOK, gin.H{"message": "Calendar updated", "days": len(dates)})
}

// Booking management.

// GET /api/v1/staff/bookings?status=
func ListBookings(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidBookingStatus(status) {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "Unknown booking status"})
		return
	}

	bookings, err := repositories.BookingRepo{}.List(status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type staffNoteRequest struct {
	StaffNote string `json:"staff_note"`
}

// POST /api/v1/bookings/:id/approve
func ApproveBooking(c *gin.Context) {
	bookingTransition(c, "approve")
}

// POST /api/v1/bookings/:id/deny
func DenyBooking(c *gin.Context) {
	bookingTransition(c, "deny")
}

// POST /api/v1/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	bookingTransition(c, "cancel")
}

func bookingTransition(c *gin.Context, action string) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in staffNoteRequest
	if c.Request.ContentLength > 0 {
		if !BindValidated(c, &in) {
			return
		}
	}

	svc := bookingService(c)
	var err error
	switch action {
	case "approve":
		err = svc.Approve(id, in.StaffNote)
	case "deny":
		err = svc.Deny(id, in.StaffNote)
	case "cancel":
		err = svc.Cancel(id, in.StaffNote)
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	booking, err := svc.BookingRepo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
