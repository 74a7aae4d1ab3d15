package handlers

import (
	"net/http"

	"staybook/internal/http/middleware"
	"staybook/internal/repositories"
	"staybook/internal/services"

	"github.com/gin-gonic/gin"
)

func wishlistService(c *gin.Context) services.WishlistService {
	return services.WishlistService{
		WishlistRepo:      repositories.WishlistRepo{},
		AccommodationRepo: repositories.AccommodationRepo{},
		RequestID:         middleware.GetRequestID(c),
	}
}

type wishlistNameRequest struct {
	Name string `json:"name"`
}

// POST /api/v1/wishlists/create
func CreateWishlist(c *gin.Context) {
	var in wishlistNameRequest
	if !BindJSONOrError(c, &in) {
		return
	}

	wishlist, err := wishlistService(c).Create(middleware.GetCaller(c), in.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wishlist)
}

// GET /api/v1/wishlists/:id
func GetWishlist(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	wishlist, err := wishlistService(c).Get(middleware.GetCaller(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

// PUT /api/v1/wishlists/:id
func RenameWishlist(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var in wishlistNameRequest
	if !BindJSONOrError(c, &in) {
		return
	}

	wishlist, err := wishlistService(c).Rename(middleware.GetCaller(c), id, in.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

// DELETE /api/v1/wishlists/:id
func DeleteWishlist(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	if err := wishlistService(c).Delete(middleware.GetCaller(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist deleted"})
}

// POST /api/v1/wishlists/:id/add/:accommodation_id
func AddWishlistAccommodation(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	accommodationID, ok := PathID(c, "accommodation_id")
	if !ok {
		return
	}

	wishlist, err := wishlistService(c).AddAccommodation(middleware.GetCaller(c), id, accommodationID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

// DELETE /api/v1/wishlists/:id/remove/:accommodation_id
func RemoveWishlistAccommodation(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	accommodationID, ok := PathID(c, "accommodation_id")
	if !ok {
		return
	}

	wishlist, err := wishlistService(c).RemoveAccommodation(middleware.GetCaller(c), id, accommodationID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}
