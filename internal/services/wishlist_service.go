package services

import (
	"fmt"
	"strings"

	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/repositories"
	"staybook/internal/utils"
)

// WishlistService enforces the one-wishlist-per-user rule and ownership on
// every access.
type WishlistService struct {
	WishlistRepo      repositories.WishlistRepo
	AccommodationRepo repositories.AccommodationRepo
	RequestID         string
}

func (s WishlistService) Create(caller domain.Caller, name string) (models.Wishlist, error) {
	if strings.TrimSpace(name) == "" {
		return models.Wishlist{}, domain.FieldErrors{"name": {"This field is required"}}
	}

	id, err := s.WishlistRepo.Create(caller.UserID, name)
	if err != nil {
		return models.Wishlist{}, err
	}

	utils.LogEvent(s.RequestID, "wishlist", "create", fmt.Sprintf("wishlist_id=%d", id))
	return s.WishlistRepo.GetByID(id)
}

// get loads the wishlist and checks ownership; non-owners get a 403-shaped
// error regardless of the operation.
func (s WishlistService) get(caller domain.Caller, id int64) (models.Wishlist, error) {
	w, err := s.WishlistRepo.GetByID(id)
	if err != nil {
		return models.Wishlist{}, err
	}
	if w.UserID != caller.UserID {
		return models.Wishlist{}, domain.PermissionError{Msg: "You do not have a permission to access this wishlist"}
	}
	return w, nil
}

func (s WishlistService) Get(caller domain.Caller, id int64) (models.Wishlist, error) {
	return s.get(caller, id)
}

func (s WishlistService) Rename(caller domain.Caller, id int64, name string) (models.Wishlist, error) {
	if strings.TrimSpace(name) == "" {
		return models.Wishlist{}, domain.FieldErrors{"name": {"This field is required"}}
	}
	if _, err := s.get(caller, id); err != nil {
		return models.Wishlist{}, err
	}
	if err := s.WishlistRepo.UpdateName(id, name); err != nil {
		return models.Wishlist{}, err
	}
	return s.WishlistRepo.GetByID(id)
}

func (s WishlistService) Delete(caller domain.Caller, id int64) error {
	if _, err := s.get(caller, id); err != nil {
		return err
	}
	if err := s.WishlistRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "wishlist", "delete", fmt.Sprintf("wishlist_id=%d", id))
	return nil
}

// AddAccommodation links an accommodation to the wishlist. Re-adding an
// already saved accommodation succeeds silently (set semantics).
func (s WishlistService) AddAccommodation(caller domain.Caller, id, accommodationID int64) (models.Wishlist, error) {
	if _, err := s.get(caller, id); err != nil {
		return models.Wishlist{}, err
	}
	if _, err := s.AccommodationRepo.GetByID(accommodationID); err != nil {
		return models.Wishlist{}, err
	}
	if err := s.WishlistRepo.AddAccommodation(id, accommodationID); err != nil {
		return models.Wishlist{}, err
	}
	return s.WishlistRepo.GetByID(id)
}

func (s WishlistService) RemoveAccommodation(caller domain.Caller, id, accommodationID int64) (models.Wishlist, error) {
	if _, err := s.get(caller, id); err != nil {
		return models.Wishlist{}, err
	}
	if err := s.WishlistRepo.RemoveAccommodation(id, accommodationID); err != nil {
		return models.Wishlist{}, err
	}
	return s.WishlistRepo.GetByID(id)
}
