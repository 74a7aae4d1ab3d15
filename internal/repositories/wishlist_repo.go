package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
)

type WishlistRepo struct {
	DB *sql.DB
}

func (r WishlistRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts the user's wishlist; the unique user_id constraint keeps
// it one per user.
func (r WishlistRepo) Create(userID int64, name string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO wishlists (user_id, name) VALUES (?, ?)`,
		userID, strings.TrimSpace(name))
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ConflictError{Resource: "wishlist", Msg: "You already have a wishlist"}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches a wishlist with its owner's username and saved
// accommodations.
func (r WishlistRepo) GetByID(id int64) (models.Wishlist, error) {
	var w models.Wishlist
	err := r.db().QueryRow(`
		SELECT w.id, w.name, w.user_id, u.username
		FROM wishlists w
		JOIN users u ON u.id = w.user_id
		WHERE w.id = ?`, id).
		Scan(&w.ID, &w.Name, &w.UserID, &w.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Wishlist{}, domain.NotFoundError{Resource: "Wishlist", Msg: "Wishlist not found"}
		}
		return models.Wishlist{}, err
	}

	rows, err := r.db().Query(`
		SELECT `+accommodationColumns+`
		FROM accommodations a
		LEFT JOIN cities c ON c.id = a.city_id
		JOIN wishlist_accommodations wa ON wa.accommodation_id = a.id
		WHERE wa.wishlist_id = ?
		ORDER BY a.id`, id)
	if err != nil {
		return models.Wishlist{}, err
	}
	defer rows.Close()

	w.Accommodations = []models.Accommodation{}
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return models.Wishlist{}, err
		}
		w.Accommodations = append(w.Accommodations, a)
	}
	return w, rows.Err()
}

func (r WishlistRepo) UpdateName(id int64, name string) error {
	_, err := r.db().Exec(`UPDATE wishlists SET name=? WHERE id=?`, strings.TrimSpace(name), id)
	return err
}

func (r WishlistRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM wishlists WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Wishlist", Msg: "Wishlist not found"}
	}
	return nil
}

// AddAccommodation links an accommodation; re-adding succeeds silently.
func (r WishlistRepo) AddAccommodation(wishlistID, accommodationID int64) error {
	_, err := r.db().Exec(`
		INSERT IGNORE INTO wishlist_accommodations (wishlist_id, accommodation_id) VALUES (?, ?)`,
		wishlistID, accommodationID)
	return err
}

// RemoveAccommodation unlinks an accommodation; removing an absent one
// succeeds silently.
func (r WishlistRepo) RemoveAccommodation(wishlistID, accommodationID int64) error {
	_, err := r.db().Exec(`
		DELETE FROM wishlist_accommodations WHERE wishlist_id=? AND accommodation_id=?`,
		wishlistID, accommodationID)
	return err
}
