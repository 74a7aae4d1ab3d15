package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
)

type AccommodationRepo struct {
	DB *sql.DB
}

func (r AccommodationRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const accommodationColumns = `a.id, a.name, a.location, a.region, COALESCE(a.city_id, 0), COALESCE(c.name, ''), a.type,
		COALESCE(a.x_coordinate, 0), COALESCE(a.y_coordinate, 0), COALESCE(a.homepage, ''), COALESCE(a.description, ''),
		COALESCE(a.check_in_time, ''), COALESCE(a.check_out_time, ''), COALESCE(a.cancellation_policy, ''), COALESCE(a.info, '')`

func scanAccommodation(row interface{ Scan(...any) error }) (models.Accommodation, error) {
	var a models.Accommodation
	err := row.Scan(
		&a.ID, &a.Name, &a.Location, &a.Region, &a.CityID, &a.CityName, &a.Type,
		&a.XCoordinate, &a.YCoordinate, &a.Homepage, &a.Description,
		&a.CheckInTime, &a.CheckOutTime, &a.CancellationPolicy, &a.Info,
	)
	return a, err
}

// List returns accommodations, optionally filtered by region.
func (r AccommodationRepo) List(region string) ([]models.Accommodation, error) {
	query := `
		SELECT ` + accommodationColumns + `
		FROM accommodations a
		LEFT JOIN cities c ON c.id = a.city_id`
	args := []any{}
	if region != "" {
		query += ` WHERE a.region = ?`
		args = append(args, region)
	}
	query += ` ORDER BY a.id`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Accommodation{}
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID fetches a single accommodation with its amenities.
func (r AccommodationRepo) GetByID(id int64) (models.Accommodation, error) {
	row := r.db().QueryRow(`
		SELECT `+accommodationColumns+`
		FROM accommodations a
		LEFT JOIN cities c ON c.id = a.city_id
		WHERE a.id = ?`, id)

	a, err := scanAccommodation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Accommodation{}, domain.NotFoundError{Resource: "Accommodation", Msg: "Accommodation not found"}
		}
		return models.Accommodation{}, err
	}

	amenities, err := r.ListAmenities(id)
	if err != nil {
		return models.Accommodation{}, err
	}
	a.Amenities = amenities
	return a, nil
}

// ListAmenities returns the amenities linked to an accommodation.
func (r AccommodationRepo) ListAmenities(accommodationID int64) ([]models.Amenity, error) {
	rows, err := r.db().Query(`
		SELECT am.id, am.name, COALESCE(am.description, ''), COALESCE(am.icon, '')
		FROM amenities am
		JOIN accommodation_amenities aa ON aa.amenity_id = am.id
		WHERE aa.accommodation_id = ?
		ORDER BY am.id`, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Amenity{}
	for rows.Next() {
		var am models.Amenity
		if err := rows.Scan(&am.ID, &am.Name, &am.Description, &am.Icon); err != nil {
			return nil, err
		}
		out = append(out, am)
	}
	return out, rows.Err()
}

// Create inserts an accommodation and returns its id.
func (r AccommodationRepo) Create(a models.Accommodation) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO accommodations
			(name, location, region, city_id, type, x_coordinate, y_coordinate, homepage,
			 description, check_in_time, check_out_time, cancellation_policy, info)
		VALUES (?, ?, ?, NULLIF(?, 0), ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(a.Name), a.Location, a.Region, a.CityID, a.Type,
		a.XCoordinate, a.YCoordinate, a.Homepage,
		a.Description, a.CheckInTime, a.CheckOutTime, a.CancellationPolicy, a.Info)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AccommodationUpdate supports PATCH-style updates via key presence.
type AccommodationUpdate struct {
	Name               *string
	Location           *string
	Region             *string
	CityID             *int64
	Type               *string
	Homepage           *string
	Description        *string
	CheckInTime        *string
	CheckOutTime       *string
	CancellationPolicy *string
	Info               *string
}

// Update applies the provided fields only.
func (r AccommodationRepo) Update(id int64, upd AccommodationUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(col string, v any) {
		sets = append(sets, col+"=?")
		args = append(args, v)
	}
	if upd.Name != nil {
		add("name", strings.TrimSpace(*upd.Name))
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Region != nil {
		add("region", *upd.Region)
	}
	if upd.CityID != nil {
		sets = append(sets, "city_id=NULLIF(?, 0)")
		args = append(args, *upd.CityID)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Homepage != nil {
		add("homepage", *upd.Homepage)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.CheckInTime != nil {
		add("check_in_time", *upd.CheckInTime)
	}
	if upd.CheckOutTime != nil {
		add("check_out_time", *upd.CheckOutTime)
	}
	if upd.CancellationPolicy != nil {
		add("cancellation_policy", *upd.CancellationPolicy)
	}
	if upd.Info != nil {
		add("info", *upd.Info)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE accommodations SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an accommodation; room types and packages cascade.
func (r AccommodationRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM accommodations WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Accommodation", Msg: "Accommodation not found"}
	}
	return nil
}

// SetAmenities replaces the amenity links of an accommodation.
func (r AccommodationRepo) SetAmenities(accommodationID int64, amenityIDs []int64) error {
	db := r.db()
	if _, err := db.Exec(`DELETE FROM accommodation_amenities WHERE accommodation_id=?`, accommodationID); err != nil {
		return err
	}
	for _, amenityID := range amenityIDs {
		if _, err := db.Exec(`
			INSERT IGNORE INTO accommodation_amenities (accommodation_id, amenity_id) VALUES (?, ?)`,
			accommodationID, amenityID); err != nil {
			return err
		}
	}
	return nil
}
