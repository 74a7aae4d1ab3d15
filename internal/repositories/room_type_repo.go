package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
)

type RoomTypeRepo struct {
	DB *sql.DB
}

func (r RoomTypeRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const roomTypeColumns = `rt.id, rt.accommodation_id, rt.name, COALESCE(rt.description, ''),
		rt.base_occupancy, rt.max_occupancy, COALESCE(rt.area, 0),
		rt.num_living_room, rt.num_bedrooms, rt.num_bathrooms`

func scanRoomType(row interface{ Scan(...any) error }) (models.RoomType, error) {
	var rt models.RoomType
	err := row.Scan(
		&rt.ID, &rt.AccommodationID, &rt.Name, &rt.Description,
		&rt.BaseOccupancy, &rt.MaxOccupancy, &rt.Area,
		&rt.NumLivingRoom, &rt.NumBedrooms, &rt.NumBathrooms,
	)
	return rt, err
}

// ListByAccommodation returns room types with their bed configurations.
func (r RoomTypeRepo) ListByAccommodation(accommodationID int64) ([]models.RoomType, error) {
	rows, err := r.db().Query(`
		SELECT `+roomTypeColumns+`
		FROM room_types rt
		WHERE rt.accommodation_id = ?
		ORDER BY rt.id`, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RoomType{}
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		beds, err := r.ListBedConfig(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].BedConfig = beds
	}
	return out, nil
}

func (r RoomTypeRepo) GetByID(id int64) (models.RoomType, error) {
	row := r.db().QueryRow(`
		SELECT `+roomTypeColumns+`
		FROM room_types rt
		WHERE rt.id = ?`, id)

	rt, err := scanRoomType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RoomType{}, domain.NotFoundError{Resource: "Room type", Msg: "Room type not found"}
		}
		return models.RoomType{}, err
	}
	return rt, nil
}

func (r RoomTypeRepo) Create(rt models.RoomType) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO room_types
			(accommodation_id, name, description, base_occupancy, max_occupancy, area,
			 num_living_room, num_bedrooms, num_bathrooms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rt.AccommodationID, strings.TrimSpace(rt.Name), rt.Description,
		rt.BaseOccupancy, rt.MaxOccupancy, rt.Area,
		rt.NumLivingRoom, rt.NumBedrooms, rt.NumBathrooms)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RoomTypeUpdate supports PATCH-style updates via key presence.
type RoomTypeUpdate struct {
	Name          *string
	Description   *string
	BaseOccupancy *int
	MaxOccupancy  *int
	Area          *float64
	NumLivingRoom *int
	NumBedrooms   *int
	NumBathrooms  *int
}

func (r RoomTypeRepo) Update(id int64, upd RoomTypeUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(col string, v any) {
		sets = append(sets, col+"=?")
		args = append(args, v)
	}
	if upd.Name != nil {
		add("name", strings.TrimSpace(*upd.Name))
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.BaseOccupancy != nil {
		add("base_occupancy", *upd.BaseOccupancy)
	}
	if upd.MaxOccupancy != nil {
		add("max_occupancy", *upd.MaxOccupancy)
	}
	if upd.Area != nil {
		add("area", *upd.Area)
	}
	if upd.NumLivingRoom != nil {
		add("num_living_room", *upd.NumLivingRoom)
	}
	if upd.NumBedrooms != nil {
		add("num_bedrooms", *upd.NumBedrooms)
	}
	if upd.NumBathrooms != nil {
		add("num_bathrooms", *upd.NumBathrooms)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE room_types SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
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

func (r RoomTypeRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM room_types WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Room type", Msg: "Room type not found"}
	}
	return nil
}

func (r RoomTypeRepo) ListBedConfig(roomTypeID int64) ([]models.BedConfiguration, error) {
	rows, err := r.db().Query(`
		SELECT id, room_type_id, bed_type, bed_count
		FROM bed_configurations
		WHERE room_type_id = ?
		ORDER BY id`, roomTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BedConfiguration{}
	for rows.Next() {
		var bc models.BedConfiguration
		if err := rows.Scan(&bc.ID, &bc.RoomTypeID, &bc.BedType, &bc.Count); err != nil {
			return nil, err
		}
		out = append(out, bc)
	}
	return out, rows.Err()
}

// UpsertBedConfig keeps (room_type, bed_type) unique: existing rows are
// updated in place.
func (r RoomTypeRepo) UpsertBedConfig(bc models.BedConfiguration) error {
	_, err := r.db().Exec(`
		INSERT INTO bed_configurations (room_type_id, bed_type, bed_count)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE bed_count = VALUES(bed_count)`,
		bc.RoomTypeID, bc.BedType, bc.Count)
	return err
}
