package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry
}

type CityRepo struct {
	DB *sql.DB
}

func (r CityRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CityRepo) List() ([]models.City, error) {
	rows, err := r.db().Query(`SELECT id, name FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CityRepo) Create(name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO cities (name) VALUES (?)`, strings.TrimSpace(name))
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ConflictError{Resource: "city", Msg: "City already exists"}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r CityRepo) Rename(id int64, name string) error {
	res, err := r.db().Exec(`UPDATE cities SET name=? WHERE id=?`, strings.TrimSpace(name), id)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.ConflictError{Resource: "city", Msg: "City already exists"}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM cities WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			return domain.NotFoundError{Resource: "City"}
		}
	}
	return nil
}

// Delete removes a city; accommodations referencing it keep a NULL city.
func (r CityRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM cities WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "City"}
	}
	return nil
}

type AmenityRepo struct {
	DB *sql.DB
}

func (r AmenityRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AmenityRepo) List() ([]models.Amenity, error) {
	rows, err := r.db().Query(`SELECT id, name, COALESCE(description, ''), COALESCE(icon, '') FROM amenities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Amenity{}
	for rows.Next() {
		var a models.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AmenityRepo) Create(a models.Amenity) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO amenities (name, description, icon) VALUES (?, ?, ?)`,
		strings.TrimSpace(a.Name), a.Description, a.Icon)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AmenityUpdate supports PATCH-style updates via key presence.
type AmenityUpdate struct {
	Name        *string
	Description *string
	Icon        *string
}

func (r AmenityRepo) Update(id int64, upd AmenityUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *upd.Description)
	}
	if upd.Icon != nil {
		sets = append(sets, "icon=?")
		args = append(args, *upd.Icon)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE amenities SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM amenities WHERE id=?`, id).Scan(&exists); err == nil && exists == 0 {
			return domain.NotFoundError{Resource: "Amenity"}
		}
	}
	return nil
}

func (r AmenityRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM amenities WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "Amenity"}
	}
	return nil
}
