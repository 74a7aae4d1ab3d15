package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/utils"
)

type PackageRepo struct {
	DB *sql.DB
}

func (r PackageRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PackageRepo) GetByID(id int64) (models.Package, error) {
	var p models.Package
	err := r.db().QueryRow(`
		SELECT id, room_type_id, name, COALESCE(description, ''), base_price, is_active
		FROM packages
		WHERE id = ?`, id).
		Scan(&p.ID, &p.RoomTypeID, &p.Name, &p.Description, &p.BasePrice, &p.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Package{}, domain.NotFoundError{Resource: "Package", Msg: "Package not found"}
		}
		return models.Package{}, err
	}
	return p, nil
}

func (r PackageRepo) ListByRoomType(roomTypeID int64) ([]models.Package, error) {
	rows, err := r.db().Query(`
		SELECT id, room_type_id, name, COALESCE(description, ''), base_price, is_active
		FROM packages
		WHERE room_type_id = ?
		ORDER BY id`, roomTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Package{}
	for rows.Next() {
		var p models.Package
		if err := rows.Scan(&p.ID, &p.RoomTypeID, &p.Name, &p.Description, &p.BasePrice, &p.IsActive); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PackageRepo) Create(p models.Package) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO packages (room_type_id, name, description, base_price, is_active)
		VALUES (?, ?, ?, ?, ?)`,
		p.RoomTypeID, strings.TrimSpace(p.Name), p.Description, p.BasePrice, p.IsActive)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PackageRepo) SetActive(id int64, active bool) error {
	res, err := r.db().Exec(`UPDATE packages SET is_active=? WHERE id=?`, active, id)
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

// UpsertWeekdayBasePrice keeps (package, weekday) unique.
func (r PackageRepo) UpsertWeekdayBasePrice(wb models.WeekdayBasePrice) error {
	_, err := r.db().Exec(`
		INSERT INTO package_weekday_base_prices (package_id, weekday, retail_price, cost_price)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE retail_price = VALUES(retail_price), cost_price = VALUES(cost_price)`,
		wb.PackageID, wb.Weekday, wb.RetailPrice, wb.CostPrice)
	return err
}

// WeekdayBasePrices returns the fallback prices keyed by weekday
// (0=Sunday..6=Saturday).
func (r PackageRepo) WeekdayBasePrices(packageID int64) (map[int]models.WeekdayBasePrice, error) {
	rows, err := r.db().Query(`
		SELECT id, package_id, weekday, retail_price, cost_price
		FROM package_weekday_base_prices
		WHERE package_id = ?`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int]models.WeekdayBasePrice{}
	for rows.Next() {
		var wb models.WeekdayBasePrice
		if err := rows.Scan(&wb.ID, &wb.PackageID, &wb.Weekday, &wb.RetailPrice, &wb.CostPrice); err != nil {
			return nil, err
		}
		out[wb.Weekday] = wb
	}
	return out, rows.Err()
}

// UpsertDailyAvailability keeps (package, date) unique.
func (r PackageRepo) UpsertDailyAvailability(da models.DailyAvailability) error {
	_, err := r.db().Exec(`
		INSERT INTO package_daily_availabilities (package_id, date, retail_price, cost_price, status)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			retail_price = VALUES(retail_price),
			cost_price = VALUES(cost_price),
			status = VALUES(status)`,
		da.PackageID, utils.FormatDate(da.Date), da.RetailPrice, da.CostPrice, da.Status)
	return err
}

// DailyAvailabilities lists the per-date rows of one package inside
// [from, to), any status.
func (r PackageRepo) DailyAvailabilities(packageID int64, from, to time.Time) ([]models.DailyAvailability, error) {
	rows, err := r.db().Query(`
		SELECT id, package_id, date, retail_price, cost_price, status
		FROM package_daily_availabilities
		WHERE package_id = ? AND date >= ? AND date < ?
		ORDER BY date`,
		packageID, utils.FormatDate(from), utils.FormatDate(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DailyAvailability{}
	for rows.Next() {
		var da models.DailyAvailability
		if err := rows.Scan(&da.ID, &da.PackageID, &da.Date, &da.RetailPrice, &da.CostPrice, &da.Status); err != nil {
			return nil, err
		}
		out = append(out, da)
	}
	return out, rows.Err()
}

// PackageCombo pairs a package with its room type for listing endpoints.
type PackageCombo struct {
	Package      models.Package
	RoomTypeName string
}

// ListCombosByAccommodation returns every room-type/package combination of
// an accommodation, regardless of availability.
func (r PackageRepo) ListCombosByAccommodation(accommodationID int64) ([]PackageCombo, error) {
	rows, err := r.db().Query(`
		SELECT p.id, p.room_type_id, p.name, COALESCE(p.description, ''), p.base_price, p.is_active, rt.name
		FROM packages p
		JOIN room_types rt ON rt.id = p.room_type_id
		WHERE rt.accommodation_id = ?
		ORDER BY rt.id, p.id`, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PackageCombo{}
	for rows.Next() {
		var combo PackageCombo
		if err := rows.Scan(
			&combo.Package.ID, &combo.Package.RoomTypeID, &combo.Package.Name,
			&combo.Package.Description, &combo.Package.BasePrice, &combo.Package.IsActive,
			&combo.RoomTypeName,
		); err != nil {
			return nil, err
		}
		out = append(out, combo)
	}
	return out, rows.Err()
}

// FindBookableCombos returns active packages of the accommodation whose room
// type fits the guest count and that have an OPEN daily row for every date
// in [from, to). nights must equal the number of dates in the window.
func (r PackageRepo) FindBookableCombos(accommodationID int64, guests int, from, to time.Time, nights int) ([]PackageCombo, error) {
	rows, err := r.db().Query(`
		SELECT p.id, p.room_type_id, p.name, COALESCE(p.description, ''), p.base_price, p.is_active, rt.name
		FROM packages p
		JOIN room_types rt ON rt.id = p.room_type_id
		JOIN package_daily_availabilities da ON da.package_id = p.id
		WHERE rt.accommodation_id = ?
		  AND p.is_active = 1
		  AND rt.base_occupancy <= ?
		  AND rt.max_occupancy >= ?
		  AND da.status = 'open'
		  AND da.date >= ? AND da.date < ?
		GROUP BY p.id, p.room_type_id, p.name, p.description, p.base_price, p.is_active, rt.name
		HAVING COUNT(DISTINCT da.date) = ?
		ORDER BY p.id`,
		accommodationID, guests, guests, utils.FormatDate(from), utils.FormatDate(to), nights)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PackageCombo{}
	for rows.Next() {
		var combo PackageCombo
		if err := rows.Scan(
			&combo.Package.ID, &combo.Package.RoomTypeID, &combo.Package.Name,
			&combo.Package.Description, &combo.Package.BasePrice, &combo.Package.IsActive,
			&combo.RoomTypeName,
		); err != nil {
			return nil, err
		}
		out = append(out, combo)
	}
	return out, rows.Err()
}
