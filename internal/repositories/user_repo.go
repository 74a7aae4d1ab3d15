package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id, username, email, first_name, last_name, phone_number,
		COALESCE(avatar, ''), points, is_staff, created_date`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber,
		&u.Avatar, &u.Points, &u.IsStaff, &u.CreatedDate,
	)
	return u, err
}

// Create inserts a user; duplicate username/email surfaces as a field error.
func (r UserRepo) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users
			(username, email, password_hash, first_name, last_name, phone_number, avatar, points, is_staff, created_date, updated_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, NOW(), NOW())`,
		strings.TrimSpace(u.Username), strings.TrimSpace(u.Email), passwordHash,
		u.FirstName, u.LastName, u.PhoneNumber, u.Avatar, u.IsStaff)
	if err != nil {
		if isDuplicateEntry(err) {
			fields := domain.FieldErrors{}
			if strings.Contains(err.Error(), "email") {
				fields.Add("email", "A user with that email already exists")
			} else {
				fields.Add("username", "A user with that username already exists")
			}
			return 0, fields
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "User", Msg: "User not found"}
		}
		return models.User{}, err
	}
	return u, nil
}

// GetCredentials returns the user and password hash for login.
func (r UserRepo) GetCredentials(username string) (models.User, string, error) {
	var hash string
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, username, email, first_name, last_name, phone_number,
			COALESCE(avatar, ''), points, is_staff, created_date, password_hash
		FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber,
			&u.Avatar, &u.Points, &u.IsStaff, &u.CreatedDate, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.NotFoundError{Resource: "User", Msg: "User not found"}
		}
		return models.User{}, "", err
	}
	return u, hash, nil
}

// GetPasswordHash is used by the change-password flow.
func (r UserRepo) GetPasswordHash(id int64) (string, error) {
	var hash string
	err := r.db().QueryRow(`SELECT password_hash FROM users WHERE id = ?`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NotFoundError{Resource: "User", Msg: "User not found"}
		}
		return "", err
	}
	return hash, nil
}

// EmailInUse reports whether another user already registered the email.
func (r UserRepo) EmailInUse(email string, excludeUserID int64) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? AND id <> ?`, strings.TrimSpace(email), excludeUserID).
		Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UserUpdate supports PATCH-style profile updates via key presence.
type UserUpdate struct {
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Avatar      *string
}

func (r UserRepo) Update(id int64, upd UserUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(col string, v any) {
		sets = append(sets, col+"=?")
		args = append(args, v)
	}
	if upd.Email != nil {
		add("email", strings.TrimSpace(*upd.Email))
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.PhoneNumber != nil {
		add("phone_number", strings.TrimSpace(*upd.PhoneNumber))
	}
	if upd.Avatar != nil {
		add("avatar", *upd.Avatar)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_date=NOW()")
	args = append(args, id)

	_, err := r.db().Exec(`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	if err != nil && isDuplicateEntry(err) {
		fields := domain.FieldErrors{}
		fields.Add("email", "A user with that email already exists")
		return fields
	}
	return err
}

func (r UserRepo) UpdatePassword(id int64, passwordHash string) error {
	_, err := r.db().Exec(`UPDATE users SET password_hash=?, updated_date=NOW() WHERE id=?`, passwordHash, id)
	return err
}
