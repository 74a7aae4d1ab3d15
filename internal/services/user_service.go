package services

import (
	"strings"

	"staybook/internal/domain"
	"staybook/internal/domain/models"
	"staybook/internal/repositories"
	"staybook/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserService implements registration, login and profile management rules.
type UserService struct {
	UserRepo  repositories.UserRepo
	RequestID string
}

// SignUpInput carries the registration payload.
type SignUpInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// SignUp validates and creates a user. Validation problems come back as
// field-keyed errors matching the response shape.
func (s UserService) SignUp(in SignUpInput) (models.User, error) {
	fields := domain.FieldErrors{}

	required := map[string]string{
		"username":     in.Username,
		"email":        in.Email,
		"first_name":   in.FirstName,
		"last_name":    in.LastName,
		"phone_number": in.PhoneNumber,
		"password":     in.Password,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			fields.Add(field, "This field is required")
		}
	}
	if len(fields) > 0 {
		return models.User{}, fields
	}

	if !utils.IsValidEmail(in.Email) {
		fields.Add("email", "Enter a valid email address")
	}
	if !utils.IsValidPhoneNumber(in.PhoneNumber) {
		fields.Add("phone_number", "Phone number should be in digits")
	}
	if !utils.IsStrongPassword(in.Password) {
		fields.Add("password", "Password must be at least 8 characters and contain a letter and a digit")
	}
	if len(fields) > 0 {
		return models.User{}, fields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	user := models.User{
		Username:    strings.TrimSpace(in.Username),
		Email:       strings.TrimSpace(in.Email),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}
	id, err := s.UserRepo.Create(user, string(hash))
	if err != nil {
		return models.User{}, err
	}
	user.ID = id

	utils.LogEvent(s.RequestID, "user", "sign_up", "username="+user.Username)
	return user, nil
}

// Login verifies credentials and returns the user. Missing fields are a
// validation error; a wrong username or password is a permission error.
func (s UserService) Login(username, password string) (models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return models.User{}, domain.ValidationError{Msg: "Both 'username' and 'password' are required"}
	}

	user, hash, err := s.UserRepo.GetCredentials(strings.TrimSpace(username))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.PermissionError{Msg: "Invalid username or password"}
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.User{}, domain.PermissionError{Msg: "Invalid username or password"}
	}

	utils.LogEvent(s.RequestID, "user", "login", "username="+user.Username)
	return user, nil
}

func (s UserService) Profile(userID int64) (models.User, error) {
	return s.UserRepo.GetByID(userID)
}

// UpdateProfileInput supports PATCH-style updates via key presence. Avatar
// is the stored path; content sniffing happens at the handler.
type UpdateProfileInput struct {
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Avatar      *string
}

func (s UserService) UpdateProfile(userID int64, in UpdateProfileInput) (models.User, error) {
	fields := domain.FieldErrors{}

	if in.Email != nil {
		if !utils.IsValidEmail(*in.Email) {
			fields.Add("email", "Enter a valid email address")
		} else if used, err := s.UserRepo.EmailInUse(*in.Email, userID); err != nil {
			return models.User{}, err
		} else if used {
			fields.Add("email", "A user with that email already exists")
		}
	}
	if in.PhoneNumber != nil && !utils.IsValidPhoneNumber(*in.PhoneNumber) {
		fields.Add("phone_number", "Phone number should be in digits")
	}
	if len(fields) > 0 {
		return models.User{}, fields
	}

	err := s.UserRepo.Update(userID, repositories.UserUpdate{
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Avatar:      in.Avatar,
	})
	if err != nil {
		return models.User{}, err
	}

	utils.LogEvent(s.RequestID, "user", "update_profile", "")
	return s.UserRepo.GetByID(userID)
}

// ChangePassword requires the current password and a confirmed, strong new
// password.
func (s UserService) ChangePassword(userID int64, current, newPassword, confirm string) error {
	hash, err := s.UserRepo.GetPasswordHash(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)); err != nil {
		return domain.ValidationError{Field: "current_password", Msg: "Current password is incorrect"}
	}
	if newPassword != confirm {
		return domain.ValidationError{Field: "new_password", Msg: "Password confirmation does not match"}
	}
	if !utils.IsStrongPassword(newPassword) {
		return domain.ValidationError{Field: "new_password", Msg: "Password must be at least 8 characters and contain a letter and a digit"}
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	if err := s.UserRepo.UpdatePassword(userID, string(newHash)); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "user", "change_password", "")
	return nil
}
