package services

import (
	"testing"
	"time"

	intconfig "staybook/internal/config"
	"staybook/internal/domain"
	"staybook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validSignUp() SignUpInput {
	return SignUpInput{
		Username:    "hong",
		Email:       "hong@example.com",
		FirstName:   "Gildong",
		LastName:    "Hong",
		PhoneNumber: "01012345678",
		Password:    "abcd1234",
	}
}

func TestSignUpMissingFieldsAreCollected(t *testing.T) {
	svc := UserService{}
	_, err := svc.SignUp(SignUpInput{Username: "hong"})

	fields, ok := domain.IsFieldErrors(err)
	require.True(t, ok, "expected field errors, got %v", err)
	for _, field := range []string{"email", "first_name", "last_name", "phone_number", "password"} {
		assert.Contains(t, fields, field)
		assert.Contains(t, fields[field], "This field is required")
	}
	assert.NotContains(t, fields, "username")
}

func TestSignUpFormatRules(t *testing.T) {
	svc := UserService{}

	in := validSignUp()
	in.Email = "not-an-email"
	in.PhoneNumber = "021234567"
	in.Password = "short"
	_, err := svc.SignUp(in)

	fields, ok := domain.IsFieldErrors(err)
	require.True(t, ok, "expected field errors, got %v", err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone_number")
	assert.Contains(t, fields, "password")
}

func TestSignUpStoresHashedPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := UserService{UserRepo: repositories.UserRepo{DB: db}}
	user, err := svc.SignUp(validSignUp())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginValidation(t *testing.T) {
	svc := UserService{}

	_, err := svc.Login("", "secret")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Both 'username' and 'password' are required", err.Error())
}

func TestLoginWrongCredentials(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	intconfig.DB = db

	hash, err := bcrypt.GenerateFromPassword([]byte("abcd1234"), bcrypt.MinCost)
	require.NoError(t, err)

	// Unknown username.
	mock.ExpectQuery("FROM users").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// Known username, wrong password.
	mock.ExpectQuery("FROM users").WithArgs("hong").
		WillReturnRows(userCredentialRows(string(hash)))

	svc := UserService{UserRepo: repositories.UserRepo{DB: db}}

	_, err = svc.Login("ghost", "whatever1")
	assert.True(t, domain.IsPermission(err))
	assert.Equal(t, "Invalid username or password", err.Error())

	_, err = svc.Login("hong", "wrongpass1")
	assert.True(t, domain.IsPermission(err))
	assert.Equal(t, "Invalid username or password", err.Error())
}

func TestLoginSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	intconfig.DB = db

	hash, err := bcrypt.GenerateFromPassword([]byte("abcd1234"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("FROM users").WithArgs("hong").
		WillReturnRows(userCredentialRows(string(hash)))

	svc := UserService{UserRepo: repositories.UserRepo{DB: db}}
	user, err := svc.Login("hong", "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, "hong", user.Username)
}

func userCredentialRows(hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "email", "first_name", "last_name", "phone_number",
		"avatar", "points", "is_staff", "created_date", "password_hash",
	}).AddRow(1, "hong", "hong@example.com", "Gildong", "Hong", "01012345678",
		"", 0, false, time.Now(), hash)
}

func TestChangePasswordGuards(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)

	hash, err := bcrypt.GenerateFromPassword([]byte("abcd1234"), bcrypt.MinCost)
	require.NoError(t, err)

	hashRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"password_hash"}).AddRow(string(hash))
	}
	mock.ExpectQuery("SELECT password_hash FROM users").WillReturnRows(hashRows())
	mock.ExpectQuery("SELECT password_hash FROM users").WillReturnRows(hashRows())
	mock.ExpectQuery("SELECT password_hash FROM users").WillReturnRows(hashRows())

	svc := UserService{UserRepo: repositories.UserRepo{DB: db}}

	err = svc.ChangePassword(1, "wrongpass1", "efgh5678", "efgh5678")
	assert.True(t, domain.IsValidation(err), "wrong current password: %v", err)

	err = svc.ChangePassword(1, "abcd1234", "efgh5678", "mismatch9")
	assert.True(t, domain.IsValidation(err), "confirmation mismatch: %v", err)

	err = svc.ChangePassword(1, "abcd1234", "weak", "weak")
	assert.True(t, domain.IsValidation(err), "weak password: %v", err)
}
