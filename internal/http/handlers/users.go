package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"staybook/internal/http/middleware"
	"staybook/internal/repositories"
	"staybook/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxAvatarBytes = 5 << 20

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		UserRepo:  repositories.UserRepo{},
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/v1/users/sign-up
func SignUp(c *gin.Context) {
	var in services.SignUpInput
	if !BindJSONOrError(c, &in) {
		return
	}

	user, err := userService(c).SignUp(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

// POST /api/v1/users/login
func Login(c *gin.Context) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !BindJSONOrError(c, &in) {
		return
	}

	user, err := userService(c).Login(in.Username, in.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := tokenManager.Issue(user.ID, user.IsStaff)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /api/v1/users/logout
// Revokes the presented token for the remainder of its lifetime.
func Logout(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		RespondError(c, http.StatusForbidden, "Authentication required")
		return
	}
	tokenManager.Revoke(claims)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GET /api/v1/users/me
func GetProfile(c *gin.Context) {
	caller := middleware.GetCaller(c)

	user, err := userService(c).Profile(caller.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/v1/users/me
// Accepts JSON for field updates, or multipart with an optional "avatar"
// image part alongside text fields.
func UpdateProfile(c *gin.Context) {
	caller := middleware.GetCaller(c)
	contentType := c.GetHeader("Content-Type")

	var in services.UpdateProfileInput
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if !bindProfileForm(c, &in) {
			return
		}
	} else {
		var body struct {
			Email       *string `json:"email"`
			FirstName   *string `json:"first_name"`
			LastName    *string `json:"last_name"`
			PhoneNumber *string `json:"phone_number"`
		}
		if !BindJSONOrError(c, &body) {
			return
		}
		in = services.UpdateProfileInput{
			Email:       body.Email,
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			PhoneNumber: body.PhoneNumber,
		}
	}

	user, err := userService(c).UpdateProfile(caller.UserID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func bindProfileForm(c *gin.Context, in *services.UpdateProfileInput) bool {
	formField := func(name string) *string {
		if values, ok := c.Request.PostForm[name]; ok && len(values) > 0 {
			return &values[0]
		}
		return nil
	}

	if err := c.Request.ParseMultipartForm(maxAvatarBytes); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid multipart payload")
		return false
	}
	in.Email = formField("email")
	in.FirstName = formField("first_name")
	in.LastName = formField("last_name")
	in.PhoneNumber = formField("phone_number")

	file, header, err := c.Request.FormFile("avatar")
	if err == http.ErrMissingFile {
		return true
	}
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid avatar upload")
		return false
	}
	defer file.Close()

	if header.Size > maxAvatarBytes {
		RespondError(c, http.StatusBadRequest, "Avatar must be 5MB or smaller")
		return false
	}

	path, ok := storeAvatar(c, file, header.Filename)
	if !ok {
		return false
	}
	in.Avatar = &path
	return true
}

// storeAvatar sniffs the actual content type before accepting the file;
// the client-sent Content-Type header is not trusted.
func storeAvatar(c *gin.Context, file io.Reader, original string) (string, bool) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		RespondError(c, http.StatusBadRequest, "Invalid avatar upload")
		return "", false
	}
	head = head[:n]

	switch http.DetectContentType(head) {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		RespondError(c, http.StatusBadRequest, "Avatar must be an image file")
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".img"
	}
	dir := filepath.Join("uploads", "avatars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
		return "", false
	}
	path := filepath.Join(dir, fmt.Sprintf("%s%s", uuid.NewString(), ext))

	out, err := os.Create(path)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
		return "", false
	}
	defer out.Close()

	if _, err := out.Write(head); err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
		return "", false
	}
	if _, err := io.Copy(out, io.LimitReader(file, maxAvatarBytes)); err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong")
		return "", false
	}
	return path, true
}

// POST /api/v1/users/change-password
func ChangePassword(c *gin.Context) {
	caller := middleware.GetCaller(c)

	var in struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if !BindJSONOrError(c, &in) {
		return
	}

	if err := userService(c).ChangePassword(caller.UserID, in.CurrentPassword, in.NewPassword, in.ConfirmPassword); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
