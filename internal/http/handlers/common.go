package handlers

import (
	"net/http"
	"strconv"

	"staybook/internal/auth"
	intconfig "staybook/internal/config"
	"staybook/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	env          intconfig.Env
	tokenManager auth.TokenManager
	mailer       *services.MailService
)

// Configure wires handler-level dependencies once at startup.
func Configure(e intconfig.Env, tm auth.TokenManager) {
	env = e
	tokenManager = tm
	mailer = &services.MailService{Env: e}
}

// RespondError sends a plain error payload.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "Request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// PathID parses the named numeric path parameter, responding 404 when it is
// not a valid id.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}
