package handlers

import (
	"net/http"

	"staybook/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Domain-state
// conflicts (duplicate wishlist, repeated cancel request) surface as 400,
// permission and authentication failures both as 403.
func RespondDomainError(c *gin.Context, err error) {
	if fields, ok := domain.IsFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, fields)
		return
	}
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsPermission(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
