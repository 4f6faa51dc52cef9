package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Abhivamsh/community-backend/internal/common"

	"github.com/gin-gonic/gin"
)

// abortWithError maps service-layer errors to HTTP responses. Store
// failures never leak their internals to the client.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrAlreadyLiked):
		c.JSON(http.StatusConflict, gin.H{"error": "you already liked this"})
	case errors.Is(err, common.ErrPostNotFound),
		errors.Is(err, common.ErrCommentNotFound),
		errors.Is(err, common.ErrParentNotFound),
		errors.Is(err, common.ErrTargetNotFound),
		errors.Is(err, common.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// normalizeName canonicalizes a display name before it reaches the core:
// surrounding whitespace stripped, lowercased, so "  Alice " and "alice"
// are the same identity.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
