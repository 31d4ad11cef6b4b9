package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/store"
	"github.com/mdigital/sales-api/internal/transactions"
	"github.com/mdigital/sales-api/internal/validation"
)

// pathID parses the numeric :id path parameter. On a non-numeric value it
// writes a 400 response and reports false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return id, true
}

// writeError maps a service rejection to its response category. Rule
// rejections carry a reason body except for the ID mismatch, which the
// original API answered with a bare 400.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_id"})
	case errors.Is(err, validation.ErrIDMismatch):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, validation.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_amount"})
	case errors.Is(err, validation.ErrMissingArticles):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_articles"})
	case errors.Is(err, transactions.ErrReferenceNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference_not_found"})
	case errors.Is(err, store.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
