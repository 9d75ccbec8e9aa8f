package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"model-serving-service/internal/domain"
)

// mapDomainError translates core errors into the HTTP contract: a missing
// feature vector is the caller's fault, everything else the
// server reports as an internal failure with its stringified message.
func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoFeatures):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
