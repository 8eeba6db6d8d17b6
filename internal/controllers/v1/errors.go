package v1

import (
	"errors"
	"net/http"

	"github.com/agentcash/backend/internal/models"
	"gorm.io/gorm"
)

type httpError struct {
	Error string `json:"error" example:"the transaction kind is not recognized"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	// Validation problems: the submission was rejected before anything
	// was written
	return http.StatusBadRequest
}
