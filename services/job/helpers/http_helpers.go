package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"open-hire/internal/hireerrors"
	model "open-hire/internal/models"
	"open-hire/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, hireerrors.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, hireerrors.ErrPriceRange):
		return http.StatusBadRequest, "minimum price must be less than maximum price"
	case errors.Is(err, hireerrors.ErrPastDeadline):
		return http.StatusBadRequest, "job deadline must be in the future"
	case errors.Is(err, hireerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid job details"
	case errors.Is(err, hireerrors.ErrJobHasBids):
		return http.StatusConflict, "job has bids and cannot be deleted"
	case errors.Is(err, hireerrors.ErrUnauthorized):
		return http.StatusForbidden, "forbidden access"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseDeadline accepts the two client date formats: RFC 3339 or bare date
func ParseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse deadline %q: %w", s, hireerrors.ErrInvalidInput)
	}
	return t.UTC(), nil
}

// ToJobResponse converts a domain job into its wire shape
func ToJobResponse(job model.Job) JobResponse {
	return JobResponse{
		JobID:       job.JobID,
		Title:       job.Title,
		Description: job.Description,
		Category:    job.Category,
		MinPrice:    job.MinPrice,
		MaxPrice:    job.MaxPrice,
		Deadline:    job.Deadline.UTC().Format(time.RFC3339),
		Buyer: BuyerSnapshot{
			Email: job.Buyer.Email,
			Name:  job.Buyer.Name,
			Photo: job.Buyer.Photo,
		},
		BidCount:  job.BidCount,
		CreatedAt: job.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
