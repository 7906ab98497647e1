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
	case errors.Is(err, hireerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, hireerrors.ErrSelfBidDenied):
		return http.StatusForbidden, "buyers cannot bid on their own jobs"
	case errors.Is(err, hireerrors.ErrDuplicateBid):
		return http.StatusConflict, "already applied for the job"
	case errors.Is(err, hireerrors.ErrPriceOutOfRange):
		return http.StatusBadRequest, "bid price outside the job's budget range"
	case errors.Is(err, hireerrors.ErrDeadlineTooLate):
		return http.StatusBadRequest, "bid deadline exceeds the job deadline"
	case errors.Is(err, hireerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, hireerrors.ErrTerminalState):
		return http.StatusConflict, "bid is completed and can no longer change"
	case errors.Is(err, hireerrors.ErrInvalidTransition):
		return http.StatusConflict, "status transition not allowed"
	case errors.Is(err, hireerrors.ErrStatusConflict):
		return http.StatusConflict, "bid status changed concurrently, reload and retry"
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

// ToBidResponse converts a domain bid into its wire shape
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:       bid.BidID,
		JobID:       bid.JobID,
		BidderEmail: bid.BidderEmail,
		BidPrice:    bid.BidPrice,
		Comment:     bid.Comment,
		Deadline:    bid.Deadline.UTC().Format(time.RFC3339),
		Buyer: BuyerSnapshot{
			Email: bid.Buyer.Email,
			Name:  bid.Buyer.Name,
			Photo: bid.Buyer.Photo,
		},
		Status:    string(bid.Status),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
