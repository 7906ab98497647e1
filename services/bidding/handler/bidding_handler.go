package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"open-hire/internal/auth"
	bidding "open-hire/internal/biddingService"
	model "open-hire/internal/models"
	"open-hire/services/bidding/helpers"
	"open-hire/utils"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_service.go -package=handler

type BiddingServiceInterface interface {
	SubmitBid(ctx context.Context, bidderEmail string, in bidding.SubmitBidInput) (model.Bid, error)
	TransitionStatus(ctx context.Context, bidID, requesterEmail string, target model.BidStatus) (model.Bid, error)
	GetBidsByBidder(ctx context.Context, email string) ([]model.Bid, error)
	GetBidsByBuyer(ctx context.Context, email string) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// SubmitBidHandler handles POST /add-bid
func (h *BiddingHandler) SubmitBidHandler(c *gin.Context) {
	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	deadline, err := helpers.ParseDeadline(req.Deadline)
	if err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bidder := c.GetString(auth.IdentityKey)
	bid, err := h.service.SubmitBid(c.Request.Context(), bidder, bidding.SubmitBidInput{
		JobID:    req.JobID,
		BidPrice: req.BidPrice,
		Comment:  req.Comment,
		Deadline: deadline,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: failed to submit bid", map[string]any{
			"handler":      "SubmitBidHandler",
			"job_id":       req.JobID,
			"bidder_email": bidder,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"bid_id":       bid.BidID,
		"job_id":       bid.JobID,
		"bidder_email": bidder,
		"bid_price":    bid.BidPrice,
	})
}

// UpdateStatusHandler handles PATCH /update-status/:id
func (h *BiddingHandler) UpdateStatusHandler(c *gin.Context) {
	bidID := c.Param("id")

	var req helpers.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	requester := c.GetString(auth.IdentityKey)
	bid, err := h.service.TransitionStatus(c.Request.Context(), bidID, requester, model.BidStatus(req.Status))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateStatusHandler: failed to update status", map[string]any{
			"bid_id": bidID,
			"status": req.Status,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "bid status updated successfully", map[string]any{
		"bid_id": bid.BidID,
		"status": string(bid.Status),
	})
}

// GetBidsByBidderHandler handles GET /my-bids/:email
func (h *BiddingHandler) GetBidsByBidderHandler(c *gin.Context) {
	email := c.Param("email")
	bids, err := h.service.GetBidsByBidder(c.Request.Context(), email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByBidderHandler: error retrieving bids", map[string]any{"bidder_email": email, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByBidderHandler", "bids retrieved successfully", map[string]any{
		"bidder_email": email,
		"count":        len(resp),
	})
}

// GetBidsByBuyerHandler handles GET /bid-requests/:email
func (h *BiddingHandler) GetBidsByBuyerHandler(c *gin.Context) {
	email := c.Param("email")
	bids, err := h.service.GetBidsByBuyer(c.Request.Context(), email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByBuyerHandler: error retrieving bid requests", map[string]any{"buyer_email": email, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid requests retrieved successfully")
	helpers.LogSuccess("GetBidsByBuyerHandler", "bid requests retrieved successfully", map[string]any{
		"buyer_email": email,
		"count":       len(resp),
	})
}
