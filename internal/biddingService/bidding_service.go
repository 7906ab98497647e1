package bidding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"open-hire/internal/hireerrors"
	"open-hire/internal/models"
	"open-hire/internal/repository"
	"open-hire/utils"
)

// SubmitBidInput carries the caller-supplied fields of a new bid. The bidder
// identity comes from the verified token, never from the request body.
type SubmitBidInput struct {
	JobID    string
	BidPrice float64
	Comment  string
	Deadline time.Time
}

// BiddingService defines the business logic for bid submission and the bid
// status state machine
type BiddingService struct {
	jobs repository.JobDB
	bids repository.BidDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(jobs repository.JobDB, bids repository.BidDB) *BiddingService {
	return &BiddingService{
		jobs: jobs,
		bids: bids,
	}
}

// SubmitBid validates and atomically records a bid against a job.
// Validation order: job exists, not a self-bid, no prior bid by the same
// bidder, price inside the job's budget, deadline within the job deadline.
func (s *BiddingService) SubmitBid(ctx context.Context, bidderEmail string, in SubmitBidInput) (models.Bid, error) {
	if in.JobID == "" || bidderEmail == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing job ID or bidder email", hireerrors.ErrInvalidInput)
	}

	job, err := s.jobs.GetJobByID(ctx, in.JobID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load job %s: %w", in.JobID, err)
	}

	if strings.EqualFold(bidderEmail, job.Buyer.Email) {
		return models.Bid{}, fmt.Errorf("service: %w", hireerrors.ErrSelfBidDenied)
	}

	_, err = s.bids.FindBidByJobAndBidder(ctx, in.JobID, bidderEmail)
	if err == nil {
		return models.Bid{}, fmt.Errorf("service: %w - job %s, bidder %s", hireerrors.ErrDuplicateBid, in.JobID, bidderEmail)
	}
	if !errors.Is(err, hireerrors.ErrBidNotFound) {
		return models.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}

	if in.BidPrice < job.MinPrice || in.BidPrice > job.MaxPrice {
		return models.Bid{}, fmt.Errorf("service: %w - allowed range %.2f to %.2f", hireerrors.ErrPriceOutOfRange, job.MinPrice, job.MaxPrice)
	}
	if in.Deadline.After(job.Deadline) {
		return models.Bid{}, fmt.Errorf("service: %w - job deadline is %s", hireerrors.ErrDeadlineTooLate, job.Deadline.Format(time.RFC3339))
	}
	if strings.TrimSpace(in.Comment) == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty comment", hireerrors.ErrInvalidInput)
	}

	bid := models.Bid{
		BidID:       utils.GenerateID(),
		JobID:       in.JobID,
		BidderEmail: bidderEmail,
		BidPrice:    in.BidPrice,
		Comment:     in.Comment,
		Deadline:    in.Deadline,
		Buyer:       job.Buyer,
		Status:      models.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.bids.RecordBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for job %s by %s: %w", in.JobID, bidderEmail, err)
	}

	return bid, nil
}

// TransitionStatus moves a bid through its state machine on behalf of
// requesterEmail. Buyers set In Progress and Rejected; Completed is accepted
// from the buyer or the bidder. A request for the current status is a no-op.
func (s *BiddingService) TransitionStatus(ctx context.Context, bidID, requesterEmail string, target models.BidStatus) (models.Bid, error) {
	if bidID == "" || requesterEmail == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing bid ID or requester email", hireerrors.ErrInvalidInput)
	}
	if !target.Valid() {
		return models.Bid{}, fmt.Errorf("service: %w - unknown status %q", hireerrors.ErrInvalidInput, target)
	}

	bid, err := s.bids.GetBidByID(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	if bid.Status == target {
		return bid, nil
	}
	if bid.Status.Terminal() {
		return models.Bid{}, fmt.Errorf("service: %w", hireerrors.ErrTerminalState)
	}
	if !bid.Status.CanTransitionTo(target) {
		return models.Bid{}, fmt.Errorf("service: %w - %s to %s", hireerrors.ErrInvalidTransition, bid.Status, target)
	}

	if err := authorizeTransition(bid, requesterEmail, target); err != nil {
		return models.Bid{}, err
	}

	n, err := s.bids.UpdateBidStatus(ctx, bidID, bid.Status, target)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update status of bid %s: %w", bidID, err)
	}
	if n == 0 {
		// The guarded write lost to a concurrent transition.
		return models.Bid{}, fmt.Errorf("service: bid %s: %w", bidID, hireerrors.ErrStatusConflict)
	}

	bid.Status = target
	return bid, nil
}

func authorizeTransition(bid models.Bid, requesterEmail string, target models.BidStatus) error {
	isBuyer := strings.EqualFold(requesterEmail, bid.Buyer.Email)
	isBidder := strings.EqualFold(requesterEmail, bid.BidderEmail)

	switch target {
	case models.StatusInProgress, models.StatusRejected:
		if !isBuyer {
			return fmt.Errorf("service: %w - only the job's buyer may set %s", hireerrors.ErrUnauthorized, target)
		}
	case models.StatusCompleted:
		if !isBuyer && !isBidder {
			return fmt.Errorf("service: %w - only the buyer or the bidder may complete a bid", hireerrors.ErrUnauthorized)
		}
	}
	return nil
}

// GetBidsByBidder returns every bid the given email has submitted
func (s *BiddingService) GetBidsByBidder(ctx context.Context, email string) ([]models.Bid, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty bidder email", hireerrors.ErrInvalidInput)
	}

	bids, err := s.bids.GetBidsByBidder(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for bidder %s: %w", email, err)
	}

	return bids, nil
}

// GetBidsByBuyer returns every bid placed against the given buyer's jobs
func (s *BiddingService) GetBidsByBuyer(ctx context.Context, email string) ([]models.Bid, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty buyer email", hireerrors.ErrInvalidInput)
	}

	bids, err := s.bids.GetBidsByBuyer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for buyer %s: %w", email, err)
	}

	return bids, nil
}
