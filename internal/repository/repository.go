package repository

import (
	"context"

	model "open-hire/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// JobListQuery narrows and orders the public job listing
type JobListQuery struct {
	Category string // exact category match when non-empty
	Search   string // case-insensitive title substring when non-empty
	Sort     string // "asc" or "dsc" by deadline, unordered otherwise
}

// JobDB defines the job storage contract for the marketplace
type JobDB interface {
	InsertJob(ctx context.Context, job model.Job) error
	GetJobByID(ctx context.Context, id string) (model.Job, error)
	ListJobs(ctx context.Context, q JobListQuery) ([]model.Job, error)
	GetJobsByBuyer(ctx context.Context, email string) ([]model.Job, error)
	UpdateJob(ctx context.Context, job model.Job) error
	DeleteJob(ctx context.Context, id string) error
}

// BidDB defines the bid storage contract for the marketplace.
//
// RecordBid persists the bid and increments the parent job's bid_count as a
// single transaction; a bid never exists without its counter increment. A
// second bid for the same (job, bidder) pair violates the storage uniqueness
// constraint and is reported as hireerrors.ErrDuplicateBid.
//
// UpdateBidStatus only writes when the stored status still equals from,
// returning the number of rows changed so callers can detect a lost race.
type BidDB interface {
	RecordBid(ctx context.Context, bid model.Bid) error
	GetBidByID(ctx context.Context, id string) (model.Bid, error)
	FindBidByJobAndBidder(ctx context.Context, jobID, bidderEmail string) (model.Bid, error)
	GetBidsByBidder(ctx context.Context, email string) ([]model.Bid, error)
	GetBidsByBuyer(ctx context.Context, email string) ([]model.Bid, error)
	UpdateBidStatus(ctx context.Context, id string, from, to model.BidStatus) (int64, error)
}
