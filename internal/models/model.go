package models

import "time"

// BidStatus is the lifecycle state of a bid
type BidStatus string

const (
	StatusPending    BidStatus = "Pending"
	StatusInProgress BidStatus = "In Progress"
	StatusRejected   BidStatus = "Rejected"
	StatusCompleted  BidStatus = "Completed"
)

// Valid reports whether s is one of the known bid statuses
func (s BidStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted out of s
func (s BidStatus) Terminal() bool {
	return s == StatusCompleted
}

// CanTransitionTo reports whether the state machine allows moving from s to target.
// Allowed edges: Pending -> In Progress, Pending -> Rejected, In Progress -> Completed.
func (s BidStatus) CanTransitionTo(target BidStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusRejected
	case StatusInProgress:
		return target == StatusCompleted
	}
	return false
}

// Buyer is the denormalized snapshot of a job's owner, embedded on jobs and
// bids at write time. Profile changes do not propagate to historical records.
type Buyer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Job represents a posted work item with a budget range and deadline
type Job struct {
	JobID       string    `json:"job_id"`
	Title       string    `json:"job_title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	MinPrice    float64   `json:"min_price"`
	MaxPrice    float64   `json:"max_price"`
	Deadline    time.Time `json:"deadline"`
	Buyer       Buyer     `json:"buyer"`
	BidCount    int64     `json:"bid_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid represents a single proposal by one bidder against one job
type Bid struct {
	BidID       string    `json:"bid_id"`
	JobID       string    `json:"job_id"`
	BidderEmail string    `json:"bidder_email"`
	BidPrice    float64   `json:"bid_price"`
	Comment     string    `json:"comment"`
	Deadline    time.Time `json:"deadline"`
	Buyer       Buyer     `json:"buyer"`
	Status      BidStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
