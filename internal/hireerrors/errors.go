package hireerrors

import "errors"

// Repository-level errors
var (
	ErrJobNotFound = errors.New("job not found")
	ErrBidNotFound = errors.New("bid not found")
)

// Bid submission errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSelfBidDenied   = errors.New("buyer cannot bid on own job")
	ErrDuplicateBid    = errors.New("bid already placed for this job")
	ErrPriceOutOfRange = errors.New("bid price outside the job's budget range")
	ErrDeadlineTooLate = errors.New("bid deadline exceeds the job deadline")
)

// Job lifecycle errors
var (
	ErrPriceRange   = errors.New("minimum price must be less than maximum price")
	ErrPastDeadline = errors.New("job deadline must be in the future")
	ErrJobHasBids   = errors.New("job has bids and cannot be deleted")
)

// Status transition errors
var (
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrTerminalState     = errors.New("bid is completed and can no longer change")
	ErrStatusConflict    = errors.New("bid status changed concurrently")
)

// Identity errors
var (
	ErrUnauthenticated = errors.New("missing or invalid credentials")
	ErrUnauthorized    = errors.New("identity not permitted for this action")
)
