package helpers

// Request/Response DTOs
type SubmitBidRequest struct {
	JobID    string  `json:"job_id" binding:"required"`
	BidPrice float64 `json:"bid_price" binding:"required,gt=0"`
	Comment  string  `json:"comment" binding:"required"`
	Deadline string  `json:"deadline" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BuyerSnapshot struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type BidResponse struct {
	BidID       string        `json:"bid_id"`
	JobID       string        `json:"job_id"`
	BidderEmail string        `json:"bidder_email"`
	BidPrice    float64       `json:"bid_price"`
	Comment     string        `json:"comment"`
	Deadline    string        `json:"deadline"`
	Buyer       BuyerSnapshot `json:"buyer"`
	Status      string        `json:"status"`
	CreatedAt   string        `json:"created_at"`
}
