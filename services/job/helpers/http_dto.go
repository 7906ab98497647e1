package helpers

// Request/Response DTOs
type JobRequest struct {
	Title       string  `json:"job_title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	MinPrice    float64 `json:"min_price" binding:"required,gt=0"`
	MaxPrice    float64 `json:"max_price" binding:"required,gtfield=MinPrice"`
	Deadline    string  `json:"deadline" binding:"required"`
	BuyerName   string  `json:"buyer_name"`
	BuyerPhoto  string  `json:"buyer_photo"`
}

type BuyerSnapshot struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type JobResponse struct {
	JobID       string        `json:"job_id"`
	Title       string        `json:"job_title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	MinPrice    float64       `json:"min_price"`
	MaxPrice    float64       `json:"max_price"`
	Deadline    string        `json:"deadline"`
	Buyer       BuyerSnapshot `json:"buyer"`
	BidCount    int64         `json:"bid_count"`
	CreatedAt   string        `json:"created_at"`
}
