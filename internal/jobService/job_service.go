package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"open-hire/internal/hireerrors"
	"open-hire/internal/models"
	"open-hire/internal/repository"
	"open-hire/utils"
)

// JobInput carries the caller-supplied fields for creating or updating a job
type JobInput struct {
	Title       string
	Description string
	Category    string
	MinPrice    float64
	MaxPrice    float64
	Deadline    time.Time
}

// JobService defines the business logic for the job posting lifecycle
type JobService struct {
	repo repository.JobDB
}

// NewJobService creates a new JobService instance
func NewJobService(repo repository.JobDB) *JobService {
	return &JobService{repo: repo}
}

// CreateJob validates and persists a new posting owned by buyer. The buyer
// snapshot is embedded as-is and never rewritten afterwards.
func (s *JobService) CreateJob(ctx context.Context, buyer models.Buyer, in JobInput) (models.Job, error) {
	if buyer.Email == "" {
		return models.Job{}, fmt.Errorf("service: %w - missing buyer email", hireerrors.ErrInvalidInput)
	}
	if err := validateJobInput(in); err != nil {
		return models.Job{}, err
	}

	job := models.Job{
		JobID:       utils.GenerateID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		MinPrice:    in.MinPrice,
		MaxPrice:    in.MaxPrice,
		Deadline:    in.Deadline,
		Buyer:       buyer,
		BidCount:    0,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.InsertJob(ctx, job); err != nil {
		return models.Job{}, fmt.Errorf("service: failed to create job for %s: %w", buyer.Email, err)
	}

	return job, nil
}

// GetJob returns a single posting
func (s *JobService) GetJob(ctx context.Context, id string) (models.Job, error) {
	if id == "" {
		return models.Job{}, fmt.Errorf("service: %w - empty job ID", hireerrors.ErrInvalidInput)
	}

	job, err := s.repo.GetJobByID(ctx, id)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to get job %s: %w", id, err)
	}

	return job, nil
}

// ListJobs returns the public listing narrowed by q
func (s *JobService) ListJobs(ctx context.Context, q repository.JobListQuery) ([]models.Job, error) {
	jobs, err := s.repo.ListJobs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list jobs: %w", err)
	}

	return jobs, nil
}

// GetJobsByBuyer returns all postings owned by the given email
func (s *JobService) GetJobsByBuyer(ctx context.Context, email string) ([]models.Job, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty buyer email", hireerrors.ErrInvalidInput)
	}

	jobs, err := s.repo.GetJobsByBuyer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get jobs for buyer %s: %w", email, err)
	}

	return jobs, nil
}

// UpdateJob rewrites a posting's attributes after checking the requester owns it
func (s *JobService) UpdateJob(ctx context.Context, id, requesterEmail string, in JobInput) (models.Job, error) {
	if id == "" || requesterEmail == "" {
		return models.Job{}, fmt.Errorf("service: %w - missing job ID or requester email", hireerrors.ErrInvalidInput)
	}
	if err := validateJobInput(in); err != nil {
		return models.Job{}, err
	}

	job, err := s.repo.GetJobByID(ctx, id)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to load job %s: %w", id, err)
	}
	if !strings.EqualFold(requesterEmail, job.Buyer.Email) {
		return models.Job{}, fmt.Errorf("service: %w - only the job's buyer may update it", hireerrors.ErrUnauthorized)
	}

	job.Title = in.Title
	job.Description = in.Description
	job.Category = in.Category
	job.MinPrice = in.MinPrice
	job.MaxPrice = in.MaxPrice
	job.Deadline = in.Deadline

	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return models.Job{}, fmt.Errorf("service: failed to update job %s: %w", id, err)
	}

	return job, nil
}

// DeleteJob removes a posting after checking ownership. Deletion is refused
// while bids exist so bidder history never dangles.
func (s *JobService) DeleteJob(ctx context.Context, id, requesterEmail string) error {
	if id == "" || requesterEmail == "" {
		return fmt.Errorf("service: %w - missing job ID or requester email", hireerrors.ErrInvalidInput)
	}

	job, err := s.repo.GetJobByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to load job %s: %w", id, err)
	}
	if !strings.EqualFold(requesterEmail, job.Buyer.Email) {
		return fmt.Errorf("service: %w - only the job's buyer may delete it", hireerrors.ErrUnauthorized)
	}
	if job.BidCount > 0 {
		return fmt.Errorf("service: %w - job %s has %d bids", hireerrors.ErrJobHasBids, id, job.BidCount)
	}

	if err := s.repo.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete job %s: %w", id, err)
	}

	return nil
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Category) == "" || strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("service: %w - missing title, category or description", hireerrors.ErrInvalidInput)
	}
	if in.MinPrice >= in.MaxPrice {
		return fmt.Errorf("service: %w - got min %.2f, max %.2f", hireerrors.ErrPriceRange, in.MinPrice, in.MaxPrice)
	}
	if !in.Deadline.After(time.Now()) {
		return fmt.Errorf("service: %w", hireerrors.ErrPastDeadline)
	}
	return nil
}
