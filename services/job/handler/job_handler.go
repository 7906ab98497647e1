package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"open-hire/internal/auth"
	jobs "open-hire/internal/jobService"
	model "open-hire/internal/models"
	"open-hire/internal/repository"
	"open-hire/services/job/helpers"
	"open-hire/utils"
)

//go:generate mockgen -source=job_handler.go -destination=mock_service.go -package=handler

type JobServiceInterface interface {
	CreateJob(ctx context.Context, buyer model.Buyer, in jobs.JobInput) (model.Job, error)
	GetJob(ctx context.Context, id string) (model.Job, error)
	ListJobs(ctx context.Context, q repository.JobListQuery) ([]model.Job, error)
	GetJobsByBuyer(ctx context.Context, email string) ([]model.Job, error)
	UpdateJob(ctx context.Context, id, requesterEmail string, in jobs.JobInput) (model.Job, error)
	DeleteJob(ctx context.Context, id, requesterEmail string) error
}

type JobHandler struct {
	service JobServiceInterface
}

func NewJobHandler(service JobServiceInterface) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJobHandler handles POST /add-job
func (h *JobHandler) CreateJobHandler(c *gin.Context) {
	var req helpers.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateJobHandler", err)
		return
	}

	deadline, err := helpers.ParseDeadline(req.Deadline)
	if err != nil {
		helpers.HandleBindError(c, "CreateJobHandler", err)
		return
	}

	buyer := model.Buyer{
		Email: c.GetString(auth.IdentityKey),
		Name:  req.BuyerName,
		Photo: req.BuyerPhoto,
	}
	job, err := h.service.CreateJob(c.Request.Context(), buyer, jobs.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Deadline:    deadline,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateJobHandler: failed to create job", map[string]any{
			"buyer_email": buyer.Email,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToJobResponse(job), "job created successfully")
	helpers.LogSuccess("CreateJobHandler", "job created successfully", map[string]any{
		"job_id":      job.JobID,
		"buyer_email": buyer.Email,
		"category":    job.Category,
	})
}

// ListJobsHandler handles GET /jobs
func (h *JobHandler) ListJobsHandler(c *gin.Context) {
	q := repository.JobListQuery{
		Category: c.Query("filter"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	result, err := h.service.ListJobs(c.Request.Context(), q)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListJobsHandler: error listing jobs", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.JobResponse, 0, len(result))
	for _, job := range result {
		resp = append(resp, helpers.ToJobResponse(job))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "jobs retrieved successfully")
}

// GetJobHandler handles GET /job/:id
func (h *JobHandler) GetJobHandler(c *gin.Context) {
	id := c.Param("id")
	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetJobHandler: error retrieving job", map[string]any{"job_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToJobResponse(job), "job retrieved successfully")
}

// GetJobsByBuyerHandler handles GET /posted-jobs/:email
func (h *JobHandler) GetJobsByBuyerHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.service.GetJobsByBuyer(c.Request.Context(), email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetJobsByBuyerHandler: error retrieving jobs", map[string]any{"buyer_email": email, "error": err.Error()})
		return
	}

	resp := make([]helpers.JobResponse, 0, len(result))
	for _, job := range result {
		resp = append(resp, helpers.ToJobResponse(job))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "jobs retrieved successfully")
	helpers.LogSuccess("GetJobsByBuyerHandler", "jobs retrieved successfully", map[string]any{
		"buyer_email": email,
		"count":       len(resp),
	})
}

// UpdateJobHandler handles PUT /update-job/:id
func (h *JobHandler) UpdateJobHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateJobHandler", err)
		return
	}

	deadline, err := helpers.ParseDeadline(req.Deadline)
	if err != nil {
		helpers.HandleBindError(c, "UpdateJobHandler", err)
		return
	}

	requester := c.GetString(auth.IdentityKey)
	job, err := h.service.UpdateJob(c.Request.Context(), id, requester, jobs.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Deadline:    deadline,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateJobHandler: failed to update job", map[string]any{"job_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToJobResponse(job), "job updated successfully")
	helpers.LogSuccess("UpdateJobHandler", "job updated successfully", map[string]any{"job_id": job.JobID})
}

// DeleteJobHandler handles DELETE /job/:id
func (h *JobHandler) DeleteJobHandler(c *gin.Context) {
	id := c.Param("id")
	requester := c.GetString(auth.IdentityKey)

	if err := h.service.DeleteJob(c.Request.Context(), id, requester); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteJobHandler: failed to delete job", map[string]any{"job_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "job deleted successfully")
	helpers.LogSuccess("DeleteJobHandler", "job deleted successfully", map[string]any{"job_id": id})
}
