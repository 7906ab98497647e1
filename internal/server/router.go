package server

import (
	"github.com/gin-gonic/gin"

	"open-hire/internal/auth"
	bidding "open-hire/internal/biddingService"
	"open-hire/internal/config"
	jobs "open-hire/internal/jobService"
	authhandler "open-hire/services/auth/handler"
	bidhandler "open-hire/services/bidding/handler"
	jobhandler "open-hire/services/job/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(cfg *config.Config, tokens *auth.TokenManager, jobService *jobs.JobService, biddingService *bidding.BiddingService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware(cfg.CORSOrigins))

	authHandler := authhandler.NewAuthHandler(tokens, cfg.SecureCookies)
	jobHandler := jobhandler.NewJobHandler(jobService)
	bidHandler := bidhandler.NewBiddingHandler(biddingService)

	authRequired := AuthRequiredMiddleware(tokens)

	router.POST("/jwt", authHandler.IssueTokenHandler)
	router.GET("/logout", authHandler.LogoutHandler)

	// public read path
	router.GET("/jobs", jobHandler.ListJobsHandler)
	router.GET("/job/:id", jobHandler.GetJobHandler)

	owned := router.Group("", authRequired)
	{
		owned.POST("/add-job", jobHandler.CreateJobHandler)
		owned.PUT("/update-job/:id", jobHandler.UpdateJobHandler)
		owned.DELETE("/job/:id", jobHandler.DeleteJobHandler)
		owned.GET("/posted-jobs/:email", RequireEmailParamMiddleware, jobHandler.GetJobsByBuyerHandler)

		owned.POST("/add-bid", bidHandler.SubmitBidHandler)
		owned.GET("/my-bids/:email", RequireEmailParamMiddleware, bidHandler.GetBidsByBidderHandler)
		owned.GET("/bid-requests/:email", RequireEmailParamMiddleware, bidHandler.GetBidsByBuyerHandler)
		owned.PATCH("/update-status/:id", bidHandler.UpdateStatusHandler)
	}

	return router
}
