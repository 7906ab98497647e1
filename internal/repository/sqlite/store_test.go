package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"open-hire/internal/db"
	"open-hire/internal/hireerrors"
	model "open-hire/internal/models"
	"open-hire/internal/repository"
	"open-hire/utils"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	conn, err := db.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(ctx, conn))
	return NewStore(conn)
}

func seedJob(t *testing.T, s *Store, buyerEmail string) model.Job {
	t.Helper()

	job := model.Job{
		JobID:       utils.GenerateID(),
		Title:       "Build landing page",
		Description: "Responsive single page site",
		Category:    "Web Development",
		MinPrice:    100,
		MaxPrice:    500,
		Deadline:    time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second).UTC(),
		Buyer:       model.Buyer{Email: buyerEmail, Name: "Buyer", Photo: "p.png"},
	}
	require.NoError(t, s.InsertJob(context.Background(), job))
	return job
}

func newBid(jobID string, buyer model.Buyer, bidderEmail string) model.Bid {
	return model.Bid{
		BidID:       utils.GenerateID(),
		JobID:       jobID,
		BidderEmail: bidderEmail,
		BidPrice:    300,
		Comment:     "I can do this",
		Deadline:    time.Now().Add(20 * 24 * time.Hour).Truncate(time.Second).UTC(),
		Buyer:       buyer,
		Status:      model.StatusPending,
		CreatedAt:   time.Now().Truncate(time.Second).UTC(),
	}
}

// Test job round trip and not-found paths
func TestStore_Jobs(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	job := seedJob(t, s, "buyer@example.com")

	got, err := s.GetJobByID(ctx, job.JobID)
	require.NoError(t, err)
	require.Equal(t, job.Title, got.Title)
	require.Equal(t, job.Buyer, got.Buyer)
	require.Equal(t, job.Deadline, got.Deadline)
	require.Equal(t, int64(0), got.BidCount)

	_, err = s.GetJobByID(ctx, "missing")
	require.ErrorIs(t, err, hireerrors.ErrJobNotFound)

	got.Title = "Refreshed title"
	got.MaxPrice = 900
	require.NoError(t, s.UpdateJob(ctx, got))

	updated, err := s.GetJobByID(ctx, job.JobID)
	require.NoError(t, err)
	require.Equal(t, "Refreshed title", updated.Title)
	require.Equal(t, 900.0, updated.MaxPrice)

	require.NoError(t, s.DeleteJob(ctx, job.JobID))
	require.ErrorIs(t, s.DeleteJob(ctx, job.JobID), hireerrors.ErrJobNotFound)
}

// Test the public listing filters
func TestStore_ListJobs(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(24 * time.Hour).Truncate(time.Second).UTC()
	titles := []struct {
		title    string
		category string
		deadline time.Time
	}{
		{"Logo design", "Graphics Design", base.Add(72 * time.Hour)},
		{"Landing page", "Web Development", base},
		{"API integration", "Web Development", base.Add(48 * time.Hour)},
	}
	for _, tc := range titles {
		require.NoError(t, s.InsertJob(ctx, model.Job{
			JobID:       utils.GenerateID(),
			Title:       tc.title,
			Description: "d",
			Category:    tc.category,
			MinPrice:    100,
			MaxPrice:    500,
			Deadline:    tc.deadline,
			Buyer:       model.Buyer{Email: "buyer@example.com", Name: "Buyer"},
		}))
	}

	all, err := s.ListJobs(ctx, repository.JobListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	web, err := s.ListJobs(ctx, repository.JobListQuery{Category: "Web Development"})
	require.NoError(t, err)
	require.Len(t, web, 2)

	search, err := s.ListJobs(ctx, repository.JobListQuery{Search: "landing"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	require.Equal(t, "Landing page", search[0].Title)

	asc, err := s.ListJobs(ctx, repository.JobListQuery{Sort: "asc"})
	require.NoError(t, err)
	require.Equal(t, "Landing page", asc[0].Title)
	require.Equal(t, "Logo design", asc[2].Title)

	dsc, err := s.ListJobs(ctx, repository.JobListQuery{Sort: "dsc"})
	require.NoError(t, err)
	require.Equal(t, "Logo design", dsc[0].Title)
}

// Test RecordBid: counter increment, duplicate constraint, missing job
func TestStore_RecordBid(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	job := seedJob(t, s, "buyer@example.com")
	bid := newBid(job.JobID, job.Buyer, "freelancer@example.com")

	require.NoError(t, s.RecordBid(ctx, bid))

	stored, err := s.GetBidByID(ctx, bid.BidID)
	require.NoError(t, err)
	require.Equal(t, bid, stored)

	// counter moved by exactly one
	after, err := s.GetJobByID(ctx, job.JobID)
	require.NoError(t, err)
	require.Equal(t, int64(1), after.BidCount)

	// second bid by the same bidder trips the uniqueness constraint and
	// leaves the counter alone
	dup := newBid(job.JobID, job.Buyer, "freelancer@example.com")
	err = s.RecordBid(ctx, dup)
	require.ErrorIs(t, err, hireerrors.ErrDuplicateBid)

	after, err = s.GetJobByID(ctx, job.JobID)
	require.NoError(t, err)
	require.Equal(t, int64(1), after.BidCount)

	_, err = s.GetBidByID(ctx, dup.BidID)
	require.ErrorIs(t, err, hireerrors.ErrBidNotFound)

	// a different bidder on the same job is fine
	other := newBid(job.JobID, job.Buyer, "other@example.com")
	require.NoError(t, s.RecordBid(ctx, other))

	after, err = s.GetJobByID(ctx, job.JobID)
	require.NoError(t, err)
	require.Equal(t, int64(2), after.BidCount)

	// missing job
	err = s.RecordBid(ctx, newBid("missing", job.Buyer, "freelancer@example.com"))
	require.ErrorIs(t, err, hireerrors.ErrJobNotFound)
}

// Test that concurrent duplicate submissions produce exactly one bid
func TestStore_RecordBid_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	job := seedJob(t, s, "buyer@example.com")

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.RecordBid(ctx, newBid(job.JobID, job.Buyer, "freelancer@example.com"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, hireerrors.ErrDuplicateBid)
		}
	}
	require.Equal(t, 1, succeeded)

	after, err := s.GetJobByID(ctx, job.JobID)
	require.NoError(t, err)
	require.Equal(t, int64(1), after.BidCount)

	bids, err := s.GetBidsByBidder(ctx, "freelancer@example.com")
	require.NoError(t, err)
	require.Len(t, bids, 1)
}

// Test the bid lookup paths
func TestStore_BidLookups(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	jobA := seedJob(t, s, "buyer-a@example.com")
	jobB := seedJob(t, s, "buyer-b@example.com")

	require.NoError(t, s.RecordBid(ctx, newBid(jobA.JobID, jobA.Buyer, "freelancer@example.com")))
	require.NoError(t, s.RecordBid(ctx, newBid(jobB.JobID, jobB.Buyer, "freelancer@example.com")))
	require.NoError(t, s.RecordBid(ctx, newBid(jobA.JobID, jobA.Buyer, "other@example.com")))

	byBidder, err := s.GetBidsByBidder(ctx, "freelancer@example.com")
	require.NoError(t, err)
	require.Len(t, byBidder, 2)

	byBuyer, err := s.GetBidsByBuyer(ctx, "buyer-a@example.com")
	require.NoError(t, err)
	require.Len(t, byBuyer, 2)

	found, err := s.FindBidByJobAndBidder(ctx, jobA.JobID, "freelancer@example.com")
	require.NoError(t, err)
	require.Equal(t, jobA.JobID, found.JobID)

	_, err = s.FindBidByJobAndBidder(ctx, jobB.JobID, "other@example.com")
	require.ErrorIs(t, err, hireerrors.ErrBidNotFound)
}

// Test the guarded status update
func TestStore_UpdateBidStatus(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	job := seedJob(t, s, "buyer@example.com")
	bid := newBid(job.JobID, job.Buyer, "freelancer@example.com")
	require.NoError(t, s.RecordBid(ctx, bid))

	n, err := s.UpdateBidStatus(ctx, bid.BidID, model.StatusPending, model.StatusInProgress)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	stored, err := s.GetBidByID(ctx, bid.BidID)
	require.NoError(t, err)
	require.Equal(t, model.StatusInProgress, stored.Status)

	// stale guard: the stored status is no longer Pending
	n, err = s.UpdateBidStatus(ctx, bid.BidID, model.StatusPending, model.StatusRejected)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	stored, err = s.GetBidByID(ctx, bid.BidID)
	require.NoError(t, err)
	require.Equal(t, model.StatusInProgress, stored.Status)

	// unknown bid
	n, err = s.UpdateBidStatus(ctx, "missing", model.StatusPending, model.StatusRejected)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

// Benchmark-ish sanity: inserting many bids keeps counter exact
func TestStore_CounterStaysExact(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	job := seedJob(t, s, "buyer@example.com")
	for i := 0; i < 25; i++ {
		bidder := fmt.Sprintf("freelancer%d@example.com", i)
		require.NoError(t, s.RecordBid(ctx, newBid(job.JobID, job.Buyer, bidder)))
	}

	after, err := s.GetJobByID(ctx, job.JobID)
	require.NoError(t, err)
	require.Equal(t, int64(25), after.BidCount)

	bids, err := s.GetBidsByBuyer(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, bids, int(after.BidCount))
}
