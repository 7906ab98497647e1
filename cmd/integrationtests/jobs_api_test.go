package integrationtests

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJobCRUD(t *testing.T) {
	router, tokens := SetupTestRouter(t)

	buyerToken := TokenFor(t, tokens, buyerEmail)
	deadline := time.Now().Add(30 * 24 * time.Hour).UTC()

	// create
	w := ExecuteRequest(t, router, http.MethodPost, "/add-job", buyerToken, jobBody(100, 500, deadline))
	require.Equal(t, http.StatusCreated, w.Code)
	data := ParseData(t, w)
	jobID := data["job_id"].(string)
	require.Equal(t, buyerEmail, data["buyer"].(map[string]any)["email"])
	require.Equal(t, float64(0), data["bid_count"])

	// public read
	w = ExecuteRequest(t, router, http.MethodGet, "/job/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Build landing page", ParseData(t, w)["job_title"])

	// owner updates mutable fields
	updated := jobBody(200, 600, deadline)
	updated["job_title"] = "Build marketing site"
	w = ExecuteRequest(t, router, http.MethodPut, "/update-job/"+jobID, buyerToken, updated)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Build marketing site", ParseData(t, w)["job_title"])

	// a non-owner cannot update or delete
	strangerToken := TokenFor(t, tokens, "stranger@example.com")
	w = ExecuteRequest(t, router, http.MethodPut, "/update-job/"+jobID, strangerToken, updated)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = ExecuteRequest(t, router, http.MethodDelete, "/job/"+jobID, strangerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// owner deletes
	w = ExecuteRequest(t, router, http.MethodDelete, "/job/"+jobID, buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = ExecuteRequest(t, router, http.MethodGet, "/job/"+jobID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobValidation(t *testing.T) {
	router, tokens := SetupTestRouter(t)

	buyerToken := TokenFor(t, tokens, buyerEmail)
	deadline := time.Now().Add(30 * 24 * time.Hour).UTC()

	tests := []struct {
		name       string
		mutate     func(map[string]any)
		wantStatus int
	}{
		{"missing_title", func(b map[string]any) { delete(b, "job_title") }, http.StatusBadRequest},
		{"inverted_price_range", func(b map[string]any) { b["min_price"] = 500.0; b["max_price"] = 100.0 }, http.StatusBadRequest},
		{"past_deadline", func(b map[string]any) { b["deadline"] = time.Now().Add(-time.Hour).UTC().Format(time.RFC3339) }, http.StatusBadRequest},
		{"unparseable_deadline", func(b map[string]any) { b["deadline"] = "next tuesday" }, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := jobBody(100, 500, deadline)
			tt.mutate(body)
			w := ExecuteRequest(t, router, http.MethodPost, "/add-job", buyerToken, body)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/add-job", "", jobBody(100, 500, deadline))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// A job with live bids cannot be removed
func TestDeleteJobWithBids(t *testing.T) {
	router, tokens := SetupTestRouter(t)

	deadline := time.Now().Add(30 * 24 * time.Hour).UTC()
	jobID := createJob(t, router, tokens, 100, 500, deadline)

	bidderToken := TokenFor(t, tokens, bidderEmail)
	w := ExecuteRequest(t, router, http.MethodPost, "/add-bid", bidderToken, bidBody(jobID, 300, deadline.Add(-24*time.Hour)))
	require.Equal(t, http.StatusCreated, w.Code)

	buyerToken := TokenFor(t, tokens, buyerEmail)
	w = ExecuteRequest(t, router, http.MethodDelete, "/job/"+jobID, buyerToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// still there
	w = ExecuteRequest(t, router, http.MethodGet, "/job/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestListJobsFilterSearchSort(t *testing.T) {
	router, tokens := SetupTestRouter(t)

	buyerToken := TokenFor(t, tokens, buyerEmail)
	base := time.Now().Add(10 * 24 * time.Hour).UTC()

	seed := []struct {
		title    string
		category string
		deadline time.Time
	}{
		{"Build landing page", "Web Development", base.Add(72 * time.Hour)},
		{"Design app icon", "Graphics Design", base.Add(24 * time.Hour)},
		{"Write blog posts", "Digital Marketing", base.Add(48 * time.Hour)},
	}
	for _, s := range seed {
		body := jobBody(100, 500, s.deadline)
		body["job_title"] = s.title
		body["category"] = s.category
		w := ExecuteRequest(t, router, http.MethodPost, "/add-job", buyerToken, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	titles := func(list []any) []string {
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, item.(map[string]any)["job_title"].(string))
		}
		return out
	}

	t.Run("all", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/jobs", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, ParseDataList(t, w), 3)
	})

	t.Run("filter_by_category", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/jobs?filter="+url.QueryEscape("Graphics Design"), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []string{"Design app icon"}, titles(ParseDataList(t, w)))
	})

	t.Run("search_by_title", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/jobs?search=blog", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []string{"Write blog posts"}, titles(ParseDataList(t, w)))
	})

	t.Run("sort_by_deadline_asc", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/jobs?sort=asc", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []string{"Design app icon", "Write blog posts", "Build landing page"}, titles(ParseDataList(t, w)))
	})

	t.Run("sort_by_deadline_dsc", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/jobs?sort=dsc", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []string{"Build landing page", "Write blog posts", "Design app icon"}, titles(ParseDataList(t, w)))
	})

	t.Run("posted_jobs_scoped_to_owner", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/posted-jobs/"+buyerEmail, buyerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, ParseDataList(t, w), 3)
	})
}

func TestAuthFlow(t *testing.T) {
	router, _ := SetupTestRouter(t)

	t.Run("issue_token_sets_cookie", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/jwt", "", map[string]any{"email": buyerEmail})
		require.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, ParseData(t, w)["token"])

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "token", cookies[0].Name)
		require.True(t, cookies[0].HttpOnly)
	})

	t.Run("issue_token_rejects_bad_email", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodPost, "/jwt", "", map[string]any{"email": "not-an-email"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("logout_clears_cookie", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/logout", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "token", cookies[0].Name)
		require.Less(t, cookies[0].MaxAge, 0)
	})

	t.Run("garbage_token_rejected", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/my-bids/"+buyerEmail, "not.a.jwt", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
