package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"open-hire/internal/hireerrors"
	model "open-hire/internal/models"
	"open-hire/internal/repository"
)

const jobColumns = `id, title, description, category, min_price, max_price, deadline, buyer_email, buyer_name, buyer_photo, bid_count, created`

// InsertJob persists a new job posting
func (s *Store) InsertJob(ctx context.Context, job model.Job) error {
	q := `INSERT INTO jobs (` + jobColumns + `) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`
	_, err := s.conn.Exec(ctx, q,
		job.JobID, job.Title, job.Description, job.Category,
		job.MinPrice, job.MaxPrice, job.Deadline.UTC().Unix(),
		job.Buyer.Email, job.Buyer.Name, job.Buyer.Photo,
		job.BidCount, job.CreatedAt.UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert job %s: %w", job.JobID, err)
	}
	return nil
}

// GetJobByID returns a single job or hireerrors.ErrJobNotFound
func (s *Store) GetJobByID(ctx context.Context, id string) (model.Job, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Job{}, fmt.Errorf("get job %s: %w", id, hireerrors.ErrJobNotFound)
		}
		return model.Job{}, fmt.Errorf("get job %s: %w", id, err)
	}
	return job, nil
}

// ListJobs returns jobs narrowed and ordered by q
func (s *Store) ListJobs(ctx context.Context, q repository.JobListQuery) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}
	if q.Category != "" {
		query += ` AND category = ?`
		args = append(args, q.Category)
	}
	if q.Search != "" {
		query += ` AND title LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(q.Search)+"%")
	}
	switch q.Sort {
	case "asc":
		query += ` ORDER BY deadline ASC`
	case "dsc":
		query += ` ORDER BY deadline DESC`
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// GetJobsByBuyer returns all jobs posted by the given buyer email
func (s *Store) GetJobsByBuyer(ctx context.Context, email string) ([]model.Job, error) {
	rows, err := s.conn.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE buyer_email = ?`, email)
	if err != nil {
		return nil, fmt.Errorf("get jobs for buyer %s: %w", email, err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// UpdateJob rewrites the mutable attributes of a job. The buyer snapshot and
// bid_count are not touched through this path.
func (s *Store) UpdateJob(ctx context.Context, job model.Job) error {
	q := `UPDATE jobs SET title = ?, description = ?, category = ?, min_price = ?, max_price = ?, deadline = ? WHERE id = ?`
	res, err := s.conn.Exec(ctx, q,
		job.Title, job.Description, job.Category,
		job.MinPrice, job.MaxPrice, job.Deadline.UTC().Unix(), job.JobID,
	)
	if err != nil {
		return fmt.Errorf("update job %s: %w", job.JobID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update job %s: %w", job.JobID, err)
	}
	if n == 0 {
		return fmt.Errorf("update job %s: %w", job.JobID, hireerrors.ErrJobNotFound)
	}
	return nil
}

// DeleteJob removes a job posting
func (s *Store) DeleteJob(ctx context.Context, id string) error {
	res, err := s.conn.Exec(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete job %s: %w", id, hireerrors.ErrJobNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (model.Job, error) {
	var (
		j        model.Job
		deadline int64
		created  int64
	)
	err := row.Scan(
		&j.JobID, &j.Title, &j.Description, &j.Category,
		&j.MinPrice, &j.MaxPrice, &deadline,
		&j.Buyer.Email, &j.Buyer.Name, &j.Buyer.Photo,
		&j.BidCount, &created,
	)
	if err != nil {
		return model.Job{}, err
	}
	j.Deadline = time.Unix(deadline, 0).UTC()
	j.CreatedAt = time.Unix(created, 0).UTC()
	return j, nil
}

func collectJobs(rows *sql.Rows) ([]model.Job, error) {
	jobs := []model.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job rows: %w", err)
	}
	return jobs, nil
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
