package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"open-hire/internal/hireerrors"
	model "open-hire/internal/models"
)

const bidColumns = `id, job_id, bidder_email, bid_price, comment, deadline, buyer_email, buyer_name, buyer_photo, status, created`

// RecordBid inserts a bid and increments the parent job's bid_count inside
// one transaction. The UNIQUE (job_id, bidder_email) constraint makes the
// one-bid-per-job-per-bidder rule structural: a concurrent duplicate loses
// at insert time and is reported as hireerrors.ErrDuplicateBid.
func (s *Store) RecordBid(ctx context.Context, bid model.Bid) error {
	tx, err := s.conn.GetConn().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record bid for job %s: begin tx: %w", bid.JobID, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE jobs SET bid_count = bid_count + 1 WHERE id = ?`, bid.JobID)
	if err != nil {
		return fmt.Errorf("record bid for job %s: increment count: %w", bid.JobID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record bid for job %s: increment count: %w", bid.JobID, err)
	}
	if n == 0 {
		return fmt.Errorf("record bid for job %s: %w", bid.JobID, hireerrors.ErrJobNotFound)
	}

	q := `INSERT INTO bids (` + bidColumns + `) VALUES (?,?,?,?,?,?,?,?,?,?,?)`
	_, err = tx.ExecContext(ctx, q,
		bid.BidID, bid.JobID, bid.BidderEmail, bid.BidPrice, bid.Comment,
		bid.Deadline.UTC().Unix(),
		bid.Buyer.Email, bid.Buyer.Name, bid.Buyer.Photo,
		string(bid.Status), bid.CreatedAt.UTC().Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("record bid for job %s by %s: %w", bid.JobID, bid.BidderEmail, hireerrors.ErrDuplicateBid)
		}
		return fmt.Errorf("record bid for job %s: %w", bid.JobID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record bid for job %s: commit: %w", bid.JobID, err)
	}
	return nil
}

// GetBidByID returns a single bid or hireerrors.ErrBidNotFound
func (s *Store) GetBidByID(ctx context.Context, id string) (model.Bid, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = ?`, id)
	bid, err := scanBid(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("get bid %s: %w", id, hireerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, err)
	}
	return bid, nil
}

// FindBidByJobAndBidder returns the bid the given bidder placed on the given
// job, or hireerrors.ErrBidNotFound when none exists
func (s *Store) FindBidByJobAndBidder(ctx context.Context, jobID, bidderEmail string) (model.Bid, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE job_id = ? AND bidder_email = ?`, jobID, bidderEmail)
	bid, err := scanBid(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("find bid for job %s by %s: %w", jobID, bidderEmail, hireerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("find bid for job %s by %s: %w", jobID, bidderEmail, err)
	}
	return bid, nil
}

// GetBidsByBidder returns all bids submitted by the given email
func (s *Store) GetBidsByBidder(ctx context.Context, email string) ([]model.Bid, error) {
	rows, err := s.conn.Query(ctx, `SELECT `+bidColumns+` FROM bids WHERE bidder_email = ?`, email)
	if err != nil {
		return nil, fmt.Errorf("get bids for bidder %s: %w", email, err)
	}
	defer rows.Close()

	return collectBids(rows)
}

// GetBidsByBuyer returns all bids placed against jobs owned by the given email
func (s *Store) GetBidsByBuyer(ctx context.Context, email string) ([]model.Bid, error) {
	rows, err := s.conn.Query(ctx, `SELECT `+bidColumns+` FROM bids WHERE buyer_email = ?`, email)
	if err != nil {
		return nil, fmt.Errorf("get bids for buyer %s: %w", email, err)
	}
	defer rows.Close()

	return collectBids(rows)
}

// UpdateBidStatus moves a bid from one status to another, guarded by the
// current status in the WHERE clause. Zero modified rows means the bid is
// gone or another request changed the status first; the caller decides which.
func (s *Store) UpdateBidStatus(ctx context.Context, id string, from, to model.BidStatus) (int64, error) {
	res, err := s.conn.Exec(ctx, `UPDATE bids SET status = ? WHERE id = ? AND status = ?`, string(to), id, string(from))
	if err != nil {
		return 0, fmt.Errorf("update status of bid %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update status of bid %s: %w", id, err)
	}
	return n, nil
}

func scanBid(row rowScanner) (model.Bid, error) {
	var (
		b        model.Bid
		deadline int64
		created  int64
		status   string
	)
	err := row.Scan(
		&b.BidID, &b.JobID, &b.BidderEmail, &b.BidPrice, &b.Comment,
		&deadline,
		&b.Buyer.Email, &b.Buyer.Name, &b.Buyer.Photo,
		&status, &created,
	)
	if err != nil {
		return model.Bid{}, err
	}
	b.Deadline = time.Unix(deadline, 0).UTC()
	b.CreatedAt = time.Unix(created, 0).UTC()
	b.Status = model.BidStatus(status)
	return b, nil
}

func collectBids(rows *sql.Rows) ([]model.Bid, error) {
	bids := []model.Bid{}
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid row: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bid rows: %w", err)
	}
	return bids, nil
}
