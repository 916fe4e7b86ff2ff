package sqlite

import (
	"context"
	"time"
)

type followsRepo struct {
	q dbtx
}

func (r *followsRepo) Follow(ctx context.Context, followerID, followeeID string) error {
	// INSERT OR IGNORE makes a repeated follow a no-op, not an error.
	_, err := r.q.ExecContext(ctx,
		`INSERT OR IGNORE INTO follows (follower_id, followee_id, created_at)
		 VALUES (?, ?, ?)`,
		followerID, followeeID, time.Now().UTC(),
	)
	return err
}

func (r *followsRepo) Unfollow(ctx context.Context, followerID, followeeID string) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = ? AND followee_id = ?`,
		followerID, followeeID,
	)
	return err
}

func (r *followsRepo) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var n int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = ? AND followee_id = ?`,
		followerID, followeeID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *followsRepo) Following(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT followee_id FROM follows WHERE follower_id = ? ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *followsRepo) Counts(ctx context.Context, userID string) (int64, int64, error) {
	var followers, following int64
	err := r.q.QueryRowContext(ctx,
		`SELECT
		    (SELECT COUNT(*) FROM follows WHERE followee_id = ?),
		    (SELECT COUNT(*) FROM follows WHERE follower_id = ?)`,
		userID, userID,
	).Scan(&followers, &following)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
