package sqlite

import (
	"context"
	"time"

	"github.com/bailanysta/api/internal/feed/domain"
)

type notificationsRepo struct {
	q dbtx
}

const notificationSelect = `
SELECT n.id, n.recipient_id, n.sender_id, u.username, n.type, n.post_id, n.read, n.created_at
FROM notifications n
JOIN users u ON u.id = n.sender_id`

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO notifications (id, recipient_id, sender_id, type, post_id, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.RecipientID, n.SenderID, n.Type, n.PostID, n.Read, n.CreatedAt,
	)
	return err
}

func (r *notificationsRepo) GetNotificationByID(ctx context.Context, id string) (domain.Notification, error) {
	row := r.q.QueryRowContext(ctx, notificationSelect+` WHERE n.id = ?`, id)

	var n domain.Notification
	err := row.Scan(&n.ID, &n.RecipientID, &n.SenderID, &n.SenderUsername,
		&n.Type, &n.PostID, &n.Read, &n.CreatedAt)
	if err != nil {
		return domain.Notification{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notificationsRepo) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	rows, err := r.q.QueryContext(ctx, notificationSelect+`
		WHERE n.recipient_id = ?
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT ?`,
		recipientID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.RecipientID, &n.SenderID, &n.SenderUsername,
			&n.Type, &n.PostID, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) MarkRead(ctx context.Context, id string) error {
	// Idempotent: flipping an already-read row is fine, the WHERE only
	// guards existence via requireRow on the id match.
	res, err := r.q.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *notificationsRepo) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE recipient_id = ? AND read = 0`,
		recipientID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
