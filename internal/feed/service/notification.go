package service

import (
	"context"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/store"
)

// NotificationListLimit caps how many notifications a single fetch returns.
const NotificationListLimit = 20

type NotificationService struct {
	Store store.Store
}

// List returns the recipient's newest notifications, at most
// NotificationListLimit of them, sender usernames resolved.
func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.Store.Notifications().ListByRecipient(ctx, userID, NotificationListLimit)
}

// MarkRead flips one notification to read. Only the recipient may do this;
// marking an already-read notification is a no-op that returns the record.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) (domain.Notification, error) {
	n, err := s.Store.Notifications().GetNotificationByID(ctx, notificationID)
	if err != nil {
		return domain.Notification{}, err
	}
	if n.RecipientID != userID {
		return domain.Notification{}, ErrNotOwner
	}

	if n.Read {
		return n, nil
	}

	if err := s.Store.Notifications().MarkRead(ctx, notificationID); err != nil {
		return domain.Notification{}, err
	}
	n.Read = true
	return n, nil
}

// MarkAllRead flips every unread notification for the user and reports how
// many were affected.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.Store.Notifications().MarkAllRead(ctx, userID)
}
