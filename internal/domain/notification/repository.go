package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userType UserType, userID uint64) ([]Notification, error)
	MarkRead(ctx context.Context, id uint64) error
}

// Sink is the fire-and-forget side of the notification system. A Sink
// never reports failure to its caller; implementations log and swallow
// errors so the primary operation's outcome is unaffected.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}
