package notifier

import (
	"context"

	"propertyhub-backend/internal/domain/notification"

	"go.uber.org/zap"
)

var _ notification.Sink = (*Notifier)(nil)

// Notifier writes user-facing notification rows. Failures are logged
// and swallowed; a notification must never change the outcome of the
// operation that triggered it.
type Notifier struct {
	repo notification.Repository
	log  *zap.Logger
}

func New(repo notification.Repository, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{repo: repo, log: log}
}

func (n *Notifier) Notify(ctx context.Context, note notification.Notification) {
	if err := n.repo.Create(ctx, &note); err != nil {
		n.log.Warn("notification write failed",
			zap.String("user_type", string(note.UserType)),
			zap.Uint64("user_id", note.UserID),
			zap.String("type", note.Type),
			zap.Uint64("related_id", note.RelatedID),
			zap.Error(err),
		)
	}
}
