// Package sinkmock records notifications so tests can assert what was
// dispatched after a usecase finished.
package sinkmock

import (
	"context"

	"propertyhub-backend/internal/domain/notification"
)

type Sink struct {
	Sent []notification.Notification
}

var _ notification.Sink = (*Sink)(nil)

func (m *Sink) Notify(_ context.Context, n notification.Notification) {
	m.Sent = append(m.Sent, n)
}
