package mysql

import (
	"context"

	notificationDomain "propertyhub-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notificationDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userType notificationDomain.UserType, userID uint64) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	res := r.db.WithContext(ctx).
		Where("user_type = ? AND user_id = ?", userType, userID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&notificationDomain.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
