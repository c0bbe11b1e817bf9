package notification

import "time"

type UserType string

const (
	UserOwner  UserType = "owner"
	UserTenant UserType = "tenant"
)

const (
	TypeLeaseRequest    = "lease_request"
	TypePurchaseRequest = "purchase_request"
	TypeInsuranceOffer  = "insurance_offer"
	TypePayment         = "payment"
	TypeMaintenance     = "maintenance"
	TypeInspection      = "inspection"
)

type Notification struct {
	ID       uint64   `gorm:"primaryKey;column:id" json:"id"`
	UserType UserType `gorm:"type:enum('owner','tenant');not null;index:idx_notifications_user" json:"user_type"`
	UserID   uint64   `gorm:"column:user_id;not null;index:idx_notifications_user" json:"user_id"`
	Title    string   `gorm:"size:255;not null" json:"title"`
	Message  string   `gorm:"type:text" json:"message"`
	Type     string   `gorm:"size:50;not null" json:"type"`
	// Back-reference to the entity that triggered the notification.
	RelatedID uint64    `gorm:"column:related_id" json:"related_id"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
