package mysql

import (
	"propertyhub-backend/internal/domain/finance"
	"propertyhub-backend/internal/domain/inspection"
	"propertyhub-backend/internal/domain/insurance"
	"propertyhub-backend/internal/domain/lease"
	"propertyhub-backend/internal/domain/maintenance"
	"propertyhub-backend/internal/domain/notification"
	"propertyhub-backend/internal/domain/ownership"
	"propertyhub-backend/internal/domain/party"
	"propertyhub-backend/internal/domain/payment"
	"propertyhub-backend/internal/domain/property"
	"propertyhub-backend/internal/domain/purchase"

	"gorm.io/gorm"
)

// AutoMigrate creates or alters every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&party.Owner{},
		&party.Tenant{},
		&property.Property{},
		&property.Document{},
		&lease.Lease{},
		&lease.Request{},
		&purchase.Request{},
		&ownership.Ownership{},
		&insurance.Offer{},
		&insurance.Policy{},
		&maintenance.Request{},
		&inspection.Request{},
		&payment.Payment{},
		&finance.Transaction{},
		&notification.Notification{},
	)
}
