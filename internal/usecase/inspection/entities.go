package inspection

import "time"

type CreateInput struct {
	PropertyID  uint64
	TenantID    *uint64
	RequestType string
}

type UpdateInput struct {
	RequestID     uint64
	Status        string
	ScheduledDate *time.Time
	Findings      *string
}

type RequestDTO struct {
	ID            uint64     `json:"id"`
	PropertyID    uint64     `json:"property_id"`
	TenantID      *uint64    `json:"tenant_id,omitempty"`
	RequestType   string     `json:"request_type"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	Findings      string     `json:"findings,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
