package entity

import "time"

// Send outcomes recorded in email_logs.
const (
	EmailLogStatusSent    = "sent"
	EmailLogStatusFailed  = "failed"
	EmailLogStatusBounced = "bounced"
)

// EmailLog is one send attempt. One row is appended per attempt regardless of
// outcome. OpenedAt/RepliedAt are only ever filled by an external tracking
// mechanism, never by the send path.
type EmailLog struct {
	ID         int64  `json:"id"`
	LeadID     *int64 `json:"lead_id,omitempty"`
	CampaignID *int64 `json:"campaign_id,omitempty"`

	ToEmail      string  `json:"to_email"`
	Subject      string  `json:"subject"`
	Status       string  `json:"status"`
	ErrorMessage *string `json:"error_message,omitempty"`

	SentAt    *time.Time `json:"sent_at,omitempty"`
	OpenedAt  *time.Time `json:"opened_at,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
}
