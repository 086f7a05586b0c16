package mail

import (
	"context"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

// Dialer opens a mail-submission session and sends. *gomail.Dialer satisfies
// it; tests swap in a fake.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// LogStore records one EmailLog row per attempt.
type LogStore interface {
	Insert(ctx context.Context, log *entity.EmailLog) error
}

// SendResult reports the outcome of one send attempt.
type SendResult struct {
	Success bool       `json:"success"`
	ToEmail string     `json:"to_email"`
	Error   string     `json:"error,omitempty"`
	SentAt  *time.Time `json:"sent_at,omitempty"`
}
