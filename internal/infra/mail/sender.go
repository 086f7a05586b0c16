// Package mail sends outreach messages over authenticated SMTP with a rolling
// daily cap and per-attempt logging.
package mail

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/aksoytekstil/leadfinder/internal/config"
	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/templates"
)

// ErrDailyLimit is the distinguished refusal reason once the cap is hit. The
// mail server is never contacted in that case.
const ErrDailyLimit = "Daily send limit reached"

// Sender sends single messages. A fresh SMTP session is dialed per message
// and closed right after; nothing is reused across sends.
type Sender struct {
	cfg       config.SMTPConfig
	dialer    Dialer
	logs      LogStore
	templates *templates.Manager

	dailySent int
	lastReset time.Time

	// now is swapped out in tests to simulate day rollover.
	now func() time.Time
}

// NewSender wires a sender against the real gomail dialer (STARTTLS on the
// configured port).
func NewSender(cfg config.SMTPConfig, logs LogStore, manager *templates.Manager) *Sender {
	return NewSenderWithDialer(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), logs, manager)
}

// NewSenderWithDialer is the injectable constructor used by tests.
func NewSenderWithDialer(cfg config.SMTPConfig, dialer Dialer, logs LogStore, manager *templates.Manager) *Sender {
	now := time.Now
	return &Sender{
		cfg:       cfg,
		dialer:    dialer,
		logs:      logs,
		templates: manager,
		lastReset: now().UTC(),
		now:       now,
	}
}

// Send sends one plain-text message with optional file attachments. Every
// attempt, successful or not, lands in the email log; the daily counter only
// moves on success.
func (s *Sender) Send(ctx context.Context, to, subject, body string, attachments []string, leadID, campaignID *int64) SendResult {
	result := SendResult{ToEmail: to}

	if !s.checkDailyLimit() {
		result.Error = ErrDailyLimit
		log.Printf("mail: daily limit of %d reached, refusing send to %s", s.cfg.DailySendLimit, to)
		return result
	}

	if to == "" || subject == "" {
		result.Error = "Missing recipient or subject"
		return result
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(s.cfg.From, s.cfg.FromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	for _, path := range attachments {
		if _, err := os.Stat(path); err != nil {
			log.Printf("mail: attachment not found, skipping: %s", path)
			continue
		}
		msg.Attach(path)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		result.Error = err.Error()
		log.Printf("mail: send to %s failed: %v", to, err)
		s.logAttempt(ctx, leadID, campaignID, to, subject, entity.EmailLogStatusFailed, err.Error())
		return result
	}

	s.dailySent++
	sentAt := s.now().UTC()
	result.Success = true
	result.SentAt = &sentAt

	s.logAttempt(ctx, leadID, campaignID, to, subject, entity.EmailLogStatusSent, "")
	log.Printf("mail: sent to %s", to)
	return result
}

// SendTemplate renders a template and sends the result. A render failure is
// reported as a failed send without dialing the server.
func (s *Sender) SendTemplate(ctx context.Context, to, templateName string, variables map[string]any, leadID, campaignID *int64) SendResult {
	rendered, err := s.templates.Render(templateName, variables)
	if err != nil {
		return SendResult{ToEmail: to, Error: err.Error()}
	}
	return s.Send(ctx, to, rendered.Subject, rendered.Body, nil, leadID, campaignID)
}

// DailySent exposes the rolling counter (stats endpoint).
func (s *Sender) DailySent() int {
	return s.dailySent
}

// checkDailyLimit resets the counter when the date advanced past the stored
// reset date, then reports whether another send is allowed.
func (s *Sender) checkDailyLimit() bool {
	today := dateOf(s.now().UTC())
	if today.After(dateOf(s.lastReset)) {
		s.dailySent = 0
		s.lastReset = today
	}
	return s.dailySent < s.cfg.DailySendLimit
}

func (s *Sender) logAttempt(ctx context.Context, leadID, campaignID *int64, to, subject, status, errorMessage string) {
	entry := &entity.EmailLog{
		LeadID:     leadID,
		CampaignID: campaignID,
		ToEmail:    to,
		Subject:    subject,
		Status:     status,
	}
	if status == entity.EmailLogStatusSent {
		sentAt := s.now().UTC()
		entry.SentAt = &sentAt
	}
	if errorMessage != "" {
		entry.ErrorMessage = &errorMessage
	}

	if err := s.logs.Insert(ctx, entry); err != nil {
		log.Printf("mail: failed to record email log: %v", err)
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Preflight verifies credentials exist before a run starts.
func (s *Sender) Preflight() error {
	if !s.cfg.Configured() {
		return fmt.Errorf("smtp is not configured: set SMTP_USER and FROM_EMAIL")
	}
	return nil
}
