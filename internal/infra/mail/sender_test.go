package mail

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"

	"github.com/aksoytekstil/leadfinder/internal/config"
	"github.com/aksoytekstil/leadfinder/internal/entity"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

type fakeLogStore struct {
	entries []*entity.EmailLog
}

func (s *fakeLogStore) Insert(ctx context.Context, log *entity.EmailLog) error {
	s.entries = append(s.entries, log)
	return nil
}

func testConfig(limit int) config.SMTPConfig {
	return config.SMTPConfig{
		Host:           "smtp.example.org",
		Port:           587,
		User:           "user@example.org",
		Password:       "secret",
		From:           "export@aksoytekstil.com",
		FromName:       "Aksoy Tekstil",
		DailySendLimit: limit,
	}
}

func TestSendSuccess(t *testing.T) {
	dialer := &fakeDialer{}
	logs := &fakeLogStore{}
	sender := NewSenderWithDialer(testConfig(50), dialer, logs, nil)

	result := sender.Send(context.Background(), "buyer@acme.com", "Hello", "Body", nil, nil, nil)

	assert.True(t, result.Success)
	assert.Equal(t, "buyer@acme.com", result.ToEmail)
	assert.NotNil(t, result.SentAt)
	assert.Len(t, dialer.sent, 1)
	assert.Equal(t, 1, sender.DailySent())

	assert.Len(t, logs.entries, 1)
	assert.Equal(t, entity.EmailLogStatusSent, logs.entries[0].Status)
	assert.NotNil(t, logs.entries[0].SentAt)
}

func TestSendFailureLogsAttempt(t *testing.T) {
	dialer := &fakeDialer{err: errors.New("connection refused")}
	logs := &fakeLogStore{}
	sender := NewSenderWithDialer(testConfig(50), dialer, logs, nil)

	result := sender.Send(context.Background(), "buyer@acme.com", "Hello", "Body", nil, nil, nil)

	assert.False(t, result.Success)
	assert.Equal(t, "connection refused", result.Error)
	assert.Equal(t, 0, sender.DailySent())

	assert.Len(t, logs.entries, 1)
	assert.Equal(t, entity.EmailLogStatusFailed, logs.entries[0].Status)
	assert.Equal(t, "connection refused", *logs.entries[0].ErrorMessage)
}

func TestSendMissingRecipient(t *testing.T) {
	dialer := &fakeDialer{}
	sender := NewSenderWithDialer(testConfig(50), dialer, &fakeLogStore{}, nil)

	result := sender.Send(context.Background(), "", "Hello", "Body", nil, nil, nil)

	assert.False(t, result.Success)
	assert.Empty(t, dialer.sent)
}

func TestDailyLimitRefusesWithoutDialing(t *testing.T) {
	dialer := &fakeDialer{}
	logs := &fakeLogStore{}
	sender := NewSenderWithDialer(testConfig(3), dialer, logs, nil)

	for i := 0; i < 3; i++ {
		result := sender.Send(context.Background(), fmt.Sprintf("buyer%d@acme.com", i), "Hello", "Body", nil, nil, nil)
		assert.True(t, result.Success)
	}

	result := sender.Send(context.Background(), "one-too-many@acme.com", "Hello", "Body", nil, nil, nil)

	assert.False(t, result.Success)
	assert.Equal(t, ErrDailyLimit, result.Error)
	assert.Len(t, dialer.sent, 3)
	assert.Equal(t, 3, sender.DailySent())
	// The refusal itself is not an attempt, so no log row.
	assert.Len(t, logs.entries, 3)
}

func TestDailyLimitResetsNextDay(t *testing.T) {
	dialer := &fakeDialer{}
	sender := NewSenderWithDialer(testConfig(1), dialer, &fakeLogStore{}, nil)

	current := time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)
	sender.now = func() time.Time { return current }
	sender.lastReset = current

	assert.True(t, sender.Send(context.Background(), "a@acme.com", "S", "B", nil, nil, nil).Success)
	assert.Equal(t, ErrDailyLimit, sender.Send(context.Background(), "b@acme.com", "S", "B", nil, nil, nil).Error)

	current = current.Add(time.Hour) // past midnight

	assert.True(t, sender.Send(context.Background(), "c@acme.com", "S", "B", nil, nil, nil).Success)
	assert.Equal(t, 1, sender.DailySent())
}

func TestSendSkipsMissingAttachments(t *testing.T) {
	dialer := &fakeDialer{}
	sender := NewSenderWithDialer(testConfig(50), dialer, &fakeLogStore{}, nil)

	result := sender.Send(context.Background(), "buyer@acme.com", "Catalog", "Body",
		[]string{"/nonexistent/catalog.pdf"}, nil, nil)

	assert.True(t, result.Success)
	assert.Len(t, dialer.sent, 1)
}

func TestPreflight(t *testing.T) {
	configured := NewSenderWithDialer(testConfig(50), &fakeDialer{}, &fakeLogStore{}, nil)
	assert.NoError(t, configured.Preflight())

	cfg := testConfig(50)
	cfg.User = ""
	unconfigured := NewSenderWithDialer(cfg, &fakeDialer{}, &fakeLogStore{}, nil)
	assert.Error(t, unconfigured.Preflight())
}
