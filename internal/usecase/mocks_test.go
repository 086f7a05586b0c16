package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/database"
	"github.com/aksoytekstil/leadfinder/internal/infra/mail"
	"github.com/aksoytekstil/leadfinder/internal/infra/queue"
	"github.com/aksoytekstil/leadfinder/internal/infra/templates"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) ExistsByCompanyAndWebsite(ctx context.Context, companyName string, website *string) (bool, error) {
	args := m.Called(ctx, companyName, website)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter database.ListFilter) ([]*entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindMissingEmail(ctx context.Context, limit int) ([]*entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindForCampaign(ctx context.Context, status string, limit int) ([]*entity.Lead, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateEmail(ctx context.Context, id int64, email string, verified bool, emailType string) error {
	args := m.Called(ctx, id, email, verified, emailType)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkContacted(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockLeadRepository) CountAll(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockLeadRepository) CountByCountry(ctx context.Context, limit int) ([]database.CountryCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.CountryCount), args.Error(1)
}

// MockCampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) MarkActive(ctx context.Context, id int64, startedAt time.Time) error {
	args := m.Called(ctx, id, startedAt)
	return args.Error(0)
}

func (m *MockCampaignRepository) MarkCompleted(ctx context.Context, id int64, completedAt time.Time, sentCount int) error {
	args := m.Called(ctx, id, completedAt, sentCount)
	return args.Error(0)
}

// MockEmailLogRepository
type MockEmailLogRepository struct {
	mock.Mock
}

func (m *MockEmailLogRepository) CountByCampaign(ctx context.Context, campaignID int64) (database.CampaignCounts, error) {
	args := m.Called(ctx, campaignID)
	return args.Get(0).(database.CampaignCounts), args.Error(1)
}

// MockSearchHistoryRepository
type MockSearchHistoryRepository struct {
	mock.Mock
}

func (m *MockSearchHistoryRepository) Insert(ctx context.Context, history *entity.SearchHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

// MockSender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendTemplate(ctx context.Context, to, templateName string, variables map[string]any, leadID, campaignID *int64) mail.SendResult {
	args := m.Called(ctx, to, templateName, variables, leadID, campaignID)
	return args.Get(0).(mail.SendResult)
}

func (m *MockSender) Preflight() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSender) DailySent() int {
	args := m.Called()
	return args.Int(0)
}

// MockExporter
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(leads []*entity.Lead, format string) (string, error) {
	args := m.Called(leads, format)
	return args.String(0), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadFound(ctx context.Context, payload queue.LeadFoundPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockQueueProducer) PublishCampaignCompleted(ctx context.Context, payload queue.CampaignCompletedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func databaseCounts(sent, failed, opened, replied int) database.CampaignCounts {
	return database.CampaignCounts{Sent: sent, Failed: failed, Opened: opened, Replied: replied}
}

// fakeSource returns a canned result set.
type fakeSource struct {
	name  string
	leads []*entity.Lead
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Search(ctx context.Context, query, location string, maxResults int) []*entity.Lead {
	return s.leads
}

// fakeRenderer renders templates without the real template set.
type fakeRenderer struct {
	known map[string]bool
}

func (r *fakeRenderer) Has(name string) bool { return r.known[name] }

func (r *fakeRenderer) List() []string {
	names := make([]string, 0, len(r.known))
	for name := range r.known {
		names = append(names, name)
	}
	return names
}

func (r *fakeRenderer) Render(name string, variables map[string]any) (*templates.Rendered, error) {
	if !r.known[name] {
		return nil, &templates.TemplateNotFoundError{Name: name}
	}
	contact, _ := variables["contact_name"].(string)
	return &templates.Rendered{Subject: "Subject " + name, Body: "Dear " + contact}, nil
}
