package usecase

import (
	"context"
	"time"

	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/database"
	"github.com/aksoytekstil/leadfinder/internal/infra/mail"
	"github.com/aksoytekstil/leadfinder/internal/infra/queue"
	"github.com/aksoytekstil/leadfinder/internal/infra/templates"
)

// Source is one scrapeable lead directory or search engine.
type Source interface {
	Name() string
	Search(ctx context.Context, query, location string, maxResults int) []*entity.Lead
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *entity.Lead) error
	ExistsByCompanyAndWebsite(ctx context.Context, companyName string, website *string) (bool, error)
	List(ctx context.Context, filter database.ListFilter) ([]*entity.Lead, error)
	FindMissingEmail(ctx context.Context, limit int) ([]*entity.Lead, error)
	FindForCampaign(ctx context.Context, status string, limit int) ([]*entity.Lead, error)
	UpdateEmail(ctx context.Context, id int64, email string, verified bool, emailType string) error
	MarkContacted(ctx context.Context, id int64, at time.Time) error
	CountAll(ctx context.Context) (total, withEmail int, err error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountByCountry(ctx context.Context, limit int) ([]database.CountryCount, error)
}

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	FindByID(ctx context.Context, id int64) (*entity.Campaign, error)
	MarkActive(ctx context.Context, id int64, startedAt time.Time) error
	MarkCompleted(ctx context.Context, id int64, completedAt time.Time, sentCount int) error
}

type EmailLogRepositoryInterface interface {
	CountByCampaign(ctx context.Context, campaignID int64) (database.CampaignCounts, error)
}

type SearchHistoryRepositoryInterface interface {
	Insert(ctx context.Context, history *entity.SearchHistory) error
}

// EnricherInterface fills the email fields of a lead in place.
type EnricherInterface interface {
	EnrichLead(ctx context.Context, lead *entity.Lead) *entity.Lead
	EnrichBulk(ctx context.Context, leads []*entity.Lead, progress func(done, total int)) []*entity.Lead
}

// SenderInterface is the campaign-facing slice of the mail sender.
type SenderInterface interface {
	SendTemplate(ctx context.Context, to, templateName string, variables map[string]any, leadID, campaignID *int64) mail.SendResult
	Preflight() error
	DailySent() int
}

// TemplateRenderer is the campaign-facing slice of the template manager.
type TemplateRenderer interface {
	Has(name string) bool
	List() []string
	Render(name string, variables map[string]any) (*templates.Rendered, error)
}

type QueueProducerInterface interface {
	PublishLeadFound(ctx context.Context, payload queue.LeadFoundPayload) error
	PublishCampaignCompleted(ctx context.Context, payload queue.CampaignCompletedPayload) error
}

// ExporterInterface writes a lead snapshot to disk and returns the file path.
type ExporterInterface interface {
	Export(leads []*entity.Lead, format string) (string, error)
}
