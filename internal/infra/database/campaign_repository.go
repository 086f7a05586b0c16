package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	query := `
		INSERT INTO email_campaigns (reference, name, template_name, status,
			lead_status, total_recipients, sent_count, open_count, reply_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		campaign.Reference,
		campaign.Name,
		campaign.TemplateName,
		campaign.Status,
		campaign.LeadStatus,
		campaign.TotalRecipients,
		campaign.SentCount,
		campaign.OpenCount,
		campaign.ReplyCount,
		campaign.CreatedAt,
	).Scan(&campaign.ID)
}

func (r *CampaignRepository) FindByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	query := `
		SELECT id, reference, name, template_name, status, lead_status,
			total_recipients, sent_count, open_count, reply_count,
			created_at, started_at, completed_at
		FROM email_campaigns WHERE id = $1
	`

	var c entity.Campaign
	var startedAt, completedAt sql.NullTime

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Reference,
		&c.Name,
		&c.TemplateName,
		&c.Status,
		&c.LeadStatus,
		&c.TotalRecipients,
		&c.SentCount,
		&c.OpenCount,
		&c.ReplyCount,
		&c.CreatedAt,
		&startedAt,
		&completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if startedAt.Valid {
		t := startedAt.Time
		c.StartedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		c.CompletedAt = &t
	}
	return &c, nil
}

// MarkActive stamps the campaign when a run starts.
func (r *CampaignRepository) MarkActive(ctx context.Context, id int64, startedAt time.Time) error {
	query := `UPDATE email_campaigns SET status = $1, started_at = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, entity.CampaignStatusActive, startedAt, id)
	return err
}

// MarkCompleted stamps the campaign when the run loop exits, whatever the mix
// of successes and failures was.
func (r *CampaignRepository) MarkCompleted(ctx context.Context, id int64, completedAt time.Time, sentCount int) error {
	query := `UPDATE email_campaigns SET status = $1, completed_at = $2, sent_count = $3 WHERE id = $4`
	_, err := r.DB.ExecContext(ctx, query, entity.CampaignStatusCompleted, completedAt, sentCount, id)
	return err
}
