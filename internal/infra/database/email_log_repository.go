package database

import (
	"context"
	"database/sql"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

type EmailLogRepository struct {
	DB *sql.DB
}

func NewEmailLogRepository(db *sql.DB) *EmailLogRepository {
	return &EmailLogRepository{DB: db}
}

func (r *EmailLogRepository) Insert(ctx context.Context, log *entity.EmailLog) error {
	query := `
		INSERT INTO email_logs (lead_id, campaign_id, to_email, subject, status,
			error_message, sent_at, opened_at, replied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		log.LeadID,
		log.CampaignID,
		log.ToEmail,
		log.Subject,
		log.Status,
		log.ErrorMessage,
		log.SentAt,
		log.OpenedAt,
		log.RepliedAt,
	).Scan(&log.ID)
}

// CampaignCounts is the recomputed per-campaign log breakdown. Counts come
// from re-scanning email_logs rows, not from the campaign row's counters.
type CampaignCounts struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Opened  int `json:"opened"`
	Replied int `json:"replied"`
}

func (r *EmailLogRepository) CountByCampaign(ctx context.Context, campaignID int64) (CampaignCounts, error) {
	query := `SELECT status, opened_at, replied_at FROM email_logs WHERE campaign_id = $1`

	rows, err := r.DB.QueryContext(ctx, query, campaignID)
	if err != nil {
		return CampaignCounts{}, err
	}
	defer rows.Close()

	var counts CampaignCounts
	for rows.Next() {
		var status string
		var openedAt, repliedAt sql.NullTime
		if err := rows.Scan(&status, &openedAt, &repliedAt); err != nil {
			return CampaignCounts{}, err
		}
		switch status {
		case entity.EmailLogStatusSent:
			counts.Sent++
		case entity.EmailLogStatusFailed:
			counts.Failed++
		}
		if openedAt.Valid {
			counts.Opened++
		}
		if repliedAt.Valid {
			counts.Replied++
		}
	}
	return counts, rows.Err()
}
