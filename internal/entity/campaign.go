package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Campaign statuses. The progression is linear: draft -> active -> completed.
// A run that errors mid-way still ends up completed once the loop exits.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

// Campaign is one outreach run against a set of leads using one template.
type Campaign struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	Name         string `json:"name"`
	TemplateName string `json:"template_name"`
	Status       string `json:"status"`
	// LeadStatus is the lead status the campaign targets. A follow-up
	// campaign targets "contacted" leads, an initial one "new".
	LeadStatus string `json:"lead_status"`

	TotalRecipients int `json:"total_recipients"`
	SentCount       int `json:"sent_count"`
	OpenCount       int `json:"open_count"`
	ReplyCount      int `json:"reply_count"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewCampaign builds a draft campaign targeting leads in leadStatus.
func NewCampaign(name, templateName, leadStatus string, totalRecipients int) (*Campaign, error) {
	if leadStatus == "" {
		leadStatus = LeadStatusNew
	}
	campaign := &Campaign{
		Reference:       uuid.New().String(),
		Name:            name,
		TemplateName:    templateName,
		Status:          CampaignStatusDraft,
		LeadStatus:      leadStatus,
		TotalRecipients: totalRecipients,
		CreatedAt:       time.Now().UTC(),
	}

	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (c *Campaign) Validate() error {
	if c.Name == "" {
		return errors.New("campaign name is required")
	}
	if c.TemplateName == "" {
		return errors.New("template name is required")
	}
	return nil
}
