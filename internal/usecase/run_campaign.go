package usecase

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/aksoytekstil/leadfinder/internal/config"
	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/mail"
	"github.com/aksoytekstil/leadfinder/internal/infra/queue"
)

const defaultCampaignLimit = 50

// CampaignUseCase creates outreach campaigns, runs them sequentially against
// the selected leads and reports their stats.
type CampaignUseCase struct {
	Campaigns CampaignRepositoryInterface
	Leads     LeadRepositoryInterface
	Logs      EmailLogRepositoryInterface
	Sender    SenderInterface
	Templates TemplateRenderer
	Queue     QueueProducerInterface
	SMTP      config.SMTPConfig

	// Progress, when set, is invoked after every send attempt. Leads skipped
	// for a missing email do not trigger it.
	Progress func(done, total int, result mail.SendResult)

	// sleep and now are swapped out in tests.
	sleep func(time.Duration)
	now   func() time.Time
}

func NewCampaignUseCase(
	campaigns CampaignRepositoryInterface,
	leads LeadRepositoryInterface,
	logs EmailLogRepositoryInterface,
	sender SenderInterface,
	renderer TemplateRenderer,
	producer QueueProducerInterface,
	smtp config.SMTPConfig,
) *CampaignUseCase {
	return &CampaignUseCase{
		Campaigns: campaigns,
		Leads:     leads,
		Logs:      logs,
		Sender:    sender,
		Templates: renderer,
		Queue:     producer,
		SMTP:      smtp,
		sleep:     time.Sleep,
		now:       time.Now,
	}
}

// Create stores a draft campaign sized to the leads currently eligible.
func (uc *CampaignUseCase) Create(ctx context.Context, input CreateCampaignInput) (*CreateCampaignOutput, error) {
	if !uc.Templates.Has(input.TemplateName) {
		return nil, &DomainError{Code: "UNKNOWN_TEMPLATE", Message: "unknown template: " + input.TemplateName}
	}

	status := input.LeadStatus
	if status == "" {
		status = entity.LeadStatusNew
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultCampaignLimit
	}

	leads, err := uc.Leads.FindForCampaign(ctx, status, limit)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if len(leads) == 0 {
		return nil, &DomainError{Code: "NO_RECIPIENTS", Message: "no leads with email in status " + status}
	}

	campaign, err := entity.NewCampaign(input.Name, input.TemplateName, status, len(leads))
	if err != nil {
		return nil, &DomainError{Code: "INVALID_CAMPAIGN", Message: err.Error()}
	}

	if err := uc.Campaigns.Create(ctx, campaign); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	return &CreateCampaignOutput{
		CampaignID:      campaign.ID,
		Reference:       campaign.Reference,
		TotalRecipients: campaign.TotalRecipients,
	}, nil
}

// Run executes a campaign. A dry run renders the message for the first
// recipient and sends nothing. A real run refuses to start without SMTP
// credentials, walks the eligible leads one by one and sleeps a random
// interval between sends. Leads that lost their email since campaign
// creation are counted as skipped without delay.
func (uc *CampaignUseCase) Run(ctx context.Context, input RunCampaignInput) (*RunCampaignOutput, error) {
	campaign, err := uc.Campaigns.FindByID(ctx, input.CampaignID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if campaign == nil {
		return nil, &DomainError{Code: "CAMPAIGN_NOT_FOUND", Message: "campaign not found"}
	}
	if campaign.Status == entity.CampaignStatusCompleted {
		return nil, &DomainError{Code: "CAMPAIGN_COMPLETED", Message: "campaign already completed"}
	}

	targetStatus := campaign.LeadStatus
	if targetStatus == "" {
		targetStatus = entity.LeadStatusNew
	}
	leads, err := uc.Leads.FindForCampaign(ctx, targetStatus, campaign.TotalRecipients)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if input.DryRun {
		return uc.dryRun(campaign, leads)
	}

	if err := uc.Sender.Preflight(); err != nil {
		return nil, &DomainError{Code: "SMTP_NOT_CONFIGURED", Message: err.Error()}
	}

	if err := uc.Campaigns.MarkActive(ctx, campaign.ID, uc.now().UTC()); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	output := &RunCampaignOutput{CampaignID: campaign.ID}

	for i, lead := range leads {
		if !lead.HasEmail() {
			output.Skipped++
			continue
		}

		result := uc.Sender.SendTemplate(ctx, *lead.Email, campaign.TemplateName, uc.leadVariables(lead), &lead.ID, &campaign.ID)
		if result.Success {
			output.Sent++
			if err := uc.Leads.MarkContacted(ctx, lead.ID, *result.SentAt); err != nil {
				log.Printf("campaign: failed to mark lead %d contacted: %v", lead.ID, err)
			}
		} else {
			output.Failed++
			log.Printf("campaign: send to %s failed: %s", *lead.Email, result.Error)
			if result.Error == mail.ErrDailyLimit {
				break
			}
		}

		uc.progress(i+1, len(leads), result)

		if i < len(leads)-1 {
			uc.sleep(randomDelay(uc.SMTP.DelayMin, uc.SMTP.DelayMax))
		}
	}

	completedAt := uc.now().UTC()
	if err := uc.Campaigns.MarkCompleted(ctx, campaign.ID, completedAt, output.Sent); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	uc.publishCompleted(ctx, campaign, output, completedAt)

	log.Printf("campaign: %q done sent=%d failed=%d skipped=%d", campaign.Name, output.Sent, output.Failed, output.Skipped)
	return output, nil
}

// Stats recomputes the per-campaign breakdown from the email log rows.
func (uc *CampaignUseCase) Stats(ctx context.Context, campaignID int64) (*CampaignStatsOutput, error) {
	campaign, err := uc.Campaigns.FindByID(ctx, campaignID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if campaign == nil {
		return nil, &DomainError{Code: "CAMPAIGN_NOT_FOUND", Message: "campaign not found"}
	}

	counts, err := uc.Logs.CountByCampaign(ctx, campaignID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	stats := &CampaignStatsOutput{
		CampaignID:   campaign.ID,
		Reference:    campaign.Reference,
		Name:         campaign.Name,
		TemplateName: campaign.TemplateName,
		Status:       campaign.Status,
		Total:        campaign.TotalRecipients,
		Sent:         counts.Sent,
		Failed:       counts.Failed,
		Opened:       counts.Opened,
		Replied:      counts.Replied,
	}
	if counts.Sent > 0 {
		stats.OpenRate = float64(counts.Opened) / float64(counts.Sent)
		stats.ReplyRate = float64(counts.Replied) / float64(counts.Sent)
	}
	return stats, nil
}

func (uc *CampaignUseCase) dryRun(campaign *entity.Campaign, leads []*entity.Lead) (*RunCampaignOutput, error) {
	output := &RunCampaignOutput{CampaignID: campaign.ID, DryRun: true}

	for _, lead := range leads {
		if !lead.HasEmail() {
			output.Skipped++
			continue
		}
		rendered, err := uc.Templates.Render(campaign.TemplateName, uc.leadVariables(lead))
		if err != nil {
			return nil, &DomainError{Code: "RENDER_FAILED", Message: err.Error()}
		}
		output.Preview = &CampaignPreview{
			ToEmail: *lead.Email,
			Subject: rendered.Subject,
			Body:    rendered.Body,
		}
		break
	}

	return output, nil
}

// leadVariables builds the per-recipient variable set. A lead without a
// contact name is addressed as "Sir/Madam".
func (uc *CampaignUseCase) leadVariables(lead *entity.Lead) map[string]any {
	contactName := "Sir/Madam"
	if lead.ContactName != nil && *lead.ContactName != "" {
		contactName = *lead.ContactName
	}
	return map[string]any{
		"contact_name":  contactName,
		"their_company": lead.CompanyName,
		"company_name":  lead.CompanyName,
	}
}

func (uc *CampaignUseCase) publishCompleted(ctx context.Context, campaign *entity.Campaign, output *RunCampaignOutput, completedAt time.Time) {
	if uc.Queue == nil {
		return
	}
	err := uc.Queue.PublishCampaignCompleted(ctx, queue.CampaignCompletedPayload{
		CampaignID:  campaign.ID,
		Reference:   campaign.Reference,
		Name:        campaign.Name,
		SentCount:   output.Sent,
		FailedCount: output.Failed,
		CompletedAt: completedAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("campaign: publish campaign.completed failed: %v", err)
	}
}

func (uc *CampaignUseCase) progress(done, total int, result mail.SendResult) {
	if uc.Progress != nil {
		uc.Progress(done, total, result)
	}
}

func randomDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
