package usecase

import (
	"context"
	"log"
)

const defaultEnrichLimit = 50

// EnrichLeadsUseCase backfills email addresses onto stored leads that have a
// website but no address yet.
type EnrichLeadsUseCase struct {
	Repo     LeadRepositoryInterface
	Enricher EnricherInterface
}

func NewEnrichLeadsUseCase(repo LeadRepositoryInterface, enricher EnricherInterface) *EnrichLeadsUseCase {
	return &EnrichLeadsUseCase{Repo: repo, Enricher: enricher}
}

func (uc *EnrichLeadsUseCase) Execute(ctx context.Context, input EnrichLeadsInput) (*EnrichLeadsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultEnrichLimit
	}

	leads, err := uc.Repo.FindMissingEmail(ctx, limit)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	output := &EnrichLeadsOutput{Processed: len(leads)}
	if len(leads) == 0 {
		return output, nil
	}

	uc.Enricher.EnrichBulk(ctx, leads, func(done, total int) {
		if done%10 == 0 || done == total {
			log.Printf("enrich: %d/%d", done, total)
		}
	})

	for _, lead := range leads {
		if !lead.HasEmail() {
			continue
		}
		emailType := ""
		if lead.EmailType != nil {
			emailType = *lead.EmailType
		}
		if err := uc.Repo.UpdateEmail(ctx, lead.ID, *lead.Email, lead.EmailVerified, emailType); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		output.Updated++
	}

	return output, nil
}
