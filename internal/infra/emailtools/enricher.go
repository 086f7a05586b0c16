package emailtools

import (
	"context"
	"log"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

// How many generated guesses get an MX check before giving up on a lead.
const maxGeneratedChecks = 5

// Enricher combines finding and validation to fill the email fields of a
// lead.
type Enricher struct {
	finder    *Finder
	validator *Validator
}

func NewEnricher(finder *Finder, validator *Validator) *Enricher {
	return &Enricher{finder: finder, validator: validator}
}

// EnrichLead populates Email/EmailVerified/EmailType when discoverable. A
// lead without a website is returned untouched. Only the top-ranked found
// candidate is validated; the search never continues past the first hit.
// Pattern-derived addresses are accepted on the first MX pass but are never
// marked verified: an MX record is a deliverability heuristic, not proof of a
// mailbox.
func (e *Enricher) EnrichLead(ctx context.Context, lead *entity.Lead) *entity.Lead {
	if !lead.HasWebsite() {
		return lead
	}
	website := *lead.Website

	found := e.finder.FindFromWebsite(ctx, website)
	if len(found) > 0 {
		isValid, _ := e.validator.Validate(found[0])
		lead.Email = entity.StringPtr(found[0])
		lead.EmailVerified = isValid
		lead.EmailType = entity.StringPtr(entity.EmailTypeFound)
		return lead
	}

	domain := DomainFromWebsite(website)
	if domain == "" {
		return lead
	}

	generated := GeneratePatterns(domain, "", "")
	if len(generated) > maxGeneratedChecks {
		generated = generated[:maxGeneratedChecks]
	}
	for _, candidate := range generated {
		if isValid, _ := e.validator.Validate(candidate); isValid {
			lead.Email = entity.StringPtr(candidate)
			lead.EmailVerified = false
			lead.EmailType = entity.StringPtr(entity.EmailTypeGenerated)
			break
		}
	}

	return lead
}

// EnrichBulk enriches each lead in turn, invoking progress after every lead
// with (completed, total).
func (e *Enricher) EnrichBulk(ctx context.Context, leads []*entity.Lead, progress func(done, total int)) []*entity.Lead {
	total := len(leads)
	for i, lead := range leads {
		e.EnrichLead(ctx, lead)
		if progress != nil {
			progress(i+1, total)
		}
	}
	log.Printf("emailtools: bulk enrichment finished for %d leads", total)
	return leads
}
