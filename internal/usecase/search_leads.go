package usecase

import (
	"context"
	"log"
	"time"

	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/queue"
)

const defaultMaxResults = 50

// SearchLeadsUseCase runs one query against the selected sources, optionally
// enriches the hits and stores whatever is not already known.
type SearchLeadsUseCase struct {
	Repo        LeadRepositoryInterface
	HistoryRepo SearchHistoryRepositoryInterface
	Sources     map[string]Source
	Enricher    EnricherInterface
	Queue       QueueProducerInterface
}

func NewSearchLeadsUseCase(
	repo LeadRepositoryInterface,
	historyRepo SearchHistoryRepositoryInterface,
	sources []Source,
	enricher EnricherInterface,
	producer QueueProducerInterface,
) *SearchLeadsUseCase {
	byName := make(map[string]Source, len(sources))
	for _, source := range sources {
		byName[source.Name()] = source
	}
	return &SearchLeadsUseCase{
		Repo:        repo,
		HistoryRepo: historyRepo,
		Sources:     byName,
		Enricher:    enricher,
		Queue:       producer,
	}
}

func (uc *SearchLeadsUseCase) Execute(ctx context.Context, input SearchLeadsInput) (*SearchLeadsOutput, error) {
	if input.Query == "" {
		return nil, &DomainError{Code: "EMPTY_QUERY", Message: "query is required"}
	}
	if input.MaxResults <= 0 {
		input.MaxResults = defaultMaxResults
	}

	sources, err := uc.resolveSources(input.Sources)
	if err != nil {
		return nil, err
	}

	output := &SearchLeadsOutput{
		Query:     input.Query,
		PerSource: map[string]int{},
	}

	for _, source := range sources {
		leads := source.Search(ctx, input.Query, input.Location, input.MaxResults)
		output.TotalFound += len(leads)
		output.PerSource[source.Name()] = len(leads)

		if input.Enrich && uc.Enricher != nil {
			for _, lead := range leads {
				uc.Enricher.EnrichLead(ctx, lead)
			}
		}

		for _, lead := range leads {
			saved, err := uc.saveIfNew(ctx, lead)
			if err != nil {
				return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to store lead: " + err.Error()}
			}
			if saved {
				output.Saved++
				uc.publishFound(ctx, lead)
			} else {
				output.Duplicates++
			}
		}

		uc.recordHistory(ctx, input.Query, source.Name(), len(leads))
	}

	log.Printf("search: %q found=%d saved=%d duplicates=%d", input.Query, output.TotalFound, output.Saved, output.Duplicates)
	return output, nil
}

// IntakeLead stores an externally submitted lead through the same duplicate
// check as the scrape path. Satisfies queue.LeadIntake.
func (uc *SearchLeadsUseCase) IntakeLead(ctx context.Context, payload queue.LeadFoundPayload) error {
	source := payload.Source
	if source == "" {
		source = entity.SourceIntake
	}

	lead, err := entity.NewLead(payload.CompanyName, source)
	if err != nil {
		return &DomainError{Code: "INVALID_LEAD", Message: err.Error()}
	}
	lead.Website = payload.Website
	lead.Country = payload.Country
	lead.Email = payload.Email
	if lead.HasEmail() {
		lead.EmailType = entity.StringPtr(entity.EmailTypeFound)
	}

	saved, err := uc.saveIfNew(ctx, lead)
	if err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if !saved {
		log.Printf("search: intake duplicate ignored: %q", payload.CompanyName)
	}
	return nil
}

func (uc *SearchLeadsUseCase) resolveSources(names []string) ([]Source, error) {
	if len(names) == 0 {
		sources := make([]Source, 0, len(uc.Sources))
		for _, source := range uc.Sources {
			sources = append(sources, source)
		}
		return sources, nil
	}

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		source, ok := uc.Sources[name]
		if !ok {
			return nil, &DomainError{Code: "UNKNOWN_SOURCE", Message: "unknown source: " + name}
		}
		sources = append(sources, source)
	}
	return sources, nil
}

// saveIfNew is the query-then-insert duplicate check on (company_name,
// website). Two concurrent searches can both pass the check; with the
// optional unique index enabled the second insert fails instead.
func (uc *SearchLeadsUseCase) saveIfNew(ctx context.Context, lead *entity.Lead) (bool, error) {
	exists, err := uc.Repo.ExistsByCompanyAndWebsite(ctx, lead.CompanyName, lead.Website)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := uc.Repo.Insert(ctx, lead); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *SearchLeadsUseCase) publishFound(ctx context.Context, lead *entity.Lead) {
	if uc.Queue == nil {
		return
	}
	err := uc.Queue.PublishLeadFound(ctx, queue.LeadFoundPayload{
		LeadID:      lead.ID,
		CompanyName: lead.CompanyName,
		Country:     lead.Country,
		Website:     lead.Website,
		Email:       lead.Email,
		Source:      lead.Source,
	})
	if err != nil {
		// Events are best effort; the lead is already stored.
		log.Printf("search: publish lead.found failed: %v", err)
	}
}

func (uc *SearchLeadsUseCase) recordHistory(ctx context.Context, query, source string, results int) {
	if uc.HistoryRepo == nil {
		return
	}
	history := &entity.SearchHistory{
		Query:        query,
		Source:       source,
		ResultsCount: results,
		SearchedAt:   time.Now().UTC(),
	}
	if err := uc.HistoryRepo.Insert(ctx, history); err != nil {
		log.Printf("search: failed to record history: %v", err)
	}
}
