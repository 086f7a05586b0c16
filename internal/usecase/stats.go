package usecase

import "context"

const topCountriesLimit = 10

// StatsUseCase aggregates the database-wide lead numbers plus the sender's
// rolling daily counter.
type StatsUseCase struct {
	Repo   LeadRepositoryInterface
	Sender SenderInterface
}

func NewStatsUseCase(repo LeadRepositoryInterface, sender SenderInterface) *StatsUseCase {
	return &StatsUseCase{Repo: repo, Sender: sender}
}

func (uc *StatsUseCase) Execute(ctx context.Context) (*StatsOutput, error) {
	total, withEmail, err := uc.Repo.CountAll(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	byStatus, err := uc.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	topCountries, err := uc.Repo.CountByCountry(ctx, topCountriesLimit)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	output := &StatsOutput{
		TotalLeads:     total,
		LeadsWithEmail: withEmail,
		ByStatus:       byStatus,
		TopCountries:   topCountries,
	}
	if uc.Sender != nil {
		output.EmailsSentToday = uc.Sender.DailySent()
	}
	return output, nil
}
