package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/aksoytekstil/leadfinder/internal/config"
)

const (
	bulkKeywordsPerCountry = 3
	bulkMaxQueries         = 20
)

// BulkSearchUseCase expands a target market into keyword-times-country
// queries and funnels each through the regular search.
type BulkSearchUseCase struct {
	Search    *SearchLeadsUseCase
	Targeting *config.Targeting
}

func NewBulkSearchUseCase(search *SearchLeadsUseCase, targeting *config.Targeting) *BulkSearchUseCase {
	return &BulkSearchUseCase{Search: search, Targeting: targeting}
}

func (uc *BulkSearchUseCase) Execute(ctx context.Context, input BulkSearchInput) (*BulkSearchOutput, error) {
	countries, ok := uc.Targeting.Markets[input.Market]
	if !ok {
		return nil, &DomainError{Code: "UNKNOWN_MARKET", Message: "unknown market: " + input.Market}
	}

	language := input.Language
	if language == "" {
		language = "en"
	}
	keywords, ok := uc.Targeting.Keywords[language]
	if !ok {
		return nil, &DomainError{Code: "UNKNOWN_LANGUAGE", Message: "no keywords for language: " + language}
	}
	if len(keywords) > bulkKeywordsPerCountry {
		keywords = keywords[:bulkKeywordsPerCountry]
	}

	maxQueries := input.MaxQueries
	if maxQueries <= 0 || maxQueries > bulkMaxQueries {
		maxQueries = bulkMaxQueries
	}

	// Map iteration order is random; sort so runs are reproducible.
	names := make([]string, 0, len(countries))
	for country := range countries {
		names = append(names, country)
	}
	sort.Strings(names)

	output := &BulkSearchOutput{Market: input.Market}

	for _, country := range names {
		for _, keyword := range keywords {
			if len(output.Queries) >= maxQueries {
				log.Printf("bulk: query cap of %d reached, stopping", maxQueries)
				return output, nil
			}

			query := keyword + " " + country
			output.Queries = append(output.Queries, query)

			result, err := uc.Search.Execute(ctx, SearchLeadsInput{
				Query:    query,
				Location: country,
				Enrich:   true,
			})
			if err != nil {
				return nil, err
			}
			output.TotalFound += result.TotalFound
			output.Saved += result.Saved
			output.Duplicates += result.Duplicates
		}
	}

	return output, nil
}
