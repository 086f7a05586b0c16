package scraper

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

const turkishExporterBaseURL = "https://www.turkishexporter.net"

// TurkishExporter scrapes the TurkishExporter B2B platform. Single result
// page, importer-oriented.
type TurkishExporter struct {
	fetcher *Fetcher
}

func NewTurkishExporter(fetcher *Fetcher) *TurkishExporter {
	return &TurkishExporter{fetcher: fetcher}
}

func (s *TurkishExporter) Name() string {
	return entity.SourceTurkishExporter
}

func (s *TurkishExporter) Search(ctx context.Context, query, location string, maxResults int) []*entity.Lead {
	searchURL := turkishExporterBaseURL + "/search?q=" + url.QueryEscape(query)

	doc := s.fetcher.Fetch(ctx, searchURL)
	if doc == nil {
		return nil
	}

	var leads []*entity.Lead
	doc.Find("div[class*='company'], div[class*='result'], div[class*='listing']").EachWithBreak(func(i int, result *goquery.Selection) bool {
		if maxResults > 0 && len(leads) >= maxResults {
			return false
		}

		name := CleanText(result.Find("h2, h3, a").First().Text())
		if name == "" {
			return true
		}

		lead := &entity.Lead{
			CompanyName: name,
			Source:      s.Name(),
			Status:      entity.LeadStatusNew,
			SearchQuery: entity.StringPtr(query),
		}

		if emails := ExtractEmails(result.Text()); len(emails) > 0 {
			lead.Email = entity.StringPtr(emails[0])
		}

		leads = append(leads, lead)
		return true
	})

	return leads
}
