package scraper

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

// WebSearch finds leads through general web search. DuckDuckGo's HTML
// frontend is tried first; Google is the fallback and tends to get blocked.
type WebSearch struct {
	fetcher *Fetcher
}

func NewWebSearch(fetcher *Fetcher) *WebSearch {
	return &WebSearch{fetcher: fetcher}
}

func (s *WebSearch) Name() string {
	return entity.SourceWebSearch
}

func (s *WebSearch) Search(ctx context.Context, query, location string, maxResults int) []*entity.Lead {
	searchQuery := query
	if location != "" {
		searchQuery = query + " " + location
	}

	log.Printf("websearch: searching for %q", searchQuery)

	leads := s.searchDuckDuckGo(ctx, searchQuery, maxResults)
	if len(leads) == 0 {
		leads = s.searchGoogle(ctx, searchQuery, maxResults)
	}
	return leads
}

func (s *WebSearch) searchDuckDuckGo(ctx context.Context, query string, maxResults int) []*entity.Lead {
	searchURL := "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query)

	doc := s.fetcher.Fetch(ctx, searchURL)
	if doc == nil {
		return nil
	}

	var leads []*entity.Lead
	doc.Find("div.result").EachWithBreak(func(i int, result *goquery.Selection) bool {
		if maxResults > 0 && len(leads) >= maxResults {
			return false
		}

		titleElem := result.Find("a.result__a").First()
		if titleElem.Length() == 0 {
			return true
		}

		title := CleanText(titleElem.Text())
		link := titleElem.AttrOr("href", "")
		snippet := CleanText(result.Find("a.result__snippet").First().Text())

		domain := domainOf(link)
		if domain == "" || IsSkipDomain(domain) {
			return true
		}

		lead := &entity.Lead{
			CompanyName: CompanyNameFromTitle(title, domain),
			Website:     entity.StringPtr("https://" + domain),
			SourceURL:   entity.StringPtr(link),
			SearchQuery: entity.StringPtr(query),
			Source:      entity.SourceDuckDuckGo,
			Status:      entity.LeadStatusNew,
		}

		// Contact data sometimes shows up right in the snippet.
		if emails := ExtractEmails(snippet); len(emails) > 0 {
			lead.Email = entity.StringPtr(emails[0])
		}
		if phones := ExtractPhones(snippet); len(phones) > 0 {
			lead.Phone = entity.StringPtr(phones[0])
		}

		leads = append(leads, lead)
		return true
	})

	log.Printf("websearch: %d leads from duckduckgo", len(leads))
	return leads
}

func (s *WebSearch) searchGoogle(ctx context.Context, query string, maxResults int) []*entity.Lead {
	searchURL := "https://www.google.com/search?q=" + url.QueryEscape(query)

	doc := s.fetcher.Fetch(ctx, searchURL)
	if doc == nil {
		return nil
	}

	var leads []*entity.Lead
	doc.Find("div.g").EachWithBreak(func(i int, result *goquery.Selection) bool {
		if maxResults > 0 && len(leads) >= maxResults {
			return false
		}

		title := CleanText(result.Find("h3").First().Text())
		link := result.Find("a").First().AttrOr("href", "")
		if title == "" || !strings.HasPrefix(link, "http") {
			return true
		}

		domain := domainOf(link)
		if domain == "" || IsSkipDomain(domain) {
			return true
		}

		leads = append(leads, &entity.Lead{
			CompanyName: CompanyNameFromTitle(title, domain),
			Website:     entity.StringPtr("https://" + domain),
			SourceURL:   entity.StringPtr(link),
			SearchQuery: entity.StringPtr(query),
			Source:      entity.SourceGoogle,
			Status:      entity.LeadStatusNew,
		})
		return true
	})

	return leads
}

func domainOf(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
