package scraper

import (
	"context"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

const kompassBaseURL = "https://www.kompass.com"

// Kompass scrapes the Kompass global B2B directory.
type Kompass struct {
	fetcher  *Fetcher
	maxPages int
}

func NewKompass(fetcher *Fetcher) *Kompass {
	return &Kompass{fetcher: fetcher, maxPages: 3}
}

func (s *Kompass) Name() string {
	return entity.SourceKompass
}

func (s *Kompass) Search(ctx context.Context, query, location string, maxResults int) []*entity.Lead {
	searchTerm := query
	if location != "" {
		searchTerm = query + " " + location
	}

	var leads []*entity.Lead
	for page := 1; page <= s.maxPages; page++ {
		pageURL := kompassBaseURL + "/searchCompanies?text=" + url.QueryEscape(searchTerm) + "&page=" + strconv.Itoa(page)

		doc := s.fetcher.Fetch(ctx, pageURL)
		if doc == nil {
			break
		}

		listings := doc.Find("div[class*='company'], div[class*='result'], div[class*='listing']")
		if listings.Length() == 0 {
			break
		}

		listings.Each(func(i int, listing *goquery.Selection) {
			if lead := s.parseListing(listing, query); lead != nil {
				leads = append(leads, lead)
			}
		})

		if maxResults > 0 && len(leads) >= maxResults {
			leads = leads[:maxResults]
			break
		}
	}
	return leads
}

func (s *Kompass) parseListing(listing *goquery.Selection, query string) *entity.Lead {
	lead := &entity.Lead{
		Source:      s.Name(),
		Status:      entity.LeadStatusNew,
		SearchQuery: entity.StringPtr(query),
	}

	nameElem := listing.Find("h2[class*='name'], h3[class*='name'], a[class*='name'], h2[class*='title'], h3[class*='title'], a[class*='title']").First()
	if nameElem.Length() == 0 {
		nameElem = listing.Find("h2, h3").First()
	}
	lead.CompanyName = CleanText(nameElem.Text())
	if lead.CompanyName == "" {
		return nil
	}

	if country := CleanText(listing.Find("[class*='location'], [class*='country']").First().Text()); country != "" {
		lead.Country = entity.StringPtr(country)
	}

	if href := listing.Find("a[href]").First().AttrOr("href", ""); href != "" {
		lead.SourceURL = entity.StringPtr(resolveURL(kompassBaseURL, href))
	}

	text := listing.Text()
	if emails := ExtractEmails(text); len(emails) > 0 {
		lead.Email = entity.StringPtr(emails[0])
	}
	if phones := ExtractPhones(text); len(phones) > 0 {
		lead.Phone = entity.StringPtr(phones[0])
	}

	return lead
}
