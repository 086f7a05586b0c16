package scraper

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

const europagesBaseURL = "https://www.europages.com"

// Europages scrapes the Europages B2B directory. Pagination runs until a page
// yields no parsed cards, capped at maxPages.
type Europages struct {
	fetcher  *Fetcher
	maxPages int
}

func NewEuropages(fetcher *Fetcher) *Europages {
	return &Europages{fetcher: fetcher, maxPages: 5}
}

func (s *Europages) Name() string {
	return entity.SourceEuropages
}

func (s *Europages) Search(ctx context.Context, query, location string, maxResults int) []*entity.Lead {
	searchTerm := query
	if location != "" {
		searchTerm = query + " " + location
	}

	var leads []*entity.Lead
	for page := 1; page <= s.maxPages; page++ {
		pageLeads := s.scrapePage(ctx, searchTerm, page)
		if len(pageLeads) == 0 {
			break
		}
		leads = append(leads, pageLeads...)
		log.Printf("europages: page %d scraped, %d leads total", page, len(leads))

		if maxResults > 0 && len(leads) >= maxResults {
			leads = leads[:maxResults]
			break
		}
	}
	return leads
}

func (s *Europages) scrapePage(ctx context.Context, query string, page int) []*entity.Lead {
	pageURL := europagesBaseURL + "/en/search?q=" + url.QueryEscape(query) + "&page=" + strconv.Itoa(page)

	doc := s.fetcher.Fetch(ctx, pageURL)
	if doc == nil {
		return nil
	}

	cards := doc.Find("article[class*='company-card'], article[class*='result']")
	if cards.Length() == 0 {
		cards = doc.Find("div[class*='company'], div[class*='result']")
	}

	var leads []*entity.Lead
	cards.Each(func(i int, card *goquery.Selection) {
		if lead := s.parseCard(card); lead != nil {
			leads = append(leads, lead)
		}
	})
	return leads
}

// parseCard extracts whatever fields the card happens to expose. A card with
// no company name is dropped.
func (s *Europages) parseCard(card *goquery.Selection) *entity.Lead {
	lead := &entity.Lead{
		Source: s.Name(),
		Status: entity.LeadStatusNew,
	}

	nameElem := card.Find("h2[class*='name'], h3[class*='name'], a[class*='name'], h2[class*='title'], h3[class*='title'], a[class*='company']").First()
	if nameElem.Length() == 0 {
		nameElem = card.Find("h2, h3").First()
	}
	lead.CompanyName = CleanText(nameElem.Text())
	if lead.CompanyName == "" {
		return nil
	}

	if href := firstHref(card, nameElem); href != "" {
		lead.SourceURL = entity.StringPtr(resolveURL(europagesBaseURL, href))
	}

	if locationText := CleanText(card.Find("[class*='location'], [class*='country'], [class*='address']").First().Text()); locationText != "" {
		city, country := SplitLocation(locationText)
		lead.City = entity.StringPtr(city)
		lead.Country = entity.StringPtr(country)
	}

	if industry := CleanText(card.Find("[class*='description'], [class*='activity'], [class*='sector']").First().Text()); industry != "" {
		lead.Industry = entity.StringPtr(industry)
	}

	cardText := card.Text()
	if emails := ExtractEmails(cardText); len(emails) > 0 {
		lead.Email = entity.StringPtr(emails[0])
	}
	if phones := ExtractPhones(cardText); len(phones) > 0 {
		lead.Phone = entity.StringPtr(phones[0])
	}

	return lead
}

func firstHref(card, preferred *goquery.Selection) string {
	if href, ok := preferred.Attr("href"); ok {
		return href
	}
	return card.Find("a").First().AttrOr("href", "")
}

func resolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
