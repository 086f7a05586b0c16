// Package emailtools discovers, guesses and validates email addresses for
// leads.
package emailtools

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aksoytekstil/leadfinder/internal/infra/scraper"
)

// Pages checked in order when hunting for an address on a company site.
var pagesToCheck = []string{
	"",
	"/contact",
	"/contact-us",
	"/kontakt",
	"/about",
	"/about-us",
	"/impressum",
	"/imprint",
	"/legal",
}

// Mailbox keywords ranked by B2B outreach relevance. Earlier wins; mailboxes
// matching none sort last.
var priorityPrefixes = []string{
	"export", "import", "sales", "purchasing", "procurement",
	"buyer", "orders", "inquiry", "info", "contact", "hello",
}

// Role mailboxes tried when nothing was found on the site, in order.
var genericMailboxes = []string{
	"info", "contact", "sales", "export", "import", "purchasing", "orders", "hello",
}

// Finder scrapes company sites for addresses and generates pattern guesses.
type Finder struct {
	fetcher *scraper.Fetcher
}

func NewFinder(fetcher *scraper.Fetcher) *Finder {
	return &Finder{fetcher: fetcher}
}

// FindFromWebsite walks the candidate pages and returns the addresses of the
// first page that yields any, ranked most relevant first. Fetch failures on
// individual pages just move on to the next.
func (f *Finder) FindFromWebsite(ctx context.Context, website string) []string {
	if website == "" {
		return nil
	}
	base := strings.TrimRight(normalizeWebsite(website), "/")

	for _, page := range pagesToCheck {
		doc := f.fetcher.Fetch(ctx, base+page)
		if doc == nil {
			continue
		}

		if emails := emailsFromDocument(doc); len(emails) > 0 {
			return PrioritizeEmails(emails)
		}
	}
	return nil
}

// emailsFromDocument pulls addresses from visible text and mailto links,
// preserving discovery order.
func emailsFromDocument(doc *goquery.Document) []string {
	var raw strings.Builder
	doc.Find("a[href^='mailto:']").Each(func(i int, sel *goquery.Selection) {
		raw.WriteString(strings.TrimPrefix(sel.AttrOr("href", ""), "mailto:"))
		raw.WriteString(" ")
	})
	raw.WriteString(doc.Text())
	return scraper.ExtractEmails(raw.String())
}

// PrioritizeEmails orders candidates by mailbox-keyword relevance. The sort is
// stable: ties keep discovery order.
func PrioritizeEmails(emails []string) []string {
	ranked := make([]string, len(emails))
	copy(ranked, emails)

	sort.SliceStable(ranked, func(i, j int) bool {
		return mailboxPriority(ranked[i]) < mailboxPriority(ranked[j])
	})
	return ranked
}

func mailboxPriority(email string) int {
	mailbox := strings.ToLower(email)
	if idx := strings.Index(mailbox, "@"); idx >= 0 {
		mailbox = mailbox[:idx]
	}
	for i, prefix := range priorityPrefixes {
		if strings.Contains(mailbox, prefix) {
			return i
		}
	}
	return len(priorityPrefixes)
}

// GeneratePatterns produces plausible addresses for a domain: the role-based
// generics always, plus name permutations when a contact name is known.
func GeneratePatterns(domain, firstName, lastName string) []string {
	var emails []string
	for _, mailbox := range genericMailboxes {
		emails = append(emails, mailbox+"@"+domain)
	}

	if firstName != "" && lastName != "" {
		first := strings.ToLower(firstName)
		last := strings.ToLower(lastName)
		emails = append(emails,
			first+"@"+domain,
			last+"@"+domain,
			first+"."+last+"@"+domain,
			first+"_"+last+"@"+domain,
			first[:1]+last+"@"+domain,
			first+last[:1]+"@"+domain,
			first+last+"@"+domain,
		)
	}

	return emails
}

// DomainFromWebsite extracts the bare domain from a website URL.
func DomainFromWebsite(website string) string {
	if website == "" {
		return ""
	}
	parsed, err := url.Parse(normalizeWebsite(website))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

func normalizeWebsite(website string) string {
	if strings.HasPrefix(strings.ToLower(website), "http") {
		return website
	}
	return "https://" + website
}
