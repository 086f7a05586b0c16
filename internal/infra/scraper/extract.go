package scraper

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
}

// Substrings that mark an email-shaped match as junk (image names, filler
// domains in markup).
var badEmailSubstrings = []string{
	".png", ".jpg", ".gif", ".svg", ".webp",
	"example.com", "test.com", "domain.com",
	"@email.com", "@mail.com", "yourdomain",
}

// Domains that never belong to a prospective buyer: social networks,
// marketplaces, search engines, reference sites, government and education.
var skipDomains = []string{
	"facebook.com", "twitter.com", "linkedin.com", "instagram.com",
	"youtube.com", "pinterest.com", "tiktok.com",
	"wikipedia.org", "amazon.com", "ebay.com", "alibaba.com",
	"google.com", "bing.com", "yahoo.com",
	"yelp.com", "yellowpages.com", "tripadvisor.com",
	"reddit.com", "quora.com", "medium.com",
	"gov.", ".gov", ".edu",
}

// ExtractEmails pulls email-shaped strings out of free text, dropping junk
// matches and duplicates. Discovery order is preserved.
func ExtractEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)

	seen := map[string]bool{}
	var emails []string
	for _, match := range matches {
		lower := strings.ToLower(match)
		if seen[lower] || isBadEmail(lower) {
			continue
		}
		seen[lower] = true
		emails = append(emails, lower)
	}
	return emails
}

func isBadEmail(email string) bool {
	for _, bad := range badEmailSubstrings {
		if strings.Contains(email, bad) {
			return true
		}
	}
	return false
}

// ExtractPhones pulls phone-shaped strings out of free text.
func ExtractPhones(text string) []string {
	seen := map[string]bool{}
	var phones []string
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if !seen[match] {
				seen[match] = true
				phones = append(phones, match)
			}
		}
	}
	return phones
}

// IsSkipDomain reports whether the domain is on the denylist.
func IsSkipDomain(domain string) bool {
	lower := strings.ToLower(domain)
	for _, skip := range skipDomains {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	return false
}

// CleanText collapses whitespace runs.
func CleanText(text string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

var titleSeparators = []string{" - ", " | ", " – ", " :: ", " : "}

var nameCleanup = regexp.MustCompile(`[-_]`)

// CompanyNameFromTitle extracts a company name from a page title, falling back
// to a prettified domain when the title is too generic.
func CompanyNameFromTitle(title, domain string) string {
	for _, sep := range titleSeparators {
		if idx := strings.Index(title, sep); idx >= 0 {
			title = title[:idx]
			break
		}
	}
	title = strings.TrimSpace(title)

	lower := strings.ToLower(title)
	if len(title) < 3 || lower == "home" || lower == "welcome" || lower == "index" {
		name := domain
		if idx := strings.Index(name, "."); idx >= 0 {
			name = name[:idx]
		}
		return strings.Title(nameCleanup.ReplaceAllString(name, " "))
	}

	return title
}

// SplitLocation splits "City, Country" style strings. A single segment is
// treated as a country.
func SplitLocation(location string) (city, country string) {
	parts := strings.Split(location, ",")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[len(parts)-1])
	}
	return "", strings.TrimSpace(location)
}
