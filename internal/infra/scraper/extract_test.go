package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmails(t *testing.T) {
	text := `Contact us at Sales@Acme.COM or info@acme.com.
		Logo: logo@2x.png icon@site.svg placeholder user@example.com
		Again: sales@acme.com`

	emails := ExtractEmails(text)

	assert.Equal(t, []string{"sales@acme.com", "info@acme.com"}, emails)
}

func TestExtractEmailsDropsJunk(t *testing.T) {
	text := "image@assets.png someone@test.com real@company.de"

	assert.Equal(t, []string{"real@company.de"}, ExtractEmails(text))
}

func TestExtractPhones(t *testing.T) {
	text := "Call +49 30 1234 5678 or (212) 555 0100."

	phones := ExtractPhones(text)

	assert.NotEmpty(t, phones)
	assert.Contains(t, phones[0], "+49")
}

func TestIsSkipDomain(t *testing.T) {
	assert.True(t, IsSkipDomain("www.facebook.com"))
	assert.True(t, IsSkipDomain("en.wikipedia.org"))
	assert.True(t, IsSkipDomain("something.gov"))
	assert.True(t, IsSkipDomain("university.edu"))
	assert.False(t, IsSkipDomain("acme-textiles.de"))
}

func TestCompanyNameFromTitle(t *testing.T) {
	assert.Equal(t, "Acme Textiles", CompanyNameFromTitle("Acme Textiles - Quality Fabrics Since 1970", "acme.com"))
	assert.Equal(t, "Acme Textiles", CompanyNameFromTitle("Acme Textiles | Home", "acme.com"))
	// Generic titles fall back to a prettified domain.
	assert.Equal(t, "Acme Textiles", CompanyNameFromTitle("Home", "acme-textiles.com"))
	assert.Equal(t, "Beta", CompanyNameFromTitle("Welcome", "beta.co.uk"))
}

func TestSplitLocation(t *testing.T) {
	city, country := SplitLocation("Hamburg, Germany")
	assert.Equal(t, "Hamburg", city)
	assert.Equal(t, "Germany", country)

	city, country = SplitLocation("Berlin, Mitte, Germany")
	assert.Equal(t, "Berlin", city)
	assert.Equal(t, "Germany", country)

	city, country = SplitLocation("Germany")
	assert.Equal(t, "", city)
	assert.Equal(t, "Germany", country)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Acme Textiles GmbH", CleanText("  Acme\n\tTextiles   GmbH  "))
}
