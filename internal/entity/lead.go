package entity

import (
	"errors"
	"time"
)

// Lead statuses. Forward progression is expected but not enforced.
const (
	LeadStatusNew           = "new"
	LeadStatusContacted     = "contacted"
	LeadStatusResponded     = "responded"
	LeadStatusInterested    = "interested"
	LeadStatusNotInterested = "not_interested"
	LeadStatusConverted     = "converted"
)

// Lead sources.
const (
	SourceWebSearch       = "websearch"
	SourceDuckDuckGo      = "duckduckgo"
	SourceGoogle          = "google"
	SourceEuropages       = "europages"
	SourceKompass         = "kompass"
	SourceTurkishExporter = "turkish_exporter"
	SourceManual          = "manual"
	SourceIntake          = "intake"
)

// How an email ended up on a lead.
const (
	EmailTypeFound     = "found"
	EmailTypeGenerated = "generated"
)

// Lead is a prospective company contact. Optional attributes are pointers:
// nil means the scraper never saw the field, which is different from "".
type Lead struct {
	ID int64 `json:"id"`

	CompanyName string  `json:"company_name"`
	Website     *string `json:"website,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	CompanySize *string `json:"company_size,omitempty"`

	ContactName   *string `json:"contact_name,omitempty"`
	ContactTitle  *string `json:"contact_title,omitempty"`
	Email         *string `json:"email,omitempty"`
	EmailVerified bool    `json:"email_verified"`
	// EmailType records whether the address was scraped ("found") or pattern
	// guessed ("generated"). A generated address is never marked verified even
	// when its MX check passed.
	EmailType *string `json:"email_type,omitempty"`
	Phone     *string `json:"phone,omitempty"`

	Country *string `json:"country,omitempty"`
	City    *string `json:"city,omitempty"`
	Address *string `json:"address,omitempty"`

	Source string  `json:"source"`
	Status string  `json:"status"`
	Score  int     `json:"score"`
	Tags   *string `json:"tags,omitempty"`
	Notes  *string `json:"notes,omitempty"`

	SearchQuery *string `json:"search_query,omitempty"`
	SourceURL   *string `json:"source_url,omitempty"`

	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`
}

// NewLead builds a lead in its initial state.
func NewLead(companyName, source string) (*Lead, error) {
	lead := &Lead{
		CompanyName: companyName,
		Source:      source,
		Status:      LeadStatusNew,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.CompanyName == "" {
		return errors.New("company name is required")
	}
	if l.Source == "" {
		return errors.New("source is required")
	}
	return nil
}

// HasEmail reports whether the lead carries a non-empty address.
func (l *Lead) HasEmail() bool {
	return l.Email != nil && *l.Email != ""
}

// HasWebsite reports whether the lead carries a non-empty website.
func (l *Lead) HasWebsite() bool {
	return l.Website != nil && *l.Website != ""
}

// StringPtr is a small helper for building optional fields.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
