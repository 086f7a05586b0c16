package usecase

import "github.com/aksoytekstil/leadfinder/internal/infra/database"

type SearchLeadsInput struct {
	Query      string   `json:"query"`
	Location   string   `json:"location"`
	Sources    []string `json:"sources"`
	MaxResults int      `json:"max_results"`
	Enrich     bool     `json:"enrich"`
}

type SearchLeadsOutput struct {
	Query      string         `json:"query"`
	TotalFound int            `json:"total_found"`
	Saved      int            `json:"saved"`
	Duplicates int            `json:"duplicates"`
	PerSource  map[string]int `json:"per_source"`
}

type BulkSearchInput struct {
	Market     string `json:"market"`
	Language   string `json:"language"`
	MaxQueries int    `json:"max_queries"`
}

type BulkSearchOutput struct {
	Market     string   `json:"market"`
	Queries    []string `json:"queries"`
	TotalFound int      `json:"total_found"`
	Saved      int      `json:"saved"`
	Duplicates int      `json:"duplicates"`
}

type EnrichLeadsInput struct {
	Limit int `json:"limit"`
}

type EnrichLeadsOutput struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
}

type CreateCampaignInput struct {
	Name         string `json:"name"`
	TemplateName string `json:"template_name"`
	LeadStatus   string `json:"lead_status"`
	Limit        int    `json:"limit"`
}

type CreateCampaignOutput struct {
	CampaignID      int64  `json:"campaign_id"`
	Reference       string `json:"reference"`
	TotalRecipients int    `json:"total_recipients"`
}

type RunCampaignInput struct {
	CampaignID int64 `json:"campaign_id"`
	DryRun     bool  `json:"dry_run"`
}

type RunCampaignOutput struct {
	CampaignID int64 `json:"campaign_id"`
	Sent       int   `json:"sent"`
	Failed     int   `json:"failed"`
	Skipped    int   `json:"skipped"`
	DryRun     bool  `json:"dry_run"`

	// Preview is only filled on a dry run.
	Preview *CampaignPreview `json:"preview,omitempty"`
}

type CampaignPreview struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type CampaignStatsOutput struct {
	CampaignID   int64   `json:"campaign_id"`
	Reference    string  `json:"reference"`
	Name         string  `json:"name"`
	TemplateName string  `json:"template_name"`
	Status       string  `json:"status"`
	Total        int     `json:"total_recipients"`
	Sent         int     `json:"sent"`
	Failed       int     `json:"failed"`
	Opened       int     `json:"opened"`
	Replied      int     `json:"replied"`
	OpenRate     float64 `json:"open_rate"`
	ReplyRate    float64 `json:"reply_rate"`
}

type ExportLeadsInput struct {
	Format    string `json:"format"`
	Status    string `json:"status"`
	Country   string `json:"country"`
	WithEmail bool   `json:"with_email"`
}

type ExportLeadsOutput struct {
	FilePath string `json:"file_path"`
	Count    int    `json:"count"`
}

type StatsOutput struct {
	TotalLeads      int                     `json:"total_leads"`
	LeadsWithEmail  int                     `json:"leads_with_email"`
	ByStatus        map[string]int          `json:"by_status"`
	TopCountries    []database.CountryCount `json:"top_countries"`
	EmailsSentToday int                     `json:"emails_sent_today"`
}
