package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, company_name, website, industry, company_size,
	contact_name, contact_title, email, email_verified, email_type, phone,
	country, city, address, source, status, score, tags, notes,
	search_query, source_url, created_at, updated_at, last_contacted`

// Insert stores a new lead and fills in its generated id. Duplicate checking
// is the caller's job (ExistsByCompanyAndWebsite before Insert); there is no
// transaction spanning the two.
func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	query := `
		INSERT INTO leads (company_name, website, industry, company_size,
			contact_name, contact_title, email, email_verified, email_type, phone,
			country, city, address, source, status, score, tags, notes,
			search_query, source_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		lead.CompanyName,
		lead.Website,
		lead.Industry,
		lead.CompanySize,
		lead.ContactName,
		lead.ContactTitle,
		lead.Email,
		lead.EmailVerified,
		lead.EmailType,
		lead.Phone,
		lead.Country,
		lead.City,
		lead.Address,
		lead.Source,
		lead.Status,
		lead.Score,
		lead.Tags,
		lead.Notes,
		lead.SearchQuery,
		lead.SourceURL,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID)
}

// ExistsByCompanyAndWebsite implements the duplicate check on the natural key.
func (r *LeadRepository) ExistsByCompanyAndWebsite(ctx context.Context, companyName string, website *string) (bool, error) {
	var query string
	var row *sql.Row
	if website == nil {
		query = `SELECT COUNT(1) FROM leads WHERE company_name = $1 AND website IS NULL`
		row = r.DB.QueryRowContext(ctx, query, companyName)
	} else {
		query = `SELECT COUNT(1) FROM leads WHERE company_name = $1 AND website = $2`
		row = r.DB.QueryRowContext(ctx, query, companyName, *website)
	}

	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return lead, err
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status    string
	Country   string
	WithEmail bool
	Limit     int
}

func (r *LeadRepository) List(ctx context.Context, filter ListFilter) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []any{}
	n := 0

	next := func() string {
		n++
		return placeholder(n)
	}

	if filter.Status != "" {
		query += ` AND status = ` + next()
		args = append(args, filter.Status)
	}
	if filter.Country != "" {
		query += ` AND country = ` + next()
		args = append(args, filter.Country)
	}
	if filter.WithEmail {
		query += ` AND email IS NOT NULL`
	}

	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ` + next()
		args = append(args, filter.Limit)
	}

	return r.queryLeads(ctx, query, args...)
}

// FindMissingEmail returns leads that have a website but no email yet, oldest
// first, for enrichment backfills.
func (r *LeadRepository) FindMissingEmail(ctx context.Context, limit int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE email IS NULL AND website IS NOT NULL
		ORDER BY created_at ASC LIMIT $1`
	return r.queryLeads(ctx, query, limit)
}

// FindForCampaign returns leads with an email in the given status.
func (r *LeadRepository) FindForCampaign(ctx context.Context, status string, limit int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE email IS NOT NULL AND status = $1
		ORDER BY created_at ASC LIMIT $2`
	return r.queryLeads(ctx, query, status, limit)
}

// UpdateEmail writes the enrichment result onto the lead.
func (r *LeadRepository) UpdateEmail(ctx context.Context, id int64, email string, verified bool, emailType string) error {
	query := `UPDATE leads SET email = $1, email_verified = $2, email_type = $3, updated_at = $4 WHERE id = $5`
	_, err := r.DB.ExecContext(ctx, query, email, verified, emailType, time.Now().UTC(), id)
	return err
}

// MarkContacted advances the lead after a successful send.
func (r *LeadRepository) MarkContacted(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE leads SET status = $1, last_contacted = $2, updated_at = $3 WHERE id = $4`
	_, err := r.DB.ExecContext(ctx, query, entity.LeadStatusContacted, at, time.Now().UTC(), id)
	return err
}

// CountAll returns total leads and leads with an email.
func (r *LeadRepository) CountAll(ctx context.Context) (total, withEmail int, err error) {
	if err = r.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM leads`).Scan(&total); err != nil {
		return 0, 0, err
	}
	if err = r.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM leads WHERE email IS NOT NULL`).Scan(&withEmail); err != nil {
		return 0, 0, err
	}
	return total, withEmail, nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(1) FROM leads GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// CountryCount is one row of the per-country breakdown.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

func (r *LeadRepository) CountByCountry(ctx context.Context, limit int) ([]CountryCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT country, COUNT(1) AS c FROM leads
		WHERE country IS NOT NULL
		GROUP BY country ORDER BY c DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []CountryCount
	for rows.Next() {
		var cc CountryCount
		if err := rows.Scan(&cc.Country, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(row scanner) (*entity.Lead, error) {
	var lead entity.Lead
	var lastContacted sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.CompanyName,
		&lead.Website,
		&lead.Industry,
		&lead.CompanySize,
		&lead.ContactName,
		&lead.ContactTitle,
		&lead.Email,
		&lead.EmailVerified,
		&lead.EmailType,
		&lead.Phone,
		&lead.Country,
		&lead.City,
		&lead.Address,
		&lead.Source,
		&lead.Status,
		&lead.Score,
		&lead.Tags,
		&lead.Notes,
		&lead.SearchQuery,
		&lead.SourceURL,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&lastContacted,
	)
	if err != nil {
		return nil, err
	}

	if lastContacted.Valid {
		t := lastContacted.Time
		lead.LastContacted = &t
	}
	return &lead, nil
}
