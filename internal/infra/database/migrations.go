package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the four tables if they do not exist yet. DDL differs per
// dialect only in the primary key column; everything else is portable SQL.
// uniqueLeads optionally adds the (company_name, website) unique index;
// without it duplicate suppression is query-then-insert only.
func Migrate(ctx context.Context, db *sql.DB, driver string, uniqueLeads bool) error {
	pk := "BIGSERIAL PRIMARY KEY"
	if driver == "sqlite3" {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS leads (
			id %s,
			company_name VARCHAR(255) NOT NULL,
			website VARCHAR(255),
			industry VARCHAR(100),
			company_size VARCHAR(50),
			contact_name VARCHAR(255),
			contact_title VARCHAR(100),
			email VARCHAR(255),
			email_verified BOOLEAN NOT NULL DEFAULT FALSE,
			email_type VARCHAR(20),
			phone VARCHAR(50),
			country VARCHAR(100),
			city VARCHAR(100),
			address TEXT,
			source VARCHAR(50) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'new',
			score INTEGER NOT NULL DEFAULT 0,
			tags VARCHAR(500),
			notes TEXT,
			search_query VARCHAR(255),
			source_url TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			last_contacted TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS email_campaigns (
			id %s,
			reference VARCHAR(36) NOT NULL,
			name VARCHAR(255) NOT NULL,
			template_name VARCHAR(100) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'draft',
			lead_status VARCHAR(50) NOT NULL DEFAULT 'new',
			total_recipients INTEGER NOT NULL DEFAULT 0,
			sent_count INTEGER NOT NULL DEFAULT 0,
			open_count INTEGER NOT NULL DEFAULT 0,
			reply_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			started_at TIMESTAMP,
			completed_at TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS email_logs (
			id %s,
			lead_id BIGINT,
			campaign_id BIGINT,
			to_email VARCHAR(255) NOT NULL,
			subject VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL,
			error_message TEXT,
			sent_at TIMESTAMP,
			opened_at TIMESTAMP,
			replied_at TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS search_history (
			id %s,
			query VARCHAR(255) NOT NULL,
			source VARCHAR(50) NOT NULL,
			results_count INTEGER NOT NULL DEFAULT 0,
			searched_at TIMESTAMP NOT NULL
		)`, pk),
	}

	if uniqueLeads {
		stmts = append(stmts,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_leads_company_website ON leads (company_name, website)`)
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
