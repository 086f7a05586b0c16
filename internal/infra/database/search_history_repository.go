package database

import (
	"context"
	"database/sql"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

type SearchHistoryRepository struct {
	DB *sql.DB
}

func NewSearchHistoryRepository(db *sql.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{DB: db}
}

func (r *SearchHistoryRepository) Insert(ctx context.Context, history *entity.SearchHistory) error {
	query := `
		INSERT INTO search_history (query, source, results_count, searched_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		history.Query,
		history.Source,
		history.ResultsCount,
		history.SearchedAt,
	).Scan(&history.ID)
}
