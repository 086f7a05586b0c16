package entity

import "time"

// SearchHistory is an append-only audit row for one executed search. It is
// only ever stored, never consulted programmatically.
type SearchHistory struct {
	ID           int64     `json:"id"`
	Query        string    `json:"query"`
	Source       string    `json:"source"`
	ResultsCount int       `json:"results_count"`
	SearchedAt   time.Time `json:"searched_at"`
}
