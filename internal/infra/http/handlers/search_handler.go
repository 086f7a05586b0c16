package handlers

import (
	"net/http"

	"github.com/aksoytekstil/leadfinder/internal/infra/http/middleware"
	"github.com/aksoytekstil/leadfinder/internal/usecase"
)

type SearchHandler struct {
	Search *usecase.SearchLeadsUseCase
	Bulk   *usecase.BulkSearchUseCase
}

func NewSearchHandler(search *usecase.SearchLeadsUseCase, bulk *usecase.BulkSearchUseCase) *SearchHandler {
	return &SearchHandler{Search: search, Bulk: bulk}
}

type SearchRequest struct {
	Query      string   `json:"query"`
	Country    string   `json:"country"`
	City       string   `json:"city"`
	Sources    []string `json:"sources"`
	MaxResults int      `json:"max_results"`
	Enrich     bool     `json:"enrich"`
}

func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	location := req.City
	if location == "" {
		location = req.Country
	}

	output, err := h.Search.Execute(r.Context(), usecase.SearchLeadsInput{
		Query:      req.Query,
		Location:   location,
		Sources:    req.Sources,
		MaxResults: req.MaxResults,
		Enrich:     req.Enrich,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	for source := range output.PerSource {
		middleware.RecordSearch(source)
	}
	middleware.RecordLeadsSaved(output.Saved, output.Duplicates)

	writeJSON(w, http.StatusOK, output)
}

type BulkSearchRequest struct {
	Market       string `json:"market"`
	KeywordsLang string `json:"keywords_lang"`
	MaxQueries   int    `json:"max_queries"`
}

func (h *SearchHandler) HandleBulkSearch(w http.ResponseWriter, r *http.Request) {
	var req BulkSearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.Bulk.Execute(r.Context(), usecase.BulkSearchInput{
		Market:     req.Market,
		Language:   req.KeywordsLang,
		MaxQueries: req.MaxQueries,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadsSaved(output.Saved, output.Duplicates)
	writeJSON(w, http.StatusOK, output)
}
