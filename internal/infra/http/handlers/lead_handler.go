package handlers

import (
	"net/http"
	"strconv"

	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/database"
	"github.com/aksoytekstil/leadfinder/internal/usecase"
)

type LeadHandler struct {
	Repo   usecase.LeadRepositoryInterface
	Enrich *usecase.EnrichLeadsUseCase
	Export *usecase.ExportLeadsUseCase
}

func NewLeadHandler(repo usecase.LeadRepositoryInterface, enrich *usecase.EnrichLeadsUseCase, export *usecase.ExportLeadsUseCase) *LeadHandler {
	return &LeadHandler{Repo: repo, Enrich: enrich, Export: export}
}

type ListLeadsResponse struct {
	Leads []*entity.Lead `json:"leads"`
	Count int            `json:"count"`
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	withEmail, _ := strconv.ParseBool(query.Get("with_email"))

	leads, err := h.Repo.List(r.Context(), database.ListFilter{
		Status:    query.Get("status"),
		Country:   query.Get("country"),
		WithEmail: withEmail,
		Limit:     limit,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leads"})
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, ListLeadsResponse{Leads: leads, Count: len(leads)})
}

type EnrichRequest struct {
	Limit int `json:"limit"`
}

func (h *LeadHandler) HandleEnrich(w http.ResponseWriter, r *http.Request) {
	var req EnrichRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.Enrich.Execute(r.Context(), usecase.EnrichLeadsInput{Limit: req.Limit})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

type ExportRequest struct {
	Format    string `json:"format"`
	Status    string `json:"status"`
	Country   string `json:"country"`
	WithEmail bool   `json:"with_email"`
}

func (h *LeadHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.Export.Execute(r.Context(), usecase.ExportLeadsInput{
		Format:    req.Format,
		Status:    req.Status,
		Country:   req.Country,
		WithEmail: req.WithEmail,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
