package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aksoytekstil/leadfinder/internal/usecase"
)

type CampaignHandler struct {
	Campaigns *usecase.CampaignUseCase
}

func NewCampaignHandler(campaigns *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{Campaigns: campaigns}
}

type SendCampaignRequest struct {
	Name     string `json:"name"`
	Template string `json:"template"`
	Status   string `json:"status"`
	Limit    int    `json:"limit"`
	DryRun   bool   `json:"dry_run"`
}

// HandleSend creates a campaign over the currently eligible leads and runs it
// in one step. With dry_run the run renders a preview and sends nothing.
func (h *CampaignHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req SendCampaignRequest
	if !decodeBody(w, r, &req) {
		return
	}

	name := req.Name
	if name == "" {
		name = "Campaign " + req.Template
	}

	created, err := h.Campaigns.Create(r.Context(), usecase.CreateCampaignInput{
		Name:         name,
		TemplateName: req.Template,
		LeadStatus:   req.Status,
		Limit:        req.Limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.Campaigns.Run(r.Context(), usecase.RunCampaignInput{
		CampaignID: created.CampaignID,
		DryRun:     req.DryRun,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *CampaignHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid campaign id"})
		return
	}

	stats, err := h.Campaigns.Stats(r.Context(), id)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
