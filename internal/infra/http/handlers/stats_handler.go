package handlers

import (
	"net/http"

	"github.com/aksoytekstil/leadfinder/internal/usecase"
)

type StatsHandler struct {
	Stats *usecase.StatsUseCase
}

func NewStatsHandler(stats *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.Stats.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
