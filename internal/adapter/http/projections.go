package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleCreatorDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.GetCreatorDashboard(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "creatorID"))
	if err != nil {
		h.writeError(w, r, "creator dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (h *Handler) handleBrandFunnel(w http.ResponseWriter, r *http.Request) {
	funnel, err := h.svc.GetBrandFunnel(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeError(w, r, "brand funnel", err)
		return
	}
	writeJSON(w, http.StatusOK, funnel)
}
