package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"collabhub/internal/core/port"
)

// handleReleaseEscrow releases processing funds. The Idempotency-Key
// header is required; repeating a request returns the released entry.
func (h *Handler) handleReleaseEscrow(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.ReleaseEscrow(r.Context(), actorFrom(r.Context()),
		chi.URLParam(r, "collaborationID"), r.Header.Get("Idempotency-Key"))
	if err != nil {
		h.writeError(w, r, "release escrow", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleFlagDispute(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "flag dispute", err)
		return
	}
	entry, err := h.svc.FlagEscrowDispute(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "collaborationID"), req.Reason)
	if err != nil {
		h.writeError(w, r, "flag dispute", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// handleEscrowHistory lists escrow transactions for exactly one of the
// creator_id or campaign_id query parameters.
func (h *Handler) handleEscrowHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	history, err := h.svc.GetEscrowHistory(r.Context(), actorFrom(r.Context()), port.EscrowHistoryFilter{
		CreatorID:  q.Get("creator_id"),
		CampaignID: q.Get("campaign_id"),
	})
	if err != nil {
		h.writeError(w, r, "escrow history", err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
