package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"collabhub/internal/core/domain"
)

func (h *Handler) handleGetCollaboration(w http.ResponseWriter, r *http.Request) {
	collab, err := h.svc.GetCollaboration(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "collaborationID"))
	if err != nil {
		h.writeError(w, r, "get collaboration", err)
		return
	}
	writeJSON(w, http.StatusOK, collab)
}

type submitDeliverableRequest struct {
	ContentRef string `json:"content_ref"`
}

func (h *Handler) handleSubmitDeliverable(w http.ResponseWriter, r *http.Request) {
	var req submitDeliverableRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "submit deliverable", err)
		return
	}
	d, err := h.svc.SubmitDeliverable(r.Context(), actorFrom(r.Context()),
		chi.URLParam(r, "collaborationID"), chi.URLParam(r, "deliverableID"), req.ContentRef)
	if err != nil {
		h.writeError(w, r, "submit deliverable", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type reviewDeliverableRequest struct {
	Decision domain.ReviewDecision `json:"decision"`
	Note     string                `json:"note"`
}

func (h *Handler) handleReviewDeliverable(w http.ResponseWriter, r *http.Request) {
	var req reviewDeliverableRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "review deliverable", err)
		return
	}
	d, err := h.svc.ReviewDeliverable(r.Context(), actorFrom(r.Context()),
		chi.URLParam(r, "collaborationID"), chi.URLParam(r, "deliverableID"), req.Decision, req.Note)
	if err != nil {
		h.writeError(w, r, "review deliverable", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleCancelCollaboration(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "cancel collaboration", err)
		return
	}
	collab, err := h.svc.CancelCollaboration(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "collaborationID"), req.Reason)
	if err != nil {
		h.writeError(w, r, "cancel collaboration", err)
		return
	}
	writeJSON(w, http.StatusOK, collab)
}
