package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"collabhub/internal/core/domain"
)

type submitApplicationRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message"`
}

// handleSubmitApplication applies the calling creator to a campaign. It
// responds 201 with the pending application.
func (h *Handler) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "submit application", err)
		return
	}
	actor := actorFrom(r.Context())
	app, err := h.svc.SubmitApplication(r.Context(), actor, chi.URLParam(r, "campaignID"), actor.ID,
		domain.Terms{Amount: req.Amount, Message: req.Message})
	if err != nil {
		h.writeError(w, r, "submit application", err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

type decideApplicationRequest struct {
	Decision domain.Decision `json:"decision"`
}

// handleDecideApplication accepts or rejects an application. Acceptance
// returns the collaboration; rejection returns 204 No Content.
func (h *Handler) handleDecideApplication(w http.ResponseWriter, r *http.Request) {
	var req decideApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, "decide application", err)
		return
	}
	collab, err := h.svc.DecideApplication(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "applicationID"), req.Decision)
	if err != nil {
		h.writeError(w, r, "decide application", err)
		return
	}
	if collab == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, collab)
}
