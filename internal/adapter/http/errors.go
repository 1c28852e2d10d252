package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"collabhub/internal/core/domain"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

var errorKinds = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
	{domain.ErrDuplicateApplication, http.StatusConflict, "duplicate_application"},
	{domain.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{domain.ErrIncompleteDeliverables, http.StatusConflict, "incomplete_deliverables"},
	{domain.ErrCollaborationNotStarted, http.StatusConflict, "collaboration_not_started"},
	{domain.ErrNotUnderReview, http.StatusConflict, "not_under_review"},
	{domain.ErrOutOfOrderRelease, http.StatusConflict, "out_of_order_release"},
	{domain.ErrEscrowNotReleased, http.StatusConflict, "escrow_not_released"},
	{domain.ErrCampaignClosed, http.StatusConflict, "campaign_closed"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
}

// writeError maps domain error kinds to status codes. Anything else is
// logged and reported as a 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			writeJSON(w, k.status, errorBody{Error: errorDetail{Code: k.code, Message: err.Error()}})
			return
		}
	}
	h.logger.ErrorContext(r.Context(), op+" error",
		slog.Any("error", err),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{Code: "internal", Message: "internal error"}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(domain.ErrInvalidInput, err)
	}
	return nil
}
