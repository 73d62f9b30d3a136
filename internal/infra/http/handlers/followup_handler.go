package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

type FollowUpHandler struct {
	FollowUps *usecase.FollowUpUseCase
}

func NewFollowUpHandler(followUps *usecase.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{FollowUps: followUps}
}

// Board (GET /followups?status=all|ok|warning|overdue)
func (h *FollowUpHandler) Board(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "all"
	}

	out, err := h.FollowUps.Board(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *FollowUpHandler) CreatePreSale(w http.ResponseWriter, r *http.Request) {
	var input usecase.PreSaleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	f, err := h.FollowUps.CreatePreSale(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *FollowUpHandler) ExecutePreSale(w http.ResponseWriter, r *http.Request) {
	if err := h.FollowUps.ExecutePreSale(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FollowUpHandler) CompletePostSale(w http.ResponseWriter, r *http.Request) {
	f, err := h.FollowUps.CompletePostSale(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}
