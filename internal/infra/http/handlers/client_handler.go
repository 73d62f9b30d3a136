package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ClientHandler struct {
	Clients *usecase.ClientsUseCase
}

func NewClientHandler(clients *usecase.ClientsUseCase) *ClientHandler {
	return &ClientHandler{Clients: clients}
}

type SearchRequest struct {
	Term string `json:"term"`
}

type FilterRequest struct {
	Status string `json:"status"`
}

type SortRequest struct {
	Field string `json:"field"`
}

type PageRequest struct {
	Page int `json:"page"`
}

func (h *ClientHandler) respondView(w http.ResponseWriter, view usecase.ClientViewOutput, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *ClientHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.Clients.View(r.Context())
	h.respondView(w, view, err)
}

func (h *ClientHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.Clients.SetSearch(r.Context(), req.Term)
	h.respondView(w, view, err)
}

func (h *ClientHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.Clients.SetFilter(r.Context(), req.Status)
	h.respondView(w, view, err)
}

func (h *ClientHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req SortRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.Clients.ToggleSort(r.Context(), req.Field)
	h.respondView(w, view, err)
}

func (h *ClientHandler) Page(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.Clients.GoToPage(r.Context(), req.Page)
	h.respondView(w, view, err)
}

func (h *ClientHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	view, err := h.Clients.ToggleSelection(r.Context(), chi.URLParam(r, "id"))
	h.respondView(w, view, err)
}

func (h *ClientHandler) TogglePageSelection(w http.ResponseWriter, r *http.Request) {
	view, err := h.Clients.TogglePageSelection(r.Context())
	h.respondView(w, view, err)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.ClientInput
	if !decodeJSON(w, r, &input) {
		return
	}

	client, err := h.Clients.AddClient(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.ClientPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	client, err := h.Clients.UpdateClient(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) AddHistory(w http.ResponseWriter, r *http.Request) {
	var input usecase.ClientHistoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	client, err := h.Clients.AddHistory(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	out, err := h.Clients.DeleteSelected(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ClientHandler) MessageSelected(w http.ResponseWriter, r *http.Request) {
	out, err := h.Clients.MessageSelected(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ExportSelected devolve a planilha; a mensagem de confirmação vai no header.
func (h *ClientHandler) ExportSelected(w http.ResponseWriter, r *http.Request) {
	data, out, err := h.Clients.ExportSelected(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="clientes.xlsx"`)
	w.Header().Set("X-Export-Count", fmt.Sprint(out.Affected))
	w.Header().Set("X-Export-Message", url.QueryEscape(out.Message))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
