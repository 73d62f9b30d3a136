package handlers

import (
	"net/http"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

type SettingsHandler struct {
	Settings *usecase.SettingsUseCase
}

func NewSettingsHandler(settings *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

func respond[T any](w http.ResponseWriter, v T, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *SettingsHandler) Goal(w http.ResponseWriter, r *http.Request) {
	g, err := h.Settings.Goal(r.Context())
	respond(w, g, err)
}

func (h *SettingsHandler) SaveGoal(w http.ResponseWriter, r *http.Request) {
	var input entity.Goal
	if !decodeJSON(w, r, &input) {
		return
	}
	g, err := h.Settings.SaveGoal(r.Context(), input)
	respond(w, g, err)
}

func (h *SettingsHandler) Company(w http.ResponseWriter, r *http.Request) {
	c, err := h.Settings.Company(r.Context())
	respond(w, c, err)
}

func (h *SettingsHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	var input entity.CompanySettings
	if !decodeJSON(w, r, &input) {
		return
	}
	c, err := h.Settings.SaveCompany(r.Context(), input)
	respond(w, c, err)
}

func (h *SettingsHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Settings.WhatsApp(r.Context())
	respond(w, cfg, err)
}

func (h *SettingsHandler) ConnectWhatsApp(w http.ResponseWriter, r *http.Request) {
	var input usecase.WhatsAppConnectInput
	if !decodeJSON(w, r, &input) {
		return
	}
	cfg, err := h.Settings.ConnectWhatsApp(r.Context(), input)
	respond(w, cfg, err)
}

func (h *SettingsHandler) DisconnectWhatsApp(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Settings.DisconnectWhatsApp(r.Context())
	respond(w, cfg, err)
}

// Catalog (GET /catalog)
func (h *SettingsHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Settings.ProductCatalog())
}
