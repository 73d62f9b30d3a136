package handlers

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/infra/http/middleware"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

type LeadHandler struct {
	Kanban      *usecase.KanbanUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(kanban *usecase.KanbanUseCase) *LeadHandler {
	return &LeadHandler{
		Kanban:      kanban,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type CreateLeadRequest struct {
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	ContactReason string            `json:"contactReason"`
	Source        entity.LeadSource `json:"source"`
}

type MoveLeadRequest struct {
	From entity.LeadStatus `json:"from,omitempty"`
	To   entity.LeadStatus `json:"to"`
}

// Board (GET /leads?search=&source=)
func (h *LeadHandler) Board(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.Kanban.Board(r.Context(), q.Get("search"), q.Get("source"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Muitas requisições. Tente novamente mais tarde.")
		return
	}

	var req CreateLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.Kanban.CreateLead(r.Context(), req.Name, req.Phone, req.ContactReason, req.Source)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

// Move (POST /leads/{id}/move): 202 quando o fechamento espera a venda.
func (h *LeadHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveLeadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.Kanban.DropLead(r.Context(), usecase.MoveRequest{
		LeadID: chi.URLParam(r, "id"),
		From:   req.From,
		To:     req.To,
	})
	recordMove(req.To, out.Outcome)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if out.Outcome == usecase.MoveSalePending {
		status = http.StatusAccepted
	}
	writeJSON(w, status, out)
}

// recordMove só usa valores conhecidos como label; destino fora da lista vira "invalid".
func recordMove(to entity.LeadStatus, outcome usecase.MoveOutcome) {
	target := string(to)
	if !to.Valid() {
		target = string(usecase.MoveInvalid)
		outcome = usecase.MoveInvalid
	}
	middleware.RecordLeadMove(target, string(outcome))
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.LeadPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	lead, err := h.Kanban.UpdateLead(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContactInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.Kanban.AddContact(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) PendingSale(w http.ResponseWriter, r *http.Request) {
	pending := h.Kanban.PendingSale()
	if pending == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

func (h *LeadHandler) ConfirmSale(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.Kanban.ConfirmSale(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.RecordSaleClosed(lead.SaleInfo.Valor)
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) CancelSale(w http.ResponseWriter, r *http.Request) {
	h.Kanban.CancelSale()
	w.WriteHeader(http.StatusNoContent)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// primeiro da lista é o cliente original
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimiter: janela fixa por IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.cleanup(now)

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

// cleanup roda junto com Allow, sem goroutine própria.
func (rl *RateLimiter) cleanup(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastReset) > rl.window*2 {
			delete(rl.visitors, ip)
		}
	}
}
