package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/infra/http/middleware"
)

type Router struct {
	Leads          *LeadHandler
	Clients        *ClientHandler
	FollowUps      *FollowUpHandler
	Dashboard      *DashboardHandler
	Settings       *SettingsHandler
	Health         *HealthHandler
	AllowedOrigins []string
	Logger         *zap.Logger
}

func (rt Router) Handler() http.Handler {
	logger := rt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "X-Export-Count", "X-Export-Message"},
	}))

	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", rt.Leads.Board)
		r.Post("/", rt.Leads.Create)
		r.Get("/sale", rt.Leads.PendingSale)
		r.Post("/sale", rt.Leads.ConfirmSale)
		r.Delete("/sale", rt.Leads.CancelSale)
		r.Patch("/{id}", rt.Leads.Update)
		r.Post("/{id}/move", rt.Leads.Move)
		r.Post("/{id}/history", rt.Leads.AddContact)
	})

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", rt.Clients.View)
		r.Post("/", rt.Clients.Create)
		r.Patch("/{id}", rt.Clients.Update)
		r.Post("/{id}/history", rt.Clients.AddHistory)
		r.Post("/view/search", rt.Clients.Search)
		r.Post("/view/filter", rt.Clients.Filter)
		r.Post("/view/sort", rt.Clients.Sort)
		r.Post("/view/page", rt.Clients.Page)
		r.Post("/selection/page", rt.Clients.TogglePageSelection)
		r.Post("/selection/{id}", rt.Clients.ToggleSelection)
		r.Post("/bulk/delete", rt.Clients.DeleteSelected)
		r.Post("/bulk/message", rt.Clients.MessageSelected)
		r.Get("/bulk/export", rt.Clients.ExportSelected)
	})

	r.Route("/followups", func(r chi.Router) {
		r.Get("/", rt.FollowUps.Board)
		r.Post("/pre-sale", rt.FollowUps.CreatePreSale)
		r.Post("/pre-sale/{id}/execute", rt.FollowUps.ExecutePreSale)
		r.Post("/post-sale/{id}/complete", rt.FollowUps.CompletePostSale)
	})

	r.Get("/dashboard", rt.Dashboard.Handle)
	r.Get("/catalog", rt.Settings.Catalog)

	r.Route("/settings", func(r chi.Router) {
		r.Get("/goal", rt.Settings.Goal)
		r.Put("/goal", rt.Settings.SaveGoal)
		r.Get("/company", rt.Settings.Company)
		r.Put("/company", rt.Settings.SaveCompany)
		r.Get("/whatsapp", rt.Settings.WhatsApp)
		r.Post("/whatsapp/connect", rt.Settings.ConnectWhatsApp)
		r.Post("/whatsapp/disconnect", rt.Settings.DisconnectWhatsApp)
	})

	return r
}
