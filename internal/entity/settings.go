package entity

import (
	"context"
	"time"
)

type Goal struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	LeadsFriosMeta   int       `json:"leads_frios_meta"`
	LeadsQuentesMeta int       `json:"leads_quentes_meta"`
	ConversasMeta    int       `json:"conversas_meta"`
	PeriodoInicio    time.Time `json:"periodo_inicio"`
	PeriodoFim       time.Time `json:"periodo_fim"`
	CreatedAt        time.Time `json:"created_at"`
}

type CompanySettings struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Endereco  string    `json:"endereco"`
	Telefone  string    `json:"telefone"`
	Email     string    `json:"email"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WhatsAppStatus string

const (
	WhatsAppConnected    WhatsAppStatus = "connected"
	WhatsAppDisconnected WhatsAppStatus = "disconnected"
)

type WhatsAppConfig struct {
	ID          string         `json:"id"`
	CompanyID   string         `json:"company_id"`
	PhoneNumber string         `json:"phone_number"`
	APIKey      string         `json:"api_key"`
	Status      WhatsAppStatus `json:"status"`
	LastSync    time.Time      `json:"last_sync"`
}

type SettingsRepositoryInterface interface {
	Goal(ctx context.Context) (Goal, error)
	SaveGoal(ctx context.Context, g Goal) error
	Company(ctx context.Context) (CompanySettings, error)
	SaveCompany(ctx context.Context, c CompanySettings) error
	WhatsApp(ctx context.Context) (WhatsAppConfig, error)
	SaveWhatsApp(ctx context.Context, w WhatsAppConfig) error
}
