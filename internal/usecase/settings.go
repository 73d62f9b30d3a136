package usecase

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

type SettingsUseCase struct {
	mu      sync.Mutex
	Repo    entity.SettingsRepositoryInterface
	Catalog entity.Catalog
	Clock   Clock
	Logger  *zap.Logger
}

func NewSettingsUseCase(repo entity.SettingsRepositoryInterface, catalog entity.Catalog, clock Clock, logger *zap.Logger) *SettingsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsUseCase{Repo: repo, Catalog: catalog, Clock: clock, Logger: logger}
}

func (uc *SettingsUseCase) Goal(ctx context.Context) (entity.Goal, error) {
	g, err := uc.Repo.Goal(ctx)
	if err != nil {
		return entity.Goal{}, storageError(err)
	}
	return g, nil
}

// SaveGoal mantém id, company e createdAt da meta atual.
func (uc *SettingsUseCase) SaveGoal(ctx context.Context, input entity.Goal) (entity.Goal, error) {
	if errs := ValidateGoal(input); len(errs) > 0 {
		return entity.Goal{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.Repo.Goal(ctx)
	if err != nil {
		return entity.Goal{}, storageError(err)
	}
	input.ID = current.ID
	input.CompanyID = current.CompanyID
	input.CreatedAt = current.CreatedAt
	if input.CreatedAt.IsZero() {
		input.CreatedAt = uc.Clock.now()
	}

	if err := uc.Repo.SaveGoal(ctx, input); err != nil {
		return entity.Goal{}, storageError(err)
	}
	uc.Logger.Info("goal updated",
		zap.Int("leads_frios_meta", input.LeadsFriosMeta),
		zap.Int("leads_quentes_meta", input.LeadsQuentesMeta),
		zap.Int("conversas_meta", input.ConversasMeta))
	return input, nil
}

func (uc *SettingsUseCase) Company(ctx context.Context) (entity.CompanySettings, error) {
	c, err := uc.Repo.Company(ctx)
	if err != nil {
		return entity.CompanySettings{}, storageError(err)
	}
	return c, nil
}

func (uc *SettingsUseCase) SaveCompany(ctx context.Context, input entity.CompanySettings) (entity.CompanySettings, error) {
	if errs := ValidateCompany(input); len(errs) > 0 {
		return entity.CompanySettings{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.Repo.Company(ctx)
	if err != nil {
		return entity.CompanySettings{}, storageError(err)
	}
	input.ID = current.ID
	input.CreatedAt = current.CreatedAt
	input.UpdatedAt = uc.Clock.now()

	if err := uc.Repo.SaveCompany(ctx, input); err != nil {
		return entity.CompanySettings{}, storageError(err)
	}
	return input, nil
}

// WhatsApp nunca devolve a api key completa.
func (uc *SettingsUseCase) WhatsApp(ctx context.Context) (entity.WhatsAppConfig, error) {
	w, err := uc.Repo.WhatsApp(ctx)
	if err != nil {
		return entity.WhatsAppConfig{}, storageError(err)
	}
	w.APIKey = maskKey(w.APIKey)
	return w, nil
}

// ConnectWhatsApp só registra a configuração; não há tráfego com a API.
func (uc *SettingsUseCase) ConnectWhatsApp(ctx context.Context, input WhatsAppConnectInput) (entity.WhatsAppConfig, error) {
	if errs := ValidateWhatsAppConnect(input); len(errs) > 0 {
		return entity.WhatsAppConfig{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	w, err := uc.Repo.WhatsApp(ctx)
	if err != nil {
		return entity.WhatsAppConfig{}, storageError(err)
	}
	w.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	w.APIKey = strings.TrimSpace(input.APIKey)
	w.Status = entity.WhatsAppConnected
	w.LastSync = uc.Clock.now()

	if err := uc.Repo.SaveWhatsApp(ctx, w); err != nil {
		return entity.WhatsAppConfig{}, storageError(err)
	}
	uc.Logger.Info("whatsapp connected", zap.String("phone_number", w.PhoneNumber))

	w.APIKey = maskKey(w.APIKey)
	return w, nil
}

func (uc *SettingsUseCase) DisconnectWhatsApp(ctx context.Context) (entity.WhatsAppConfig, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	w, err := uc.Repo.WhatsApp(ctx)
	if err != nil {
		return entity.WhatsAppConfig{}, storageError(err)
	}
	w.Status = entity.WhatsAppDisconnected
	w.APIKey = ""

	if err := uc.Repo.SaveWhatsApp(ctx, w); err != nil {
		return entity.WhatsAppConfig{}, storageError(err)
	}
	uc.Logger.Info("whatsapp disconnected")
	return w, nil
}

// Produtos e vendedores oferecidos no registro de venda.
func (uc *SettingsUseCase) ProductCatalog() entity.Catalog {
	return uc.Catalog
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
