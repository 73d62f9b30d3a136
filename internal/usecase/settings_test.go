package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/infra/database"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

func newSettings() (*usecase.SettingsUseCase, *database.SettingsRepository) {
	repo := newSettingsRepo()
	return usecase.NewSettingsUseCase(repo, database.SeedCatalog(), fixedClock(), zap.NewNop()), repo
}

func TestSaveGoalKeepsIdentity(t *testing.T) {
	uc, _ := newSettings()
	ctx := context.Background()

	saved, err := uc.SaveGoal(ctx, entity.Goal{
		ID:               "outro",
		LeadsFriosMeta:   600,
		LeadsQuentesMeta: 250,
		ConversasMeta:    350,
		PeriodoInicio:    time.Date(2024, 9, 1, 0, 0, 0, 0, brt),
		PeriodoFim:       time.Date(2024, 9, 30, 0, 0, 0, 0, brt),
	})
	require.NoError(t, err)
	assert.Equal(t, "1", saved.ID)
	assert.Equal(t, "1", saved.CompanyID)

	goal, err := uc.Goal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 600, goal.LeadsFriosMeta)
}

func TestSaveGoalValidation(t *testing.T) {
	uc, _ := newSettings()

	_, err := uc.SaveGoal(context.Background(), entity.Goal{
		LeadsFriosMeta: -1,
		PeriodoInicio:  time.Date(2024, 9, 30, 0, 0, 0, 0, brt),
		PeriodoFim:     time.Date(2024, 9, 1, 0, 0, 0, 0, brt),
	})

	var de *usecase.DomainError
	require.ErrorAs(t, err, &de)
	assert.Len(t, de.Fields, 2)
}

func TestSaveCompany(t *testing.T) {
	uc, _ := newSettings()
	ctx := context.Background()

	company, err := uc.Company(ctx)
	require.NoError(t, err)
	company.Nome = "SOLUV.IA Store Centro"

	saved, err := uc.SaveCompany(ctx, company)
	require.NoError(t, err)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.Equal(t, "SOLUV.IA Store Centro", saved.Nome)

	company.CNPJ = "12.345"
	_, err = uc.SaveCompany(ctx, company)
	var de *usecase.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "cnpj", de.Fields[0].Field)
}

func TestWhatsAppConnectAndDisconnect(t *testing.T) {
	uc, repo := newSettings()
	ctx := context.Background()

	cfg, err := uc.ConnectWhatsApp(ctx, usecase.WhatsAppConnectInput{PhoneNumber: "+5511987654321", APIKey: "wa-secret-1234"})
	require.NoError(t, err)
	assert.Equal(t, entity.WhatsAppConnected, cfg.Status)
	assert.Equal(t, now, cfg.LastSync)
	assert.Equal(t, "**********1234", cfg.APIKey)

	stored, err := repo.WhatsApp(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wa-secret-1234", stored.APIKey)

	cfg, err = uc.DisconnectWhatsApp(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.WhatsAppDisconnected, cfg.Status)
	assert.Empty(t, cfg.APIKey)

	_, err = uc.ConnectWhatsApp(ctx, usecase.WhatsAppConnectInput{PhoneNumber: "123"})
	var de *usecase.DomainError
	require.ErrorAs(t, err, &de)
	assert.Len(t, de.Fields, 2)
}

func TestProductCatalog(t *testing.T) {
	uc, _ := newSettings()

	catalog := uc.ProductCatalog()

	assert.Len(t, catalog.Products, 11)
	assert.Equal(t, "pelicula-de-vidro", catalog.Products[7].Slug)
	assert.Contains(t, catalog.Salespersons, "Maria Santos")
}
