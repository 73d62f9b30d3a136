package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/infra/database"
)

func TestLeadRepositoryCopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	repo := database.NewLeadRepository(database.SeedLeads())

	leads, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 6)

	leads[0].Name = "alterado"
	again, _ := repo.All(ctx)
	assert.Equal(t, "João Silva", again[0].Name)

	next := again[:2]
	require.NoError(t, repo.ReplaceAll(ctx, next))
	next[0].Name = "alterado"
	stored, _ := repo.All(ctx)
	assert.Len(t, stored, 2)
	assert.Equal(t, "João Silva", stored[0].Name)
}

func TestRepositoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := database.NewClientRepository(nil).All(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = database.NewLeadRepository(nil).ReplaceAll(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := database.NewSettingsRepository(database.SeedGoal(), database.SeedCompany(), database.SeedWhatsApp())

	wa, err := repo.WhatsApp(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.WhatsAppDisconnected, wa.Status)

	wa.Status = entity.WhatsAppConnected
	require.NoError(t, repo.SaveWhatsApp(ctx, wa))
	got, _ := repo.WhatsApp(ctx)
	assert.Equal(t, entity.WhatsAppConnected, got.Status)
}

func TestSeedTotalsDerivedFromHistory(t *testing.T) {
	for _, c := range database.SeedClients() {
		assert.Equal(t, entity.SumPurchases(c.History), c.TotalPurchases, c.Name)
	}
	assert.Equal(t, 3200.0, database.SeedClients()[0].TotalPurchases)
}
