package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/infra/database"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

func newSettingsRepo() *database.SettingsRepository {
	return database.NewSettingsRepository(database.SeedGoal(), database.SeedCompany(), database.SeedWhatsApp())
}

func TestDashboardStats(t *testing.T) {
	leads := database.SeedLeads()
	leads[2] = leads[2].Close(entity.SaleInfo{Produto: "iPhone 15", Valor: 3200, Vendedor: "Ana"}, now)
	leads[5] = leads[5].Close(entity.SaleInfo{Produto: "Samsung Galaxy S24", Valor: 4100, Vendedor: "Carlos Silva"}, now)
	leads[0] = leads[0].Close(entity.SaleInfo{Produto: "iPhone 15", Valor: 2900, Vendedor: "Ana"}, now)

	uc := usecase.NewDashboardUseCase(database.NewLeadRepository(leads), newSettingsRepo())

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.Cold)
	assert.Equal(t, 2, stats.Talking)
	assert.Equal(t, 0, stats.Hot)
	assert.Equal(t, 3, stats.Closed)
	assert.InDelta(t, 10200.0, stats.Revenue, 0.001)

	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, usecase.ProductSales{Produto: "iPhone 15", Vendas: 2, Receita: 6100}, stats.TopProducts[0])

	assert.InDelta(t, 0.2, stats.GoalProgress.LeadsFrios, 0.0001)
	assert.InDelta(t, 0.0, stats.GoalProgress.LeadsQuentes, 0.0001)
	assert.InDelta(t, 2.0/3.0, stats.GoalProgress.Conversas, 0.0001)

	require.Len(t, stats.RecentActivity, 5)
	assert.Equal(t, "Pedro Costa", stats.RecentActivity[0].LeadName)
	for i := 1; i < len(stats.RecentActivity); i++ {
		assert.False(t, stats.RecentActivity[i].Date.After(stats.RecentActivity[i-1].Date))
	}
}

func TestDashboardGoalProgressIsCapped(t *testing.T) {
	settings := newSettingsRepo()
	goal := database.SeedGoal()
	goal.LeadsFriosMeta = 1
	goal.ConversasMeta = 0
	require.NoError(t, settings.SaveGoal(context.Background(), goal))

	uc := usecase.NewDashboardUseCase(database.NewLeadRepository(database.SeedLeads()), settings)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.GoalProgress.LeadsFrios)
	assert.Equal(t, 0.0, stats.GoalProgress.Conversas)
	assert.Empty(t, stats.TopProducts)
	assert.Zero(t, stats.Revenue)
}
