package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/soluvia-crm/internal/entity"
)

func value(v float64) *float64 { return &v }

func TestNewClient(t *testing.T) {
	c, err := entity.NewClient("Ana Clara Santos", "ana.santos@gmail.com", "(11) 99876-5432",
		entity.ClientActive, entity.ClientSourceWhatsApp, "", now)
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Zero(t, c.TotalPurchases)
	assert.NotNil(t, c.History)

	_, err = entity.NewClient("Ana", "", "(11) 99876-5432", entity.ClientActive, entity.ClientSourceSite, "", now)
	assert.Error(t, err)
}

func TestTotalPurchasesFollowsHistory(t *testing.T) {
	c := entity.Client{ID: "1", Name: "Ana", TotalPurchases: 999}

	c = c.AppendHistory(entity.ClientHistory{ID: "a", Date: now, Type: entity.ClientHistoryPurchase, Value: value(3200)})
	c = c.AppendHistory(entity.ClientHistory{ID: "b", Date: now, Type: entity.ClientHistorySupport})
	c = c.AppendHistory(entity.ClientHistory{ID: "c", Date: now, Type: entity.ClientHistoryPurchase, Value: value(800)})
	assert.Equal(t, 4000.0, c.TotalPurchases)

	history := []entity.ClientHistory{{ID: "x", Type: entity.ClientHistoryPurchase, Value: value(10)}}
	c = c.Apply(entity.ClientPatch{History: &history})
	assert.Equal(t, 10.0, c.TotalPurchases)
}

func TestClientApplyDoesNotShareHistory(t *testing.T) {
	c := entity.Client{ID: "1", History: []entity.ClientHistory{{ID: "a", Type: entity.ClientHistoryPurchase, Value: value(5)}}}
	notes := "cliente VIP"

	updated := c.Apply(entity.ClientPatch{Notes: &notes})
	*updated.History[0].Value = 50

	assert.Equal(t, 5.0, *c.History[0].Value)
	assert.Equal(t, notes, updated.Notes)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pelicula-de-vidro", entity.Slugify("Película de Vidro"))
	assert.Equal(t, "iphone-15-pro-max", entity.Slugify("  iPhone 15 Pro Max "))
}
