package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/soluvia-crm/internal/entity"
)

var now = time.Date(2024, 1, 16, 17, 0, 0, 0, time.UTC)

func TestClassifyThresholds(t *testing.T) {
	c := entity.NewClassifier(0.25)

	tests := []struct {
		name      string
		elapsed   time.Duration
		typ       entity.FollowUpType
		status    entity.FollowUpStatus
		remaining string
	}{
		{"1H recém criado", 10 * time.Minute, entity.FollowUp1H, entity.FollowUpOK, "50 min restantes"},
		{"1H no limite do warning", 45 * time.Minute, entity.FollowUp1H, entity.FollowUpWarning, "15 min restantes"},
		{"1H atrasado", 90 * time.Minute, entity.FollowUp1H, entity.FollowUpOverdue, "30 min atrasado"},
		{"1H vence exatamente agora", time.Hour, entity.FollowUp1H, entity.FollowUpOverdue, "0 min atrasado"},
		{"24H com 6h", 18 * time.Hour, entity.FollowUp24H, entity.FollowUpWarning, "6h restantes"},
		{"24H com 7h", 17 * time.Hour, entity.FollowUp24H, entity.FollowUpOK, "7h restantes"},
		{"48H com 2h", 46 * time.Hour, entity.FollowUp48H, entity.FollowUpWarning, "2h restantes"},
		{"7DAYS com 3 dias", 4 * 24 * time.Hour, entity.FollowUp7Days, entity.FollowUpOK, "3 dias restantes"},
		{"7DAYS com 1 dia", 6 * 24 * time.Hour, entity.FollowUp7Days, entity.FollowUpWarning, "1 dia restante"},
		{"30DAYS atrasado", 31 * 24 * time.Hour, entity.FollowUp30Days, entity.FollowUpOverdue, "1 dia atrasado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, err := c.Classify(now.Add(-tt.elapsed), tt.typ, now)
			require.NoError(t, err)
			assert.Equal(t, tt.status, cl.Status)
			assert.Equal(t, tt.remaining, cl.TimeRemaining)
		})
	}
}

func TestClassifyUnknownType(t *testing.T) {
	_, err := entity.NewClassifier(0).Classify(now, entity.FollowUpType("2H"), now)
	assert.ErrorIs(t, err, entity.ErrInvalidFollowUpType)
}

func TestNewClassifierFallsBackToDefault(t *testing.T) {
	assert.Equal(t, entity.DefaultWarningThreshold, entity.NewClassifier(0).WarningThreshold)
	assert.Equal(t, entity.DefaultWarningThreshold, entity.NewClassifier(1.5).WarningThreshold)
	assert.Equal(t, 0.5, entity.NewClassifier(0.5).WarningThreshold)
}

func TestCompletedPostSaleIsAlwaysOK(t *testing.T) {
	c := entity.NewClassifier(0.25)
	f := entity.PostSaleFollowUp{
		ID:           "3",
		ClientName:   "Lucas Martins",
		PurchaseDate: now.Add(-60 * 24 * time.Hour),
		FollowUpType: entity.FollowUp14Days,
	}

	assert.Equal(t, entity.FollowUpOverdue, f.Refresh(c, now).Status)

	f = f.Complete()
	assert.Equal(t, entity.FollowUpOK, f.Refresh(c, now).Status)
	assert.Equal(t, entity.FollowUpOK, f.Refresh(c, now.Add(365*24*time.Hour)).Status)
}

func TestPreSaleRefresh(t *testing.T) {
	f := entity.PreSaleFollowUp{ID: "1", CreatedAt: now.Add(-90 * time.Minute), FollowUpType: entity.FollowUp1H, Status: entity.FollowUpOK}

	refreshed := f.Refresh(entity.NewClassifier(0.25), now)

	assert.Equal(t, entity.FollowUpOverdue, refreshed.Status)
	assert.Equal(t, "30 min atrasado", refreshed.TimeRemaining)
	assert.Equal(t, entity.FollowUpOK, f.Status, "original intacto")
}

func TestFollowUpTypeGroups(t *testing.T) {
	assert.True(t, entity.FollowUp1H.PreSale())
	assert.False(t, entity.FollowUp1H.PostSale())
	assert.True(t, entity.FollowUp24H.PreSale())
	assert.True(t, entity.FollowUp24H.PostSale())
	assert.True(t, entity.FollowUp30Days.PostSale())
	assert.False(t, entity.FollowUp30Days.PreSale())
}

func TestNewPreSaleFollowUpRejectsPostSaleType(t *testing.T) {
	_, err := entity.NewPreSaleFollowUp("João", "(11) 99999-1234", "iPhone", entity.FollowUp14Days, now)
	assert.ErrorIs(t, err, entity.ErrInvalidFollowUpType)

	f, err := entity.NewPreSaleFollowUp("João", "(11) 99999-1234", "iPhone", entity.FollowUp48H, now)
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, now, f.CreatedAt)
}
