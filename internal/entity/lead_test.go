package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/soluvia-crm/internal/entity"
)

func hotLead() entity.Lead {
	return entity.Lead{
		ID:          "3",
		Name:        "Pedro Costa",
		Phone:       "(11) 97777-9012",
		Source:      entity.SourceInstagram,
		Status:      entity.LeadHot,
		LastContact: now.Add(-time.Hour),
		History: []entity.ContactHistory{
			{ID: "4", Date: now.Add(-time.Hour), Type: entity.ContactCall, Description: "Negociação da troca"},
		},
	}
}

func TestNewLeadStartsCold(t *testing.T) {
	lead, err := entity.NewLead("Ana Oliveira", "(11) 96666-3456", "Fone Bluetooth", entity.SourceWhatsApp, now)
	require.NoError(t, err)

	assert.Equal(t, entity.LeadCold, lead.Status)
	assert.Nil(t, lead.SaleInfo)
	assert.NotEmpty(t, lead.ID)
}

func TestNewLeadValidation(t *testing.T) {
	_, err := entity.NewLead("", "(11) 96666-3456", "", entity.SourceWhatsApp, now)
	assert.Error(t, err)

	_, err = entity.NewLead("Ana", "(11) 96666-3456", "", entity.LeadSource("Site"), now)
	assert.Error(t, err)
}

func TestCloseAttachesSale(t *testing.T) {
	lead := hotLead()

	closed := lead.Close(entity.SaleInfo{Produto: "iPhone 15", Valor: 3200, Vendedor: "Ana"}, now)

	assert.Equal(t, entity.LeadClosed, closed.Status)
	require.NotNil(t, closed.SaleInfo)
	assert.Equal(t, now, closed.SaleInfo.DataFechamento)
	assert.True(t, closed.Consistent())

	assert.Equal(t, entity.LeadHot, lead.Status, "original intacto")
	assert.Nil(t, lead.SaleInfo)
}

func TestWithStatusRefusesClosed(t *testing.T) {
	_, err := hotLead().WithStatus(entity.LeadClosed)
	assert.ErrorIs(t, err, entity.ErrSaleRequired)

	_, err = hotLead().WithStatus(entity.LeadStatus("won"))
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
}

func TestLeavingClosedClearsSale(t *testing.T) {
	closed := hotLead().Close(entity.SaleInfo{Produto: "iPhone 15", Valor: 3200, Vendedor: "Ana"}, now)

	reopened, err := closed.WithStatus(entity.LeadHot)
	require.NoError(t, err)

	assert.Nil(t, reopened.SaleInfo)
	assert.True(t, reopened.Consistent())
	assert.NotNil(t, closed.SaleInfo)
}

func TestConsistent(t *testing.T) {
	lead := hotLead()
	assert.True(t, lead.Consistent())

	lead.Status = entity.LeadClosed
	assert.False(t, lead.Consistent())
	assert.ErrorIs(t, lead.Validate(), entity.ErrSaleInfoMismatch)
}

func TestAppendHistoryPrependsAndBumpsLastContact(t *testing.T) {
	lead := hotLead()
	entry := entity.ContactHistory{ID: "9", Date: now, Type: entity.ContactMessage, Description: "Confirmou retirada"}

	updated := lead.AppendHistory(entry)

	require.Len(t, updated.History, 2)
	assert.Equal(t, "9", updated.History[0].ID)
	assert.Equal(t, now, updated.LastContact)
	assert.Len(t, lead.History, 1)
}

func TestApplyPatch(t *testing.T) {
	name := "Pedro H. Costa"
	reason := "Troca iPhone 13"
	updated := hotLead().Apply(entity.LeadPatch{Name: &name, ContactReason: &reason})

	assert.Equal(t, name, updated.Name)
	assert.Equal(t, reason, updated.ContactReason)
	assert.Equal(t, entity.LeadHot, updated.Status)
}
