package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

func fields(errs []usecase.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateClientInput(t *testing.T) {
	tests := []struct {
		name   string
		input  usecase.ClientInput
		fields []string
	}{
		{"válido", usecase.ClientInput{Name: "Ana", Email: "ana@gmail.com", Phone: "(11) 9"}, []string{}},
		{"vazio", usecase.ClientInput{}, []string{"name", "email", "phone"}},
		{"email sem domínio", usecase.ClientInput{Name: "Ana", Email: "ana@gmail", Phone: "1"}, []string{"email"}},
		{"status desconhecido", usecase.ClientInput{Name: "Ana", Email: "a@b.co", Phone: "1", Status: "vip"}, []string{"status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fields, fields(usecase.ValidateClientInput(tt.input)))
		})
	}
}

func TestValidateSaleInput(t *testing.T) {
	assert.Empty(t, usecase.ValidateSaleInput(usecase.SaleInput{Produto: "iPhone 15", Valor: 3200, Vendedor: "Ana"}))
	assert.Equal(t, []string{"valor"}, fields(usecase.ValidateSaleInput(usecase.SaleInput{Produto: "iPhone 15", Valor: -1, Vendedor: "Ana"})))
}

func TestValidateLeadPatchRejectsBadHistory(t *testing.T) {
	history := []entity.ContactHistory{{ID: "1", Type: entity.ContactType("fax")}}

	errs := usecase.ValidateLeadPatch(entity.LeadPatch{History: &history})

	assert.Equal(t, []string{"history"}, fields(errs))
}

func TestValidateClientPatchHistoryValues(t *testing.T) {
	negative, positive := -5000.0, 120.0
	tests := []struct {
		name   string
		entry  entity.ClientHistory
		fields []string
	}{
		{"compra com valor", entity.ClientHistory{Type: entity.ClientHistoryPurchase, Value: &positive}, []string{}},
		{"compra sem valor", entity.ClientHistory{Type: entity.ClientHistoryPurchase}, []string{}},
		{"compra negativa", entity.ClientHistory{Type: entity.ClientHistoryPurchase, Value: &negative}, []string{"history"}},
		{"valor fora de compra", entity.ClientHistory{Type: entity.ClientHistoryCall, Value: &positive}, []string{"history"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []entity.ClientHistory{tt.entry}
			assert.Equal(t, tt.fields, fields(usecase.ValidateClientPatch(entity.ClientPatch{History: &history})))
		})
	}
}

func TestValidateClientHistoryInput(t *testing.T) {
	negative := -1.0
	assert.Empty(t, usecase.ValidateClientHistoryInput(usecase.ClientHistoryInput{Type: entity.ClientHistoryCall, Description: "Retorno"}))
	assert.Equal(t, []string{"description"}, fields(usecase.ValidateClientHistoryInput(usecase.ClientHistoryInput{Type: entity.ClientHistoryCall})))
	assert.Equal(t, []string{"history"}, fields(usecase.ValidateClientHistoryInput(usecase.ClientHistoryInput{
		Type: entity.ClientHistoryPurchase, Description: "Estorno", Value: &negative,
	})))
}

func TestValidateCompanyCNPJ(t *testing.T) {
	ok := entity.CompanySettings{Nome: "SOLUV.IA", CNPJ: "12.345.678/0001-90"}
	assert.Empty(t, usecase.ValidateCompany(ok))

	ok.CNPJ = ""
	assert.Empty(t, usecase.ValidateCompany(ok), "cnpj é opcional")
}
