package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	nonDigit     = regexp.MustCompile(`\D`)
)

func ValidateClientInput(input ClientInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "Nome é obrigatório"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "Email é obrigatório"})
	} else if !emailPattern.MatchString(input.Email) {
		errors = append(errors, ValidationError{"email", "Email inválido"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "Telefone é obrigatório"})
	}
	if input.Status != "" && !input.Status.Valid() {
		errors = append(errors, ValidationError{"status", "status inválido"})
	}
	if input.Source != "" && !input.Source.Valid() {
		errors = append(errors, ValidationError{"source", "origem inválida"})
	}

	return errors
}

// ValidateClientPatch aplica as mesmas regras do formulário aos campos presentes.
func ValidateClientPatch(p entity.ClientPatch) []ValidationError {
	var errors []ValidationError

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errors = append(errors, ValidationError{"name", "Nome é obrigatório"})
	}
	if p.Email != nil && !emailPattern.MatchString(*p.Email) {
		errors = append(errors, ValidationError{"email", "Email inválido"})
	}
	if p.Phone != nil && strings.TrimSpace(*p.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "Telefone é obrigatório"})
	}
	if p.Status != nil && !p.Status.Valid() {
		errors = append(errors, ValidationError{"status", "status inválido"})
	}
	if p.Source != nil && !p.Source.Valid() {
		errors = append(errors, ValidationError{"source", "origem inválida"})
	}
	if p.History != nil {
		for _, h := range *p.History {
			if e, ok := validateClientHistory(h); !ok {
				errors = append(errors, e)
				break
			}
		}
	}

	return errors
}

// validateClientHistory: valor só em compras e nunca negativo, para o total não descer de zero.
func validateClientHistory(h entity.ClientHistory) (ValidationError, bool) {
	switch {
	case !h.Type.Valid():
		return ValidationError{"history", "tipo de histórico inválido"}, false
	case h.Value != nil && h.Type != entity.ClientHistoryPurchase:
		return ValidationError{"history", "valor só é permitido em compras"}, false
	case h.Value != nil && *h.Value < 0:
		return ValidationError{"history", "valor da compra não pode ser negativo"}, false
	}
	return ValidationError{}, true
}

func ValidateClientHistoryInput(input ClientHistoryInput) []ValidationError {
	var errors []ValidationError

	if e, ok := validateClientHistory(entity.ClientHistory{Type: input.Type, Value: input.Value}); !ok {
		errors = append(errors, e)
	}
	if strings.TrimSpace(input.Description) == "" {
		errors = append(errors, ValidationError{"description", "Descrição é obrigatória"})
	}

	return errors
}

func ValidateSaleInput(input SaleInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Produto) == "" {
		errors = append(errors, ValidationError{"produto", "Produto é obrigatório"})
	}
	if input.Valor <= 0 {
		errors = append(errors, ValidationError{"valor", "Valor deve ser maior que zero"})
	}
	if strings.TrimSpace(input.Vendedor) == "" {
		errors = append(errors, ValidationError{"vendedor", "Vendedor é obrigatório"})
	}

	return errors
}

func ValidateLeadPatch(p entity.LeadPatch) []ValidationError {
	var errors []ValidationError

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errors = append(errors, ValidationError{"name", "Nome é obrigatório"})
	}
	if p.Phone != nil && strings.TrimSpace(*p.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "Telefone é obrigatório"})
	}
	if p.Source != nil && !p.Source.Valid() {
		errors = append(errors, ValidationError{"source", "origem inválida"})
	}
	if p.History != nil {
		for _, h := range *p.History {
			if !h.Type.Valid() {
				errors = append(errors, ValidationError{"history", "tipo de contato inválido"})
				break
			}
		}
	}

	return errors
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if !input.Type.Valid() {
		errors = append(errors, ValidationError{"type", "tipo de contato inválido"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errors = append(errors, ValidationError{"description", "Descrição é obrigatória"})
	}

	return errors
}

func ValidatePreSaleInput(input PreSaleInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ClientName) == "" {
		errors = append(errors, ValidationError{"clientName", "Nome é obrigatório"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "Telefone é obrigatório"})
	}
	if !input.FollowUpType.PreSale() {
		errors = append(errors, ValidationError{"followUpType", "deve ser 1H, 24H, 48H ou 7DAYS"})
	}

	return errors
}

func ValidateGoal(g entity.Goal) []ValidationError {
	var errors []ValidationError

	if g.LeadsFriosMeta < 0 {
		errors = append(errors, ValidationError{"leads_frios_meta", "não pode ser negativa"})
	}
	if g.LeadsQuentesMeta < 0 {
		errors = append(errors, ValidationError{"leads_quentes_meta", "não pode ser negativa"})
	}
	if g.ConversasMeta < 0 {
		errors = append(errors, ValidationError{"conversas_meta", "não pode ser negativa"})
	}
	if g.PeriodoInicio.IsZero() || g.PeriodoFim.IsZero() {
		errors = append(errors, ValidationError{"periodo", "início e fim são obrigatórios"})
	} else if g.PeriodoFim.Before(g.PeriodoInicio) {
		errors = append(errors, ValidationError{"periodo_fim", "deve ser posterior ao início"})
	}

	return errors
}

func ValidateCompany(c entity.CompanySettings) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Nome) == "" {
		errors = append(errors, ValidationError{"nome", "Nome da empresa é obrigatório"})
	}
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		errors = append(errors, ValidationError{"email", "Email inválido"})
	}
	if c.CNPJ != "" && !isValidCNPJ(c.CNPJ) {
		errors = append(errors, ValidationError{"cnpj", "CNPJ deve ter 14 dígitos"})
	}

	return errors
}

func ValidateWhatsAppConnect(input WhatsAppConnectInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.PhoneNumber) == "" {
		errors = append(errors, ValidationError{"phone_number", "Número é obrigatório"})
	} else if !isValidPhoneNumber(input.PhoneNumber) {
		errors = append(errors, ValidationError{"phone_number", "número inválido"})
	}
	if strings.TrimSpace(input.APIKey) == "" {
		errors = append(errors, ValidationError{"api_key", "API key é obrigatória"})
	}

	return errors
}

func isValidCNPJ(cnpj string) bool {
	return len(nonDigit.ReplaceAllString(cnpj, "")) == 14
}

// Aceita número local (10-11 dígitos) ou com DDI 55 (12-13).
func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigit.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}
