package entity

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead não encontrado")
	ErrClientNotFound   = errors.New("cliente não encontrado")
	ErrFollowUpNotFound = errors.New("follow-up não encontrado")

	ErrInvalidStatus       = errors.New("status inválido")
	ErrInvalidFollowUpType = errors.New("tipo de follow-up inválido")
	ErrSaleRequired        = errors.New("fechamento exige registro de venda")
	ErrSaleInfoMismatch    = errors.New("saleInfo deve existir somente em leads fechados")
	ErrNoPendingSale       = errors.New("nenhum fechamento pendente")
	ErrEmptySelection      = errors.New("nenhum cliente selecionado")
)
