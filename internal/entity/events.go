package entity

import "time"

// SaleClosed é publicado quando um lead é fechado com registro de venda.
type SaleClosed struct {
	LeadID         string    `json:"lead_id"`
	ClientName     string    `json:"client_name"`
	Phone          string    `json:"phone"`
	Produto        string    `json:"produto"`
	Valor          float64   `json:"valor"`
	Vendedor       string    `json:"vendedor"`
	DataFechamento time.Time `json:"data_fechamento"`
}

func NewSaleClosed(lead Lead) (SaleClosed, error) {
	if lead.Status != LeadClosed || lead.SaleInfo == nil {
		return SaleClosed{}, ErrSaleInfoMismatch
	}
	return SaleClosed{
		LeadID:         lead.ID,
		ClientName:     lead.Name,
		Phone:          lead.Phone,
		Produto:        lead.SaleInfo.Produto,
		Valor:          lead.SaleInfo.Valor,
		Vendedor:       lead.SaleInfo.Vendedor,
		DataFechamento: lead.SaleInfo.DataFechamento,
	}, nil
}
