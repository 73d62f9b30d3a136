package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

const clientsSheet = "Clientes"

var clientHeader = []interface{}{
	"Nome", "Email", "Telefone", "Status", "Origem", "Cliente desde", "Último contato", "Total em compras (R$)", "Observações",
}

var statusLabel = map[entity.ClientStatus]string{
	entity.ClientLead:     "Lead",
	entity.ClientActive:   "Ativo",
	entity.ClientInactive: "Inativo",
}

// XLSXExporter gera a planilha de clientes selecionados.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ExportClients(clients []entity.Client) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", clientsSheet); err != nil {
		return nil, err
	}

	if err := wb.SetSheetRow(clientsSheet, "A1", &clientHeader); err != nil {
		return nil, err
	}
	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := wb.SetCellStyle(clientsSheet, "A1", "I1", bold); err != nil {
		return nil, err
	}

	for i, c := range clients {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			c.Name,
			c.Email,
			c.Phone,
			statusLabel[c.Status],
			string(c.Source),
			c.CreatedAt.Format("02/01/2006"),
			c.LastContact.Format("02/01/2006"),
			c.TotalPurchases,
			c.Notes,
		}
		if err := wb.SetSheetRow(clientsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("linha %d: %w", i+2, err)
		}
	}

	if err := wb.SetColWidth(clientsSheet, "A", "I", 22); err != nil {
		return nil, err
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
