package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/soluvia-crm/internal/infra/database"
	"github.com/xavierca1/soluvia-crm/internal/infra/export"
)

func TestExportClients(t *testing.T) {
	clients := database.SeedClients()[:2]

	data, err := export.NewXLSXExporter().ExportClients(clients)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Clientes")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Nome", rows[0][0])
	assert.Equal(t, "Ana Clara Santos", rows[1][0])
	assert.Equal(t, "ana.santos@gmail.com", rows[1][1])
	assert.Equal(t, "Ativo", rows[1][3])
	assert.Equal(t, "10/01/2024", rows[1][5])
	assert.Equal(t, "3200", rows[1][7])
	assert.Equal(t, "Lead", rows[2][3])
}

func TestExportNoClientsKeepsHeader(t *testing.T) {
	data, err := export.NewXLSXExporter().ExportClients(nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Clientes")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
