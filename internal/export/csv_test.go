package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

func venditeDemo() []model.Vendita {
	return []model.Vendita{
		{
			ID: "v1", Data: "2026-08-30", Cliente: "Rossi", Importo: decimal.NewFromFloat(500.50),
			MetodoPagamento: "Contanti", Sconto: "10%", Agente: "Roberto Rossi",
			OperatoreEmail: "agente1@example.com", Incassata: true, Note: "Incasso confermato",
		},
		{
			ID: "v2", Data: "2026-08-29", Cliente: "Bianchi; figli", Importo: decimal.NewFromInt(300),
			MetodoPagamento: "Bonifico", Agente: "Maria Bianchi",
			OperatoreEmail: "agente2@example.com",
		},
	}
}

func TestScriviCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ScriviCSV(&buf, venditeDemo()))

	righe := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, righe, 3)
	assert.Equal(t, "id;data;cliente;importo;metodoPagamento;sconto;agente;operatoreEmail;incassata;note", righe[0])
	assert.Contains(t, righe[1], "500.5")
	// Field containing the delimiter must be quoted
	assert.Contains(t, righe[2], `"Bianchi; figli"`)
}

func TestRoundTripCSV(t *testing.T) {
	var buf bytes.Buffer
	originali := venditeDemo()
	require.NoError(t, ScriviCSV(&buf, originali))

	lette, err := LeggiCSV(&buf)
	require.NoError(t, err)
	require.Len(t, lette, 2)
	assert.Equal(t, originali[0].ID, lette[0].ID)
	assert.Equal(t, originali[0].Cliente, lette[0].Cliente)
	assert.True(t, originali[0].Importo.Equal(lette[0].Importo))
	assert.Equal(t, originali[0].Incassata, lette[0].Incassata)
	assert.Equal(t, originali[1].Cliente, lette[1].Cliente)
}

func TestLeggiCSV_IntestazioneErrata(t *testing.T) {
	_, err := LeggiCSV(strings.NewReader("id;cliente;importo\nv1;Rossi;100\n"))
	assert.Error(t, err)
}

func TestLeggiCSV_ImportoNonValido(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ScriviCSV(&buf, nil))
	riga := strings.TrimSpace(buf.String()) + "\nv1;2026-08-30;Rossi;tanto;Contanti;;Roberto Rossi;agente1@example.com;false;\n"
	_, err := LeggiCSV(strings.NewReader(riga))
	assert.ErrorContains(t, err, "importo")
}
