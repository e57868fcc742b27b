package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

func TestStatistiche(t *testing.T) {
	st, _, _ := storeCaricato(t)

	require.NoError(t, st.ImportaVendite(context.Background(), admin, []model.Vendita{
		{ID: "v1", Data: "2026-08-01", Cliente: "Rossi", Importo: decimal.NewFromInt(500),
			MetodoPagamento: "Contanti", Agente: "Roberto Rossi", OperatoreEmail: "agente1@example.com", Incassata: true},
		{ID: "v2", Data: "2026-08-02", Cliente: "Bianchi", Importo: decimal.NewFromInt(300),
			MetodoPagamento: "Bonifico", Agente: "Roberto Rossi", OperatoreEmail: "agente1@example.com"},
		{ID: "v3", Data: "2026-08-03", Cliente: "Verdi", Importo: decimal.NewFromInt(200),
			MetodoPagamento: "Contanti", Agente: "Maria Bianchi", OperatoreEmail: "agente2@example.com"},
	}))

	// Admin: everything
	tot := st.Statistiche(admin)
	assert.Equal(t, 3, tot.NumeroVendite)
	assert.Equal(t, 1, tot.NumeroIncassate)
	assert.True(t, decimal.NewFromInt(1000).Equal(tot.TotaleImporto))
	assert.True(t, decimal.NewFromInt(500).Equal(tot.TotaleIncassato))
	assert.True(t, decimal.NewFromInt(500).Equal(tot.TotaleDaIncassare))
	assert.True(t, decimal.NewFromInt(700).Equal(tot.PerMetodo["Contanti"]))
	assert.True(t, decimal.NewFromInt(800).Equal(tot.PerAgente["Roberto Rossi"]))

	// Operator: own scope only
	mie := st.Statistiche(agente1)
	assert.Equal(t, 2, mie.NumeroVendite)
	assert.True(t, decimal.NewFromInt(800).Equal(mie.TotaleImporto))
	_, ok := mie.PerAgente["Maria Bianchi"]
	assert.False(t, ok)
}

func TestImportaVendite_NonAdminNoOp(t *testing.T) {
	st, _, _ := storeCaricato(t)
	creaVenditaDemo(t, st, agente1)

	require.NoError(t, st.ImportaVendite(context.Background(), agente1, []model.Vendita{
		{ID: "intruso", Cliente: "X", Importo: decimal.NewFromInt(1)},
	}))
	vendite := st.Vendite(admin)
	require.Len(t, vendite, 1)
	assert.NotEqual(t, "intruso", vendite[0].ID)
}
