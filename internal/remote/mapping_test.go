package remote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

func TestMappaturaVendita(t *testing.T) {
	locale := model.Vendita{
		ID: "v1", Data: "2026-08-30", Cliente: "Rossi", Importo: decimal.NewFromFloat(500.50),
		MetodoPagamento: "Contanti", Sconto: "10%", Agente: "Roberto Rossi",
		OperatoreEmail: "agente1@example.com", Incassata: true, Note: "Incasso confermato",
	}

	remota := versoRemota(locale)
	assert.Equal(t, locale.Note, remota.NoteAmministrative)
	assert.Equal(t, locale.OperatoreEmail, remota.OperatoreEmail)
	assert.True(t, locale.Importo.Equal(remota.Importo))

	// Row shape targets the remote snake_case columns
	assert.Equal(t, "vendite", venditaRemota{}.TableName())

	ritorno := versoLocale(remota)
	assert.Equal(t, locale, ritorno)
}

func TestCostruisciDSN(t *testing.T) {
	dsn, err := costruisciDSN(model.ConfigRemota{
		EndpointURL: "postgres://app@db.example.com:5432/vendite?sslmode=require",
		AccessKey:   "chiave-segreta",
	})
	require.NoError(t, err)
	assert.Contains(t, dsn, "app:chiave-segreta@db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestCostruisciDSN_EndpointNonValido(t *testing.T) {
	_, err := costruisciDSN(model.ConfigRemota{EndpointURL: "https://db.example.com", AccessKey: "k"})
	assert.Error(t, err)

	_, err = costruisciDSN(model.ConfigRemota{EndpointURL: "://senza-schema", AccessKey: "k"})
	assert.Error(t, err)
}

func TestStart_EndpointNonValido(t *testing.T) {
	a := NewAdapter("", func([]model.Vendita) {})
	require.Equal(t, StatoNessuno, a.Status())

	err := a.Start(model.ConfigRemota{EndpointURL: "https://db.example.com", AccessKey: "k"})
	assert.Error(t, err)
	// Configuration errors resolve to status error; the system continues
	// in local-only mode and local pushes stay no-ops.
	assert.Equal(t, StatoErrore, a.Status())
	a.Upsert(model.Vendita{ID: "v1"})
	a.Delete("v1")
	assert.Empty(t, a.Notifiche())
}

func TestNotifiche_DrainSvuota(t *testing.T) {
	n := &Notifiche{}
	n.Add("Salvataggio remoto non riuscito")
	n.Add("Sincronizzazione non riuscita")

	prime := n.Drain()
	require.Len(t, prime, 2)
	assert.Equal(t, "Salvataggio remoto non riuscito", prime[0].Messaggio)

	// Draining dismisses: nothing left on the second read
	assert.Empty(t, n.Drain())
}
