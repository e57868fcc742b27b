package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

var (
	admin   = model.Attore{Email: "admin@example.com", Ruolo: model.RuoloAdmin}
	viewer  = model.Attore{Email: "agente1@example.com", Ruolo: model.RuoloAgente}
	altro   = model.Attore{Email: "agente2@example.com", Ruolo: model.RuoloAgente}
	vendite = []model.Vendita{
		{ID: "a", OperatoreEmail: "agente1@example.com"},
		{ID: "b", OperatoreEmail: "agente2@example.com"},
		{ID: "c", OperatoreEmail: "agente1@example.com"},
	}
)

func TestVendite_AdminIdentita(t *testing.T) {
	assert.Equal(t, vendite, Vendite(vendite, admin))
}

func TestVendite_ScopoOperatore(t *testing.T) {
	visibili := Vendite(vendite, viewer)

	// Exclusivity: every visible sale is owned by the viewer
	for _, v := range visibili {
		assert.Equal(t, viewer.Email, v.OperatoreEmail)
	}
	// Completeness and order preservation
	require.Len(t, visibili, 2)
	assert.Equal(t, "a", visibili[0].ID)
	assert.Equal(t, "c", visibili[1].ID)

	assert.Len(t, Vendite(vendite, altro), 1)
}

func TestVendite_EmailCaseSensitive(t *testing.T) {
	maiuscolo := model.Attore{Email: "AGENTE1@example.com", Ruolo: model.RuoloAgente}
	// The match is exact on the stored value
	assert.Empty(t, Vendite(vendite, maiuscolo))
}

func TestVendite_Puro(t *testing.T) {
	prima := make([]model.Vendita, len(vendite))
	copy(prima, vendite)
	_ = Vendite(vendite, viewer)
	_ = Vendite(vendite, admin)
	assert.Equal(t, prima, vendite)
}

func TestAgenti_Scopo(t *testing.T) {
	agenti := []model.Agente{
		{ID: "ag1", Nome: "Roberto Rossi", OperatoreEmail: "agente1@example.com"},
		{ID: "ag2", Nome: "Maria Bianchi", OperatoreEmail: "agente2@example.com"},
	}
	assert.Equal(t, agenti, Agenti(agenti, admin))

	visibili := Agenti(agenti, viewer)
	require.Len(t, visibili, 1)
	assert.Equal(t, "Roberto Rossi", visibili[0].Nome)
}
