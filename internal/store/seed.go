package store

import "github.com/Lagicart/SalesManager-pro-sub000/internal/model"

// Fixed demo dataset used when the local storage has never been written:
// one protected administrator, two operator accounts, five payment methods,
// two agents. IDs are stable so repeated seeding is deterministic.

func seedAmministratore() model.Operatore {
	return model.Operatore{
		ID:       "op-admin",
		Nome:     "Amministratore",
		Email:    "admin@example.com",
		Password: "admin",
		Ruolo:    model.RuoloAdmin,
		Protetto: true,
	}
}

func seedOperatori() []model.Operatore {
	return []model.Operatore{
		seedAmministratore(),
		{
			ID:       "op-agente1",
			Nome:     "Agente Uno",
			Email:    "agente1@example.com",
			Password: "1234",
			Ruolo:    model.RuoloAgente,
		},
		{
			ID:       "op-agente2",
			Nome:     "Agente Due",
			Email:    "agente2@example.com",
			Password: "1234",
			Ruolo:    model.RuoloAgente,
		},
	}
}

func seedMetodi() []string {
	return []string{"Contanti", "Bonifico", "Assegno", "Carta di Credito", "Finanziamento"}
}

func seedAgenti() []model.Agente {
	return []model.Agente{
		{
			ID:             "ag-rossi",
			Nome:           "Roberto Rossi",
			Email:          "roberto.rossi@example.com",
			OperatoreEmail: "agente1@example.com",
			Telefono:       "333 1111111",
			Zona:           "Nord",
		},
		{
			ID:             "ag-bianchi",
			Nome:           "Maria Bianchi",
			Email:          "maria.bianchi@example.com",
			OperatoreEmail: "agente2@example.com",
			Telefono:       "333 2222222",
			Zona:           "Sud",
		},
	}
}
