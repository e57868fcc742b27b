package store

import (
	"github.com/shopspring/decimal"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

// Statistiche are the dashboard aggregates, computed over the sales visible
// to the requesting operator.
type Statistiche struct {
	NumeroVendite     int                        `json:"numeroVendite"`
	NumeroIncassate   int                        `json:"numeroIncassate"`
	TotaleImporto     decimal.Decimal            `json:"totaleImporto"`
	TotaleIncassato   decimal.Decimal            `json:"totaleIncassato"`
	TotaleDaIncassare decimal.Decimal            `json:"totaleDaIncassare"`
	PerMetodo         map[string]decimal.Decimal `json:"perMetodo"`
	PerAgente         map[string]decimal.Decimal `json:"perAgente"`
}

// Statistiche aggregates the scope-filtered sale set. Pure read.
func (s *Store) Statistiche(attore model.Attore) Statistiche {
	visibili := s.Vendite(attore)

	st := Statistiche{
		NumeroVendite:     len(visibili),
		TotaleImporto:     decimal.Zero,
		TotaleIncassato:   decimal.Zero,
		TotaleDaIncassare: decimal.Zero,
		PerMetodo:         make(map[string]decimal.Decimal),
		PerAgente:         make(map[string]decimal.Decimal),
	}
	for _, v := range visibili {
		st.TotaleImporto = st.TotaleImporto.Add(v.Importo)
		if v.Incassata {
			st.NumeroIncassate++
			st.TotaleIncassato = st.TotaleIncassato.Add(v.Importo)
		} else {
			st.TotaleDaIncassare = st.TotaleDaIncassare.Add(v.Importo)
		}
		st.PerMetodo[v.MetodoPagamento] = st.PerMetodo[v.MetodoPagamento].Add(v.Importo)
		if v.Agente != "" {
			st.PerAgente[v.Agente] = st.PerAgente[v.Agente].Add(v.Importo)
		}
	}
	return st
}
