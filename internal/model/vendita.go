package model

import "github.com/shopspring/decimal"

// NoteIncassoConfermato is the default administrative note written when a
// sale is marked collected with no prior notes.
const NoteIncassoConfermato = "Incasso confermato"

// Vendita is a registered sale. Data and OperatoreEmail are stamped at
// creation and never reassigned. Incassata transitions false→true only.
type Vendita struct {
	ID              string          `json:"id"`
	Data            string          `json:"data"` // ISO day, YYYY-MM-DD
	Cliente         string          `json:"cliente"`
	Importo         decimal.Decimal `json:"importo"`
	MetodoPagamento string          `json:"metodoPagamento"`
	Sconto          string          `json:"sconto,omitempty"`
	Agente          string          `json:"agente"`
	OperatoreEmail  string          `json:"operatoreEmail"`
	Incassata       bool            `json:"incassata"`
	Note            string          `json:"note,omitempty"`
}
