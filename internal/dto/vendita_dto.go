package dto

import "github.com/shopspring/decimal"

// CreaVenditaRequest is bound from POST /v1/vendite. The store re-validates
// (including that the method is actually configured); the tags reject the
// obviously malformed before any mutation is attempted.
type CreaVenditaRequest struct {
	Cliente         string          `json:"cliente"         validate:"required"`
	Importo         decimal.Decimal `json:"importo"         validate:"required,gt=0"`
	MetodoPagamento string          `json:"metodoPagamento" validate:"required"`
	Sconto          string          `json:"sconto"`
	Agente          string          `json:"agente"          validate:"required"`
}

// AggiornaVenditaRequest is a partial edit; absent fields stay untouched.
// Date, owner and collected flag are not editable here.
type AggiornaVenditaRequest struct {
	Cliente         *string          `json:"cliente"`
	Importo         *decimal.Decimal `json:"importo"         validate:"omitempty,gt=0"`
	MetodoPagamento *string          `json:"metodoPagamento"`
	Sconto          *string          `json:"sconto"`
	Agente          *string          `json:"agente"`
	Note            *string          `json:"note"`
}
