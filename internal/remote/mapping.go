package remote

import (
	"github.com/shopspring/decimal"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

// venditaRemota is the row shape of the remote "vendite" table. The table is
// consumed, not owned: columns are snake_case and amounts are numeric, so the
// mapping to the local camelCase model is spelled out field by field.
type venditaRemota struct {
	ID                 string          `gorm:"column:id;primaryKey"`
	Data               string          `gorm:"column:data"`
	Cliente            string          `gorm:"column:cliente"`
	Importo            decimal.Decimal `gorm:"column:importo;type:numeric"`
	MetodoPagamento    string          `gorm:"column:metodo_pagamento"`
	Sconto             string          `gorm:"column:sconto"`
	Agente             string          `gorm:"column:agente"`
	OperatoreEmail     string          `gorm:"column:operatore_email"`
	Incassata          bool            `gorm:"column:incassata"`
	NoteAmministrative string          `gorm:"column:note_amministrative"`
}

func (venditaRemota) TableName() string { return "vendite" }

func versoRemota(v model.Vendita) venditaRemota {
	return venditaRemota{
		ID:                 v.ID,
		Data:               v.Data,
		Cliente:            v.Cliente,
		Importo:            v.Importo,
		MetodoPagamento:    v.MetodoPagamento,
		Sconto:             v.Sconto,
		Agente:             v.Agente,
		OperatoreEmail:     v.OperatoreEmail,
		Incassata:          v.Incassata,
		NoteAmministrative: v.Note,
	}
}

func versoLocale(r venditaRemota) model.Vendita {
	return model.Vendita{
		ID:              r.ID,
		Data:            r.Data,
		Cliente:         r.Cliente,
		Importo:         r.Importo,
		MetodoPagamento: r.MetodoPagamento,
		Sconto:          r.Sconto,
		Agente:          r.Agente,
		OperatoreEmail:  r.OperatoreEmail,
		Incassata:       r.Incassata,
		Note:            r.NoteAmministrative,
	}
}
