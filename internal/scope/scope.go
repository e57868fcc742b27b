// Package scope computes the subset of sales and agents a viewer may see.
// Administrators see every record; everyone else sees only records owned by
// their own email (exact, case-sensitive match on the stored value). The
// filters are pure: they never mutate the input and preserve relative order.
package scope

import "github.com/Lagicart/SalesManager-pro-sub000/internal/model"

// Vendite returns the sales visible to attore.
func Vendite(vendite []model.Vendita, attore model.Attore) []model.Vendita {
	if attore.IsAdmin() {
		return vendite
	}
	visibili := make([]model.Vendita, 0, len(vendite))
	for _, v := range vendite {
		if v.OperatoreEmail == attore.Email {
			visibili = append(visibili, v)
		}
	}
	return visibili
}

// Agenti returns the agents visible to attore.
func Agenti(agenti []model.Agente, attore model.Attore) []model.Agente {
	if attore.IsAdmin() {
		return agenti
	}
	visibili := make([]model.Agente, 0, len(agenti))
	for _, a := range agenti {
		if a.OperatoreEmail == attore.Email {
			visibili = append(visibili, a)
		}
	}
	return visibili
}
