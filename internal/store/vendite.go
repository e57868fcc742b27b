package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/localstore"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

var ErrVenditaNonTrovata = errors.New("vendita non trovata")

// NuovaVendita carries the operator-supplied fields of a new sale. Everything
// else (id, date, owner, collected flag, notes) is stamped by the store.
type NuovaVendita struct {
	Cliente         string
	Importo         decimal.Decimal
	MetodoPagamento string
	Sconto          string
	Agente          string
}

// ModificaVendita is a partial update; nil fields are left untouched.
// Date and owning operator are immutable and deliberately absent, and the
// collected flag only moves through MarcaIncassata.
type ModificaVendita struct {
	Cliente         *string
	Importo         *decimal.Decimal
	MetodoPagamento *string
	Sconto          *string
	Agente          *string
	Note            *string
}

func validaNuova(n NuovaVendita, metodi []string) error {
	if strings.TrimSpace(n.Cliente) == "" {
		return errors.New("cliente obbligatorio")
	}
	if !n.Importo.IsPositive() {
		return errors.New("importo deve essere maggiore di zero")
	}
	if strings.TrimSpace(n.Agente) == "" {
		return errors.New("agente obbligatorio")
	}
	if strings.TrimSpace(n.MetodoPagamento) == "" {
		return errors.New("metodo di pagamento obbligatorio")
	}
	if !contiene(metodi, n.MetodoPagamento) {
		return fmt.Errorf("metodo di pagamento %q non configurato", n.MetodoPagamento)
	}
	return nil
}

func contiene(metodi []string, m string) bool {
	for _, x := range metodi {
		if x == m {
			return true
		}
	}
	return false
}

// CreaVendita validates and registers a new sale: generated id, today's date,
// the acting operator as owner, collected=false, empty notes. The sale is
// prepended (most recent first), persisted locally, and pushed to the remote
// mirror when one is active. Rejected input creates no partial state.
func (s *Store) CreaVendita(ctx context.Context, attore model.Attore, n NuovaVendita) (model.Vendita, error) {
	s.mu.Lock()
	if err := validaNuova(n, s.metodi); err != nil {
		s.mu.Unlock()
		return model.Vendita{}, err
	}
	v := model.Vendita{
		ID:              uuid.NewString(),
		Data:            time.Now().Format("2006-01-02"),
		Cliente:         strings.TrimSpace(n.Cliente),
		Importo:         n.Importo,
		MetodoPagamento: n.MetodoPagamento,
		Sconto:          n.Sconto,
		Agente:          strings.TrimSpace(n.Agente),
		OperatoreEmail:  attore.Email,
		Incassata:       false,
		Note:            "",
	}
	s.vendite = append([]model.Vendita{v}, s.vendite...)
	err := s.persist.Put(ctx, localstore.KeyVendite, s.vendite)
	s.mu.Unlock()
	if err != nil {
		return model.Vendita{}, err
	}
	if s.syncer != nil {
		s.syncer.Upsert(v)
	}
	return v, nil
}

// AggiornaVendita merges a partial edit into an existing sale. Administrator
// only: for any other actor the store is left untouched and no error is
// surfaced, per the authorization contract.
func (s *Store) AggiornaVendita(ctx context.Context, attore model.Attore, id string, m ModificaVendita) (model.Vendita, error) {
	s.mu.Lock()
	i := s.indiceVendita(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Vendita{}, ErrVenditaNonTrovata
	}
	if !attore.IsAdmin() {
		v := s.vendite[i]
		s.mu.Unlock()
		return v, nil
	}

	v := s.vendite[i]
	if m.Cliente != nil {
		v.Cliente = *m.Cliente
	}
	if m.Importo != nil {
		if !m.Importo.IsPositive() {
			s.mu.Unlock()
			return model.Vendita{}, errors.New("importo deve essere maggiore di zero")
		}
		v.Importo = *m.Importo
	}
	if m.MetodoPagamento != nil {
		if !contiene(s.metodi, *m.MetodoPagamento) {
			s.mu.Unlock()
			return model.Vendita{}, fmt.Errorf("metodo di pagamento %q non configurato", *m.MetodoPagamento)
		}
		v.MetodoPagamento = *m.MetodoPagamento
	}
	if m.Sconto != nil {
		v.Sconto = *m.Sconto
	}
	if m.Agente != nil {
		v.Agente = *m.Agente
	}
	if m.Note != nil {
		v.Note = *m.Note
	}

	s.vendite[i] = v
	err := s.persist.Put(ctx, localstore.KeyVendite, s.vendite)
	s.mu.Unlock()
	if err != nil {
		return model.Vendita{}, err
	}
	if s.syncer != nil {
		s.syncer.Upsert(v)
	}
	return v, nil
}

// EliminaVendita removes a sale. Administrator only; any other actor is a
// silent no-op.
func (s *Store) EliminaVendita(ctx context.Context, attore model.Attore, id string) error {
	if !attore.IsAdmin() {
		return nil
	}
	s.mu.Lock()
	i := s.indiceVendita(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrVenditaNonTrovata
	}
	s.vendite = append(s.vendite[:i], s.vendite[i+1:]...)
	err := s.persist.Put(ctx, localstore.KeyVendite, s.vendite)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if s.syncer != nil {
		s.syncer.Delete(id)
	}
	return nil
}

// MarcaIncassata flips a sale to collected. Administrator only (silent no-op
// otherwise) and idempotent: a sale already collected is returned unchanged.
// Empty notes default to the fixed acknowledgment marker. Collected is a
// terminal state — nothing moves a sale back to pending.
func (s *Store) MarcaIncassata(ctx context.Context, attore model.Attore, id string) (model.Vendita, error) {
	s.mu.Lock()
	i := s.indiceVendita(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Vendita{}, ErrVenditaNonTrovata
	}
	v := s.vendite[i]
	if !attore.IsAdmin() || v.Incassata {
		s.mu.Unlock()
		return v, nil
	}
	v.Incassata = true
	if v.Note == "" {
		v.Note = model.NoteIncassoConfermato
	}
	s.vendite[i] = v
	err := s.persist.Put(ctx, localstore.KeyVendite, s.vendite)
	s.mu.Unlock()
	if err != nil {
		return model.Vendita{}, err
	}
	if s.syncer != nil {
		s.syncer.Upsert(v)
	}
	return v, nil
}

// ImportaVendite replaces the whole sales collection (bulk overwrite import).
// Administrator only; silent no-op otherwise. Each imported sale is pushed to
// the remote mirror when one is active.
func (s *Store) ImportaVendite(ctx context.Context, attore model.Attore, vendite []model.Vendita) error {
	if !attore.IsAdmin() {
		return nil
	}
	s.mu.Lock()
	for i := range vendite {
		if vendite[i].ID == "" {
			vendite[i].ID = uuid.NewString()
		}
	}
	s.vendite = vendite
	err := s.persist.Put(ctx, localstore.KeyVendite, s.vendite)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if s.syncer != nil {
		for _, v := range vendite {
			s.syncer.Upsert(v)
		}
	}
	return nil
}

// caller must hold s.mu
func (s *Store) indiceVendita(id string) int {
	for i, v := range s.vendite {
		if v.ID == id {
			return i
		}
	}
	return -1
}
