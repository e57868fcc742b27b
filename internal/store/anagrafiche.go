package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/localstore"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

var (
	ErrOperatoreNonTrovato = errors.New("operatore non trovato")
	ErrAgenteNonTrovato    = errors.New("agente non trovato")
	ErrOperatoreProtetto   = errors.New("l'account amministratore protetto non può essere eliminato")
	ErrEmailGiaInUso       = errors.New("email già in uso da un altro operatore")
)

// PutOperatore creates or replaces an operator by id. Administrator only;
// silent no-op otherwise. Emails are unique case-insensitively. Replacing the
// protected account keeps it protected and administrator, whatever the input
// says.
func (s *Store) PutOperatore(ctx context.Context, attore model.Attore, op model.Operatore) (model.Operatore, error) {
	if !attore.IsAdmin() {
		return model.Operatore{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	for _, esistente := range s.operatori {
		if esistente.ID != op.ID && strings.EqualFold(esistente.Email, op.Email) {
			return model.Operatore{}, ErrEmailGiaInUso
		}
	}

	sostituito := false
	for i, esistente := range s.operatori {
		if esistente.ID == op.ID {
			if esistente.Protetto {
				op.Protetto = true
				op.Ruolo = model.RuoloAdmin
			}
			if op.Password == "" {
				op.Password = esistente.Password
			}
			s.operatori[i] = op
			sostituito = true
			break
		}
	}
	if !sostituito {
		s.operatori = append(s.operatori, op)
	}
	if err := s.persist.Put(ctx, localstore.KeyOperatori, s.operatori); err != nil {
		return model.Operatore{}, err
	}
	return op, nil
}

// EliminaOperatore removes an operator. Administrator only (silent no-op
// otherwise). The protected administrator account can never be removed,
// regardless of caller.
func (s *Store) EliminaOperatore(ctx context.Context, attore model.Attore, id string) error {
	if !attore.IsAdmin() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, op := range s.operatori {
		if op.ID != id {
			continue
		}
		if op.Protetto {
			return ErrOperatoreProtetto
		}
		s.operatori = append(s.operatori[:i], s.operatori[i+1:]...)
		return s.persist.Put(ctx, localstore.KeyOperatori, s.operatori)
	}
	return ErrOperatoreNonTrovato
}

// PutAgente creates or replaces an agent by id. Administrator only; silent
// no-op otherwise.
func (s *Store) PutAgente(ctx context.Context, attore model.Attore, a model.Agente) (model.Agente, error) {
	if !attore.IsAdmin() {
		return model.Agente{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	sostituito := false
	for i, esistente := range s.agenti {
		if esistente.ID == a.ID {
			s.agenti[i] = a
			sostituito = true
			break
		}
	}
	if !sostituito {
		s.agenti = append(s.agenti, a)
	}
	if err := s.persist.Put(ctx, localstore.KeyAgenti, s.agenti); err != nil {
		return model.Agente{}, err
	}
	return a, nil
}

// EliminaAgente removes an agent. Administrator only; silent no-op otherwise.
func (s *Store) EliminaAgente(ctx context.Context, attore model.Attore, id string) error {
	if !attore.IsAdmin() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.agenti {
		if a.ID == id {
			s.agenti = append(s.agenti[:i], s.agenti[i+1:]...)
			return s.persist.Put(ctx, localstore.KeyAgenti, s.agenti)
		}
	}
	return ErrAgenteNonTrovato
}

// SetMetodiPagamento replaces the ordered payment method registry.
// Administrator only; silent no-op otherwise. Duplicates collapse, order is
// preserved. Removing a method never invalidates sales already recorded
// against it.
func (s *Store) SetMetodiPagamento(ctx context.Context, attore model.Attore, metodi []string) error {
	if !attore.IsAdmin() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	visti := make(map[string]bool, len(metodi))
	puliti := make([]string, 0, len(metodi))
	for _, m := range metodi {
		m = strings.TrimSpace(m)
		if m == "" || visti[m] {
			continue
		}
		visti[m] = true
		puliti = append(puliti, m)
	}
	s.metodi = puliti
	return s.persist.Put(ctx, localstore.KeyMetodi, s.metodi)
}

// SetConfigRemota stores the remote connection config and (de)activates the
// sync adapter accordingly. Administrator only; silent no-op otherwise.
// nil clears the config and tears the adapter down. A config that fails to
// connect is still stored: the adapter reports status error and the system
// keeps running locally.
func (s *Store) SetConfigRemota(ctx context.Context, attore model.Attore, cfg *model.ConfigRemota) error {
	if !attore.IsAdmin() {
		return nil
	}
	s.mu.Lock()
	s.configRemota = cfg
	err := s.persist.Put(ctx, localstore.KeyConfigRemota, cfg)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if s.syncer == nil {
		return nil
	}
	if cfg == nil || !cfg.Attiva() {
		s.syncer.Stop()
		return nil
	}
	if err := s.syncer.Start(*cfg); err != nil {
		log.Warn().Err(err).Msg("mirror remoto non disponibile, si procede in modalità locale")
	}
	return nil
}
