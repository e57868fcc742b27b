// Package store owns the canonical in-memory collections (sales, operators,
// agents, payment methods, remote config) and writes every mutation through
// to the local durable blob storage. When a remote mirror is configured the
// store also hands mutations to the sync adapter; the local write is
// synchronous and never rolled back on a remote failure.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/localstore"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/scope"
)

// Persister is the durable local storage: independently keyed JSON blobs.
type Persister interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Put(ctx context.Context, key string, v any) error
}

// Syncer is the optional remote mirror. All methods must be safe to call in
// local-only mode; pushes are fire-and-forget.
type Syncer interface {
	Start(cfg model.ConfigRemota) error
	Stop()
	Upsert(v model.Vendita)
	Delete(id string)
}

// Store is the single source of truth for a running session.
type Store struct {
	mu      sync.RWMutex
	persist Persister
	syncer  Syncer

	vendite      []model.Vendita
	operatori    []model.Operatore
	agenti       []model.Agente
	metodi       []string
	configRemota *model.ConfigRemota
}

func New(persist Persister) *Store {
	return &Store{persist: persist}
}

// SetSyncer attaches the remote adapter. Called once at wiring time, before
// Load; nil leaves the store permanently local-only.
func (s *Store) SetSyncer(sy Syncer) { s.syncer = sy }

// Load hydrates every collection from local storage, seeding the fixed demo
// dataset for any blob that has never been written. The protected
// administrator account is guaranteed to exist afterwards. If a remote config
// is present the sync adapter is started; a failure there degrades to
// local-only mode instead of failing the load.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()

	trovato, err := s.persist.Get(ctx, localstore.KeyOperatori, &s.operatori)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if !trovato {
		s.operatori = seedOperatori()
		if err := s.persist.Put(ctx, localstore.KeyOperatori, s.operatori); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if !haAmministratore(s.operatori) {
		s.operatori = append([]model.Operatore{seedAmministratore()}, s.operatori...)
		if err := s.persist.Put(ctx, localstore.KeyOperatori, s.operatori); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	if trovato, err = s.persist.Get(ctx, localstore.KeyAgenti, &s.agenti); err != nil {
		s.mu.Unlock()
		return err
	} else if !trovato {
		s.agenti = seedAgenti()
		if err := s.persist.Put(ctx, localstore.KeyAgenti, s.agenti); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	if trovato, err = s.persist.Get(ctx, localstore.KeyMetodi, &s.metodi); err != nil {
		s.mu.Unlock()
		return err
	} else if !trovato {
		s.metodi = seedMetodi()
		if err := s.persist.Put(ctx, localstore.KeyMetodi, s.metodi); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	if _, err = s.persist.Get(ctx, localstore.KeyConfigRemota, &s.configRemota); err != nil {
		s.mu.Unlock()
		return err
	}

	if _, err = s.persist.Get(ctx, localstore.KeyVendite, &s.vendite); err != nil {
		s.mu.Unlock()
		return err
	}

	cfg := s.configRemota
	s.mu.Unlock()

	if cfg != nil && cfg.Attiva() && s.syncer != nil {
		if err := s.syncer.Start(*cfg); err != nil {
			log.Warn().Err(err).Msg("mirror remoto non disponibile, si procede in modalità locale")
		}
	}
	return nil
}

// ReplaceVendite swaps in the full remote snapshot and refreshes the local
// cache blob. Called by the sync adapter after every fetch.
func (s *Store) ReplaceVendite(vendite []model.Vendita) {
	s.mu.Lock()
	s.vendite = vendite
	s.mu.Unlock()
	if err := s.persist.Put(context.Background(), localstore.KeyVendite, vendite); err != nil {
		log.Error().Err(err).Msg("scrittura cache vendite fallita")
	}
}

// ── Read access ───────────────────────────────────────────────────────────────

// Vendite returns the sales visible to attore, most recent first.
func (s *Store) Vendite(attore model.Attore) []model.Vendita {
	s.mu.RLock()
	tutte := make([]model.Vendita, len(s.vendite))
	copy(tutte, s.vendite)
	s.mu.RUnlock()
	return scope.Vendite(tutte, attore)
}

// Agenti returns the agents visible to attore.
func (s *Store) Agenti(attore model.Attore) []model.Agente {
	s.mu.RLock()
	tutti := make([]model.Agente, len(s.agenti))
	copy(tutti, s.agenti)
	s.mu.RUnlock()
	return scope.Agenti(tutti, attore)
}

// Operatori returns the full operator directory (admin surface).
func (s *Store) Operatori() []model.Operatore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Operatore, len(s.operatori))
	copy(out, s.operatori)
	return out
}

// Metodi returns the configured payment methods in order.
func (s *Store) Metodi() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.metodi))
	copy(out, s.metodi)
	return out
}

// ConfigRemota returns the current remote connection config, nil when
// local-only.
func (s *Store) ConfigRemota() *model.ConfigRemota {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.configRemota == nil {
		return nil
	}
	cfg := *s.configRemota
	return &cfg
}

// FindOperatorePerEmail looks up an operator by email, case-insensitively.
func (s *Store) FindOperatorePerEmail(email string) (model.Operatore, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, op := range s.operatori {
		if strings.EqualFold(op.Email, email) {
			return op, true
		}
	}
	return model.Operatore{}, false
}

func haAmministratore(operatori []model.Operatore) bool {
	for _, op := range operatori {
		if op.Ruolo == model.RuoloAdmin {
			return true
		}
	}
	return false
}
