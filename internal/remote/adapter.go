// Package remote mirrors the record store's sales to a remote Postgres table
// and keeps multiple clients consistent through a Redis change feed.
//
// Consistency model: every successful remote write publishes an event on the
// change channel; any event (own or foreign origin, payload ignored) triggers
// a full refetch of the table. Overlapping refetches are not coalesced — the
// later completion wins. Outbound pushes are fire-and-forget: a failed push
// becomes a transient notice and the local write stands.
package remote

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

// Stato of the remote mirror, exposed for display only. Mutations are always
// accepted locally regardless of this value.
type Stato string

const (
	StatoConnesso Stato = "connected"
	StatoErrore   Stato = "error"
	StatoNessuno  Stato = "none"
)

// CanaleVendite is the pub/sub channel carrying change events for the
// remote sales table.
const CanaleVendite = "vendite:changes"

// ReplaceFunc receives the full remote snapshot after each fetch and swaps it
// into the record store.
type ReplaceFunc func(vendite []model.Vendita)

// Adapter bridges the record store and the remote table service.
// A zero config (Stop) leaves it inert; all methods are safe to call in
// local-only mode.
type Adapter struct {
	mu       sync.Mutex
	stato    Stato
	db       *gorm.DB
	rdb      *redis.Client
	cancel   context.CancelFunc
	redisURL string
	replace  ReplaceFunc
	notici   *Notifiche
}

func NewAdapter(redisURL string, replace ReplaceFunc) *Adapter {
	return &Adapter{
		stato:    StatoNessuno,
		redisURL: redisURL,
		replace:  replace,
		notici:   &Notifiche{},
	}
}

// costruisciDSN injects the access key as the credential of the endpoint URL.
// The endpoint must be a postgres:// URL; anything else is a configuration
// error resolved to stato error by Start.
func costruisciDSN(cfg model.ConfigRemota) (string, error) {
	u, err := url.Parse(cfg.EndpointURL)
	if err != nil {
		return "", fmt.Errorf("endpoint non valido: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("endpoint non valido: schema %q", u.Scheme)
	}
	utente := ""
	if u.User != nil {
		utente = u.User.Username()
	}
	u.User = url.UserPassword(utente, cfg.AccessKey)
	return u.String(), nil
}

// Start activates the mirror: connects, performs the initial full fetch and
// subscribes to the change feed. A construction failure marks the status as
// error and the caller proceeds in local-only mode.
func (a *Adapter) Start(cfg model.ConfigRemota) error {
	a.Stop()

	dsn, err := costruisciDSN(cfg)
	if err != nil {
		a.setStato(StatoErrore)
		return err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		a.setStato(StatoErrore)
		return fmt.Errorf("connessione remota: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	a.mu.Lock()
	a.db = db
	a.cancel = cancel
	a.stato = StatoConnesso
	a.mu.Unlock()

	if a.redisURL != "" {
		opts, err := redis.ParseURL(a.redisURL)
		if err != nil {
			log.Warn().Err(err).Msg("canale notifiche non disponibile, aggiornamenti live disattivati")
		} else {
			rdb := redis.NewClient(opts)
			a.mu.Lock()
			a.rdb = rdb
			a.mu.Unlock()
			go a.ascolta(ctx, rdb)
		}
	}

	go a.aggiorna(ctx)
	return nil
}

// Stop cancels the subscription and reverts to inert local-only state.
func (a *Adapter) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
		a.rdb = nil
	}
	a.db = nil
	a.stato = StatoNessuno
}

func (a *Adapter) Status() Stato {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stato
}

func (a *Adapter) setStato(s Stato) {
	a.mu.Lock()
	a.stato = s
	a.mu.Unlock()
}

// Notifiche drains the transient notice buffer.
func (a *Adapter) Notifiche() []Notifica {
	return a.notici.Drain()
}

func (a *Adapter) handle() (*gorm.DB, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db, a.db != nil
}

// aggiorna performs the full fetch-and-replace: select all remote rows
// ordered by date descending, map to the local shape, swap into the store.
func (a *Adapter) aggiorna(ctx context.Context) {
	db, ok := a.handle()
	if !ok {
		return
	}
	var righe []venditaRemota
	if err := db.WithContext(ctx).Order("data DESC").Find(&righe).Error; err != nil {
		a.notici.Add("Sincronizzazione non riuscita: " + err.Error())
		log.Error().Err(err).Msg("lettura tabella remota fallita")
		return
	}
	vendite := make([]model.Vendita, 0, len(righe))
	for _, r := range righe {
		vendite = append(vendite, versoLocale(r))
	}
	a.replace(vendite)
	log.Debug().Int("vendite", len(vendite)).Msg("snapshot remoto applicato")
}

// ascolta consumes the change feed. Any message, of any origin, triggers a
// full refetch; payloads are never inspected. Each notification spawns its
// own refetch — no deduplication.
func (a *Adapter) ascolta(ctx context.Context, rdb *redis.Client) {
	sub := rdb.Subscribe(ctx, CanaleVendite)
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			go a.aggiorna(ctx)
		}
	}
}

func (a *Adapter) pubblica() {
	a.mu.Lock()
	rdb := a.rdb
	a.mu.Unlock()
	if rdb == nil {
		return
	}
	if err := rdb.Publish(context.Background(), CanaleVendite, "changed").Err(); err != nil {
		log.Warn().Err(err).Msg("pubblicazione evento di modifica fallita")
	}
}

// Upsert pushes a sale to the remote table in the background. The local write
// that preceded it is never rolled back on failure.
func (a *Adapter) Upsert(v model.Vendita) {
	db, ok := a.handle()
	if !ok {
		return
	}
	go func() {
		riga := versoRemota(v)
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&riga).Error
		if err != nil {
			a.notici.Add("Salvataggio remoto non riuscito: " + err.Error())
			log.Error().Err(err).Str("vendita", v.ID).Msg("upsert remoto fallito")
			return
		}
		a.pubblica()
	}()
}

// Delete removes a sale from the remote table in the background.
func (a *Adapter) Delete(id string) {
	db, ok := a.handle()
	if !ok {
		return
	}
	go func() {
		if err := db.Delete(&venditaRemota{}, "id = ?", id).Error; err != nil {
			a.notici.Add("Eliminazione remota non riuscita: " + err.Error())
			log.Error().Err(err).Str("vendita", id).Msg("delete remoto fallito")
			return
		}
		a.pubblica()
	}()
}
