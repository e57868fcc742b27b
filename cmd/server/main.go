package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/config"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/localstore"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/remote"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/router"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ls, err := localstore.Open(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataPath).Msg("failed to open local store")
	}
	defer ls.Close()

	st := store.New(ls)
	ad := remote.NewAdapter(cfg.RedisURL, st.ReplaceVendite)
	st.SetSyncer(ad)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := st.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load record store")
	}

	// Env-provided remote config wins over the stored one on first boot.
	if cfg.RemoteDatabaseURL != "" && cfg.RemoteAccessKey != "" && st.ConfigRemota() == nil {
		err := st.SetConfigRemota(ctx, model.Attore{Ruolo: model.RuoloAdmin}, &model.ConfigRemota{
			EndpointURL: cfg.RemoteDatabaseURL,
			AccessKey:   cfg.RemoteAccessKey,
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to store remote config from env")
		}
	}

	r := router.New(cfg, ls, st, ad)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ad.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
