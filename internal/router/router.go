package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/config"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/handler"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/localstore"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/middleware"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/remote"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/service"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Store ← Localstore/Adapter
func New(cfg *config.Config, ls *localstore.Store, st *store.Store, ad *remote.Adapter) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Services / handlers ──────────────────────────────────────────────────
	authSvc := service.NewAuthService(st, cfg)

	authH := handler.NewAuthHandler(authSvc)
	venditeH := handler.NewVenditeHandler(st)
	anagraficheH := handler.NewAnagraficheHandler(st)
	syncH := handler.NewSyncHandler(st, ad)
	statisticheH := handler.NewStatisticheHandler(st)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(ls, ad))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes. Admin-only surfaces mirror the store's own checks —
	// the store is the authoritative enforcement point.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	qualsiasi := middleware.RequireRole(model.RuoloAdmin, model.RuoloAgente)
	soloAdmin := middleware.RequireRole(model.RuoloAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/vendite", qualsiasi, venditeH.Lista)
		v1.POST("/vendite", qualsiasi, venditeH.Crea)
		v1.GET("/vendite/export", qualsiasi, venditeH.Esporta)
		v1.POST("/vendite/import", soloAdmin, venditeH.Importa)
		v1.PUT("/vendite/:id", soloAdmin, venditeH.Aggiorna)
		v1.DELETE("/vendite/:id", soloAdmin, venditeH.Elimina)
		v1.PATCH("/vendite/:id/incasso", soloAdmin, venditeH.Incassa)

		v1.GET("/agenti", qualsiasi, anagraficheH.ListaAgenti)
		agenti := v1.Group("/agenti", soloAdmin)
		{
			agenti.PUT("", anagraficheH.PutAgente)
			agenti.DELETE("/:id", anagraficheH.EliminaAgente)
		}

		operatori := v1.Group("/operatori", soloAdmin)
		{
			operatori.GET("", anagraficheH.ListaOperatori)
			operatori.PUT("", anagraficheH.PutOperatore)
			operatori.DELETE("/:id", anagraficheH.EliminaOperatore)
		}

		v1.GET("/metodi-pagamento", qualsiasi, anagraficheH.ListaMetodi)
		v1.PUT("/metodi-pagamento", soloAdmin, anagraficheH.ImpostaMetodi)

		v1.GET("/statistiche", qualsiasi, statisticheH.Statistiche)

		v1.GET("/sync/status", qualsiasi, syncH.Status)
		v1.GET("/sync/notifiche", qualsiasi, syncH.Notifiche)
		v1.PUT("/sync/config", soloAdmin, syncH.ImpostaConfig)
		v1.DELETE("/sync/config", soloAdmin, syncH.EliminaConfig)
	}

	return r
}
