package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/apierror"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/dto"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/middleware"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/remote"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

// SyncHandler exposes the remote mirror's status, its transient failure
// notices, and the remote connection config.
type SyncHandler struct {
	st *store.Store
	ad *remote.Adapter
}

func NewSyncHandler(st *store.Store, ad *remote.Adapter) *SyncHandler {
	return &SyncHandler{st: st, ad: ad}
}

// Status reports connected | error | none. Display only: mutations are
// accepted locally whatever this says.
func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SyncStatusResponse{Stato: string(h.ad.Status())})
}

// Notifiche drains the transient notice buffer (reading dismisses).
func (h *SyncHandler) Notifiche(c *gin.Context) {
	notifiche := h.ad.Notifiche()
	if notifiche == nil {
		notifiche = []remote.Notifica{}
	}
	c.JSON(http.StatusOK, notifiche)
}

// ImpostaConfig stores the remote connection config and starts the mirror.
// Both fields empty clears it, same as EliminaConfig.
func (h *SyncHandler) ImpostaConfig(c *gin.Context) {
	var req dto.ConfigRemotaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	var cfg *model.ConfigRemota
	if req.EndpointURL != "" || req.AccessKey != "" {
		cfg = &model.ConfigRemota{EndpointURL: req.EndpointURL, AccessKey: req.AccessKey}
	}
	if err := h.st.SetConfigRemota(c.Request.Context(), middleware.GetAttore(c), cfg); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.SyncStatusResponse{Stato: string(h.ad.Status())})
}

// EliminaConfig clears the remote config and reverts to local-only mode.
func (h *SyncHandler) EliminaConfig(c *gin.Context) {
	if err := h.st.SetConfigRemota(c.Request.Context(), middleware.GetAttore(c), nil); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.SyncStatusResponse{Stato: string(h.ad.Status())})
}
