package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/localstore"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/remote"
)

// Health reports local storage health and the remote mirror status. The
// remote status never fails the check: local-only is a healthy mode.
func Health(ls *localstore.Store, ad *remote.Adapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		localeStatus := "connected"
		if err := ls.Ping(ctx); err != nil {
			localeStatus = "error"
		}

		status := http.StatusOK
		if localeStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":     status == http.StatusOK,
			"locale": localeStatus,
			"sync":   string(ad.Status()),
		})
	}
}
