package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/middleware"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

type StatisticheHandler struct{ st *store.Store }

func NewStatisticheHandler(st *store.Store) *StatisticheHandler {
	return &StatisticheHandler{st: st}
}

// Statistiche returns the dashboard aggregates over the caller's visible
// sales.
func (h *StatisticheHandler) Statistiche(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Statistiche(middleware.GetAttore(c)))
}
