package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/apierror"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/dto"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/export"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/middleware"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

type VenditeHandler struct{ st *store.Store }

func NewVenditeHandler(st *store.Store) *VenditeHandler { return &VenditeHandler{st: st} }

// Lista returns the sales visible to the caller, most recent first.
func (h *VenditeHandler) Lista(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Vendite(middleware.GetAttore(c)))
}

// Crea registers a new sale owned by the caller.
func (h *VenditeHandler) Crea(c *gin.Context) {
	var req dto.CreaVenditaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.st.CreaVendita(c.Request.Context(), middleware.GetAttore(c), store.NuovaVendita{
		Cliente:         req.Cliente,
		Importo:         req.Importo,
		MetodoPagamento: req.MetodoPagamento,
		Sconto:          req.Sconto,
		Agente:          req.Agente,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Aggiorna merges a partial edit into an existing sale (administrator).
func (h *VenditeHandler) Aggiorna(c *gin.Context) {
	var req dto.AggiornaVenditaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.st.AggiornaVendita(c.Request.Context(), middleware.GetAttore(c), c.Param("id"), store.ModificaVendita{
		Cliente:         req.Cliente,
		Importo:         req.Importo,
		MetodoPagamento: req.MetodoPagamento,
		Sconto:          req.Sconto,
		Agente:          req.Agente,
		Note:            req.Note,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrVenditaNonTrovata) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, v)
}

// Elimina removes a sale (administrator, explicit confirmation required).
func (h *VenditeHandler) Elimina(c *gin.Context) {
	if !richiedeConferma(c) {
		return
	}
	err := h.st.EliminaVendita(c.Request.Context(), middleware.GetAttore(c), c.Param("id"))
	if errors.Is(err, store.ErrVenditaNonTrovata) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Incassa marks a sale as collected (administrator). Idempotent.
func (h *VenditeHandler) Incassa(c *gin.Context) {
	v, err := h.st.MarcaIncassata(c.Request.Context(), middleware.GetAttore(c), c.Param("id"))
	if errors.Is(err, store.ErrVenditaNonTrovata) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, v)
}

// Esporta streams the caller's visible sales as a ';'-separated CSV download.
func (h *VenditeHandler) Esporta(c *gin.Context) {
	vendite := h.st.Vendite(middleware.GetAttore(c))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="vendite.csv"`)
	c.Status(http.StatusOK)
	if err := export.ScriviCSV(c.Writer, vendite); err != nil {
		log.Error().Err(err).Msg("esportazione CSV interrotta")
	}
}

// Importa overwrites the whole sales collection from an uploaded CSV
// (administrator, explicit confirmation required).
func (h *VenditeHandler) Importa(c *gin.Context) {
	if !richiedeConferma(c) {
		return
	}
	vendite, err := export.LeggiCSV(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("CSV non valido: "+err.Error()))
		return
	}
	if err := h.st.ImportaVendite(c.Request.Context(), middleware.GetAttore(c), vendite); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"importate": len(vendite)})
}
