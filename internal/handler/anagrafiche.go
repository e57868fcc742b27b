package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/apierror"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/dto"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/middleware"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

// AnagraficheHandler serves the operator and agent directories plus the
// payment method registry.
type AnagraficheHandler struct{ st *store.Store }

func NewAnagraficheHandler(st *store.Store) *AnagraficheHandler {
	return &AnagraficheHandler{st: st}
}

// ── Operatori (administrator only at the route level) ─────────────────────────

func (h *AnagraficheHandler) ListaOperatori(c *gin.Context) {
	operatori := h.st.Operatori()
	resp := make([]dto.OperatoreResponse, 0, len(operatori))
	for _, op := range operatori {
		resp = append(resp, dto.OperatoreResponse{
			ID: op.ID, Nome: op.Nome, Email: op.Email, Ruolo: op.Ruolo, Protetto: op.Protetto,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnagraficheHandler) PutOperatore(c *gin.Context) {
	var req dto.PutOperatoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	op, err := h.st.PutOperatore(c.Request.Context(), middleware.GetAttore(c), model.Operatore{
		ID:       req.ID,
		Nome:     req.Nome,
		Email:    req.Email,
		Password: req.Password,
		Ruolo:    req.Ruolo,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrEmailGiaInUso) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.OperatoreResponse{
		ID: op.ID, Nome: op.Nome, Email: op.Email, Ruolo: op.Ruolo, Protetto: op.Protetto,
	})
}

func (h *AnagraficheHandler) EliminaOperatore(c *gin.Context) {
	if !richiedeConferma(c) {
		return
	}
	err := h.st.EliminaOperatore(c.Request.Context(), middleware.GetAttore(c), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrOperatoreProtetto):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, store.ErrOperatoreNonTrovato):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case err != nil:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.Status(http.StatusNoContent)
	}
}

// ── Agenti ────────────────────────────────────────────────────────────────────

// ListaAgenti returns the agents visible to the caller.
func (h *AnagraficheHandler) ListaAgenti(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Agenti(middleware.GetAttore(c)))
}

func (h *AnagraficheHandler) PutAgente(c *gin.Context) {
	var req dto.PutAgenteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	a, err := h.st.PutAgente(c.Request.Context(), middleware.GetAttore(c), model.Agente{
		ID:             req.ID,
		Nome:           req.Nome,
		Email:          req.Email,
		OperatoreEmail: req.OperatoreEmail,
		Telefono:       req.Telefono,
		Zona:           req.Zona,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AnagraficheHandler) EliminaAgente(c *gin.Context) {
	if !richiedeConferma(c) {
		return
	}
	err := h.st.EliminaAgente(c.Request.Context(), middleware.GetAttore(c), c.Param("id"))
	if errors.Is(err, store.ErrAgenteNonTrovato) {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Metodi di pagamento ───────────────────────────────────────────────────────

func (h *AnagraficheHandler) ListaMetodi(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Metodi())
}

func (h *AnagraficheHandler) ImpostaMetodi(c *gin.Context) {
	var req dto.SetMetodiRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.st.SetMetodiPagamento(c.Request.Context(), middleware.GetAttore(c), req.Metodi); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.st.Metodi())
}
