package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
}

func NewAuditLogsHandler(store audit.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	// --------------------------------------------------
	// Filtros de data (YYYY-MM-DD); inválidos são ignorados
	// --------------------------------------------------

	if from, err := timezone.ParseDate(c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := timezone.ParseDate(c.Query("to")); err == nil {
		filter.To = &to
	}

	logs, total, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  filter.Page,
		"limit": filter.Limit,
		"total": total,
		"logs":  logs,
	})
}
