package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-checkin/internal/audit"
	"github.com/BruksfildServices01/gym-checkin/internal/httperr"
	"github.com/BruksfildServices01/gym-checkin/internal/middleware"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

type AuditLogReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader AuditLogReader
	clock  timezone.Clock
}

func NewAuditLogsHandler(reader AuditLogReader, clock timezone.Clock) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, clock: clock}
}

type AuditLogsQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	From   string `form:"from"`
	To     string `form:"to"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=50"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var q AuditLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}

	f := audit.Filter{
		UserID: middleware.UserID(c),
		Action: q.Action,
		Entity: q.Entity,
		Page:   q.Page,
		Limit:  q.Limit,
	}

	// --------------------------------------------------
	// Date range, whole days in the app timezone
	// --------------------------------------------------

	loc := h.clock.Now().Location()

	if q.From != "" {
		from, err := time.ParseInLocation("2006-01-02", q.From, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
			return
		}
		f.From = &from
	}

	if q.To != "" {
		to, err := time.ParseInLocation("2006-01-02", q.To, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
			return
		}
		_, end := timezone.DayBounds(to)
		f.To = &end
	}

	logs, total, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  q.Page,
		"limit": q.Limit,
		"total": total,
		"logs":  logs,
	})
}
