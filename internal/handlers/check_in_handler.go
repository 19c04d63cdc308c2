package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-checkin/internal/httperr"
	"github.com/BruksfildServices01/gym-checkin/internal/httpresp"
	"github.com/BruksfildServices01/gym-checkin/internal/middleware"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	ucCheckIn "github.com/BruksfildServices01/gym-checkin/internal/usecase/checkin"
)

type CheckInHandler struct {
	checkIn *ucCheckIn.CheckIn
	history *ucCheckIn.FetchUserCheckInsHistory
	metrics *ucCheckIn.GetUserMetrics
}

func NewCheckInHandler(
	checkIn *ucCheckIn.CheckIn,
	history *ucCheckIn.FetchUserCheckInsHistory,
	metrics *ucCheckIn.GetUserMetrics,
) *CheckInHandler {
	return &CheckInHandler{
		checkIn: checkIn,
		history: history,
		metrics: metrics,
	}
}

type CreateCheckInRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type HistoryQuery struct {
	Page int `form:"page,default=1" binding:"min=1"`
}

func (h *CheckInHandler) Create(c *gin.Context) {
	var req CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.checkIn.Execute(c.Request.Context(), ucCheckIn.CheckInInput{
		UserID:        middleware.UserID(c),
		GymID:         c.Param("gymId"),
		UserLatitude:  *req.Latitude,
		UserLongitude: *req.Longitude,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"check_in": out.CheckIn})
}

func (h *CheckInHandler) History(c *gin.Context) {
	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.history.Execute(c.Request.Context(), ucCheckIn.FetchUserCheckInsHistoryInput{
		UserID: middleware.UserID(c),
		Page:   q.Page,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List[models.CheckIn](c, out.CheckIns, q.Page)
}

func (h *CheckInHandler) Metrics(c *gin.Context) {
	out, err := h.metrics.Execute(c.Request.Context(), ucCheckIn.GetUserMetricsInput{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"check_ins_count": out.CheckInsCount})
}
