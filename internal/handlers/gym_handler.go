package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-checkin/internal/httperr"
	"github.com/BruksfildServices01/gym-checkin/internal/httpresp"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	ucGym "github.com/BruksfildServices01/gym-checkin/internal/usecase/gym"
)

// ======================================================
// HANDLER
// ======================================================

type GymHandler struct {
	create *ucGym.CreateGym
	search *ucGym.SearchGyms
	nearby *ucGym.FetchNearbyGyms
}

func NewGymHandler(
	create *ucGym.CreateGym,
	search *ucGym.SearchGyms,
	nearby *ucGym.FetchNearbyGyms,
) *GymHandler {
	return &GymHandler{
		create: create,
		search: search,
		nearby: nearby,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Coordinates are pointers so that 0 is accepted while a missing value is not.
type CreateGymRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Phone       *string  `json:"phone"`
	Latitude    *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type SearchGymsQuery struct {
	Q    string `form:"q" binding:"required"`
	Page int    `form:"page,default=1" binding:"min=1"`
}

type NearbyGymsQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
}

// ======================================================
// CREATE
// ======================================================

func (h *GymHandler) Create(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucGym.CreateGymInput{
		Title:       req.Title,
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"gym": out.Gym})
}

// ======================================================
// SEARCH
// ======================================================

func (h *GymHandler) Search(c *gin.Context) {
	var q SearchGymsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.search.Execute(c.Request.Context(), ucGym.SearchGymsInput{
		Query: q.Q,
		Page:  q.Page,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List[models.Gym](c, out.Gyms, q.Page)
}

// ======================================================
// NEARBY
// ======================================================

func (h *GymHandler) Nearby(c *gin.Context) {
	var q NearbyGymsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	out, err := h.nearby.Execute(c.Request.Context(), ucGym.FetchNearbyGymsInput{
		UserLatitude:  *q.Latitude,
		UserLongitude: *q.Longitude,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List[models.Gym](c, out.Gyms, 0)
}
