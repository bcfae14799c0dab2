package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/pkg/response"
	"github.com/imovelsul/api/pkg/validation"
)

type NeighborhoodHandler struct {
	Svc    *application.NeighborhoodService
	Logger *logrus.Logger
}

func NewNeighborhoodHandler(svc *application.NeighborhoodService, logger *logrus.Logger) *NeighborhoodHandler {
	return &NeighborhoodHandler{Svc: svc, Logger: logger}
}

type streetPayload struct {
	Name string `json:"name" binding:"required"`
}

type neighborhoodRequest struct {
	Name    string          `json:"name" binding:"required"`
	City    string          `json:"city" binding:"required"`
	State   string          `json:"state"`
	Streets []streetPayload `json:"streets" binding:"dive"`
}

func (r *neighborhoodRequest) toEntity() *entity.Neighborhood {
	streets := make([]entity.Street, 0, len(r.Streets))
	for _, s := range r.Streets {
		streets = append(streets, entity.Street{Name: s.Name})
	}
	return &entity.Neighborhood{
		Name:    r.Name,
		City:    r.City,
		State:   r.State,
		Streets: streets,
	}
}

// List GET /api/neighborhoods (public, active only)
func (h *NeighborhoodHandler) List(c *gin.Context) {
	items, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if items == nil {
		items = []*entity.Neighborhood{}
	}
	response.Success(c, http.StatusOK, items, "neighborhoods", gin.H{"count": len(items)})
}

// Get GET /api/neighborhoods/:id
func (h *NeighborhoodHandler) Get(c *gin.Context) {
	n, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, n, "neighborhood", nil)
}

// Create POST /api/neighborhoods
func (h *NeighborhoodHandler) Create(c *gin.Context) {
	var req neighborhoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	n, err := h.Svc.Create(c.Request.Context(), req.toEntity())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, n, "neighborhood created", nil)
}

// Update PUT /api/neighborhoods/:id
func (h *NeighborhoodHandler) Update(c *gin.Context) {
	var req neighborhoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	n, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toEntity())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, n, "neighborhood updated", nil)
}

// Delete DELETE /api/neighborhoods/:id (soft delete)
func (h *NeighborhoodHandler) Delete(c *gin.Context) {
	if err := h.Svc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "neighborhood deactivated", nil)
}
