package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/interface/middleware"
	"github.com/imovelsul/api/pkg/response"
	"github.com/imovelsul/api/pkg/validation"
)

type ClientHandler struct {
	Svc    *application.ClientService
	Logger *logrus.Logger
}

func NewClientHandler(svc *application.ClientService, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{Svc: svc, Logger: logger}
}

type preferencesPayload struct {
	PropertyType  []string            `json:"propertyType"`
	Purpose       string              `json:"purpose" binding:"omitempty,oneof=sale rent"`
	PriceRange    entity.PriceRange   `json:"priceRange"`
	Neighborhoods []string            `json:"neighborhoods"`
	Bedrooms      entity.BedroomRange `json:"bedrooms"`
	Features      []string            `json:"features"`
}

type clientRequest struct {
	Name        string             `json:"name" binding:"required"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email" binding:"omitempty,email"`
	Preferences preferencesPayload `json:"preferences"`
	Notes       string             `json:"notes"`
	Status      string             `json:"status" binding:"omitempty,oneof=active inactive converted"`
}

func (r *clientRequest) toEntity() *entity.ClientProfile {
	return &entity.ClientProfile{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Preferences: entity.Preferences{
			PropertyType:  r.Preferences.PropertyType,
			Purpose:       entity.Purpose(r.Preferences.Purpose),
			PriceRange:    r.Preferences.PriceRange,
			Neighborhoods: r.Preferences.Neighborhoods,
			Bedrooms:      r.Preferences.Bedrooms,
			Features:      r.Preferences.Features,
		},
		Notes:  r.Notes,
		Status: entity.ClientStatus(r.Status),
	}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	actor := middleware.CurrentUser(c)
	profile, err := h.Svc.Create(c.Request.Context(), actor.ID, req.toEntity())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, profile, "client created", nil)
}

// Get GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	profile, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, profile, "client", nil)
}

// List GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	profiles, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if profiles == nil {
		profiles = []*entity.ClientProfile{}
	}
	response.Success(c, http.StatusOK, profiles, "clients", gin.H{"count": len(profiles)})
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	profile, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toEntity())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, profile, "client updated", nil)
}

type interactionRequest struct {
	Date       *time.Time `json:"date"`
	Type       string     `json:"type" binding:"required,oneof=contact visit proposal feedback"`
	Notes      string     `json:"notes"`
	PropertyID string     `json:"propertyId"`
}

// AddInteraction POST /api/clients/:id/interactions
func (h *ClientHandler) AddInteraction(c *gin.Context) {
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	it := entity.Interaction{
		Type:       entity.InteractionType(req.Type),
		Notes:      req.Notes,
		PropertyID: req.PropertyID,
	}
	if req.Date != nil {
		it.Date = *req.Date
	}
	actor := middleware.CurrentUser(c)
	profile, err := h.Svc.AddInteraction(c.Request.Context(), c.Param("id"), actor.ID, it)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, profile, "interaction recorded", nil)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "client deleted", nil)
}
