package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
	"github.com/imovelsul/api/internal/interface/middleware"
	"github.com/imovelsul/api/pkg/response"
	"github.com/imovelsul/api/pkg/validation"
)

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

type brokerPayload struct {
	Name     string `json:"name" binding:"required"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type imagePayload struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
	IsMain  bool   `json:"isMain"`
}

type propertyRequest struct {
	Title           string         `json:"title" binding:"required"`
	Purpose         string         `json:"purpose" binding:"required,oneof=sale rent"`
	Price           float64        `json:"price" binding:"required,gte=0"`
	Neighborhood    string         `json:"neighborhood" binding:"required"`
	Address         string         `json:"address"`
	Bedrooms        int            `json:"bedrooms" binding:"gte=0"`
	Bathrooms       int            `json:"bathrooms" binding:"gte=0"`
	ParkingSpaces   int            `json:"parkingSpaces" binding:"gte=0"`
	LandSize        *float64       `json:"landSize" binding:"omitempty,gte=0"`
	TotalArea       *float64       `json:"totalArea" binding:"omitempty,gte=0"`
	Images          []imagePayload `json:"images" binding:"dive"`
	LongDescription string         `json:"longDescription"`
	Details         []string       `json:"details"`
	Features        []string       `json:"features"`
	Broker          brokerPayload  `json:"broker" binding:"required"`
}

func (r *propertyRequest) toEntity() *entity.Property {
	images := make([]entity.PropertyImage, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, entity.PropertyImage{URL: img.URL, Caption: img.Caption, IsMain: img.IsMain})
	}
	details := r.Details
	if details == nil {
		details = []string{}
	}
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return &entity.Property{
		Title:           r.Title,
		Purpose:         entity.Purpose(r.Purpose),
		Price:           r.Price,
		Neighborhood:    r.Neighborhood,
		Address:         r.Address,
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		ParkingSpaces:   r.ParkingSpaces,
		LandSize:        r.LandSize,
		TotalArea:       r.TotalArea,
		Images:          images,
		LongDescription: r.LongDescription,
		Details:         details,
		Features:        features,
		Broker: entity.Broker{
			Name:     entity.BrokerName(r.Broker.Name),
			WhatsApp: r.Broker.WhatsApp,
			Email:    r.Broker.Email,
		},
	}
}

func publicFilter(c *gin.Context) repository.PropertyFilter {
	f := repository.PropertyFilter{
		Purpose:      entity.Purpose(c.Query("purpose")),
		Neighborhood: c.Query("neighborhood"),
	}
	if v := c.Query("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &p
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		if b, err := strconv.Atoi(v); err == nil {
			f.MinBedrooms = &b
		}
	}
	return f
}

// ListPublic GET /api/properties
func (h *PropertyHandler) ListPublic(c *gin.Context) {
	props, err := h.Svc.ListPublic(c.Request.Context(), publicFilter(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if props == nil {
		props = []*entity.Property{}
	}
	response.Success(c, http.StatusOK, props, "properties", gin.H{"count": len(props)})
}

// Get GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "property", nil)
}

// Search GET /api/properties/search?q=
func (h *PropertyHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

// Submit POST /api/properties/submit
func (h *PropertyHandler) Submit(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Submit(c.Request.Context(), actor, req.toEntity())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "property submitted for approval", nil)
}

// Create POST /api/properties (admin direct-create, published immediately)
func (h *PropertyHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreateActive(c.Request.Context(), actor, req.toEntity())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "property created", nil)
}

// Update PUT /api/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toEntity())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "property updated", nil)
}

type approveRequest struct {
	Status string `json:"status" binding:"omitempty,oneof=active sold rented"`
}

// Approve PATCH /api/properties/:id/approve
func (h *PropertyHandler) Approve(c *gin.Context) {
	var req approveRequest
	// Body is optional; an empty PATCH means "activate".
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}
	}
	actor := middleware.CurrentUser(c)
	p, err := h.Svc.Approve(c.Request.Context(), actor.ID, c.Param("id"), entity.PropertyStatus(req.Status))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "property "+string(p.Status), nil)
}

// Reject PATCH /api/properties/:id/reject
func (h *PropertyHandler) Reject(c *gin.Context) {
	p, err := h.Svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "property rejected", nil)
}

// ToggleHighlight PATCH /api/properties/:id/highlight
func (h *PropertyHandler) ToggleHighlight(c *gin.Context) {
	p, err := h.Svc.ToggleHighlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "highlight toggled", nil)
}

// Delete DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "property deleted", nil)
}

// ListAll GET /api/properties/admin/all
func (h *PropertyHandler) ListAll(c *gin.Context) {
	props, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if props == nil {
		props = []*entity.Property{}
	}
	response.Success(c, http.StatusOK, props, "all properties", gin.H{"count": len(props)})
}
