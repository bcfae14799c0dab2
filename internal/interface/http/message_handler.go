package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/interface/middleware"
	"github.com/imovelsul/api/pkg/response"
	"github.com/imovelsul/api/pkg/validation"
)

type MessageHandler struct {
	Svc    *application.MessageService
	Logger *logrus.Logger
}

func NewMessageHandler(svc *application.MessageService, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{Svc: svc, Logger: logger}
}

type messageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Create POST /api/messages (public)
func (h *MessageHandler) Create(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), application.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, m, "message received", nil)
}

// List GET /api/messages
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	if msgs == nil {
		msgs = []*entity.Message{}
	}
	response.Success(c, http.StatusOK, msgs, "messages", gin.H{"count": len(msgs)})
}

// ToggleStatus PATCH /api/messages/:id/status
func (h *MessageHandler) ToggleStatus(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	m, err := h.Svc.ToggleStatus(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, m, "status updated", nil)
}

// Delete DELETE /api/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "message deleted", nil)
}
