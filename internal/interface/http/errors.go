package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/internal/domain/entity"
	"github.com/imovelsul/api/internal/domain/repository"
	"github.com/imovelsul/api/pkg/response"
)

// fail maps service errors onto the HTTP taxonomy. Validation and state
// errors are surfaced verbatim; anything unexpected is logged and returned
// as a generic 500 so internals never leak.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, repository.ErrDuplicate):
		response.Error[any](c, http.StatusConflict, "already exists", nil)
	case errors.Is(err, application.ErrInvalidState):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials), errors.Is(err, application.ErrUserInactive):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, entity.ErrUnknownBroker),
		errors.Is(err, entity.ErrInvalidPurpose),
		errors.Is(err, entity.ErrNegativePrice),
		errors.Is(err, entity.ErrMultipleMainImgs):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
