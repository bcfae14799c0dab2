package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/internal/application"
	"github.com/imovelsul/api/pkg/response"
)

// maxUploadSize caps a single image at 10 MiB.
const maxUploadSize = 10 << 20

type UploadHandler struct {
	Svc    *application.UploadService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *application.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Upload POST /api/upload/images — multipart form, one or more files under "images".
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.Error[any](c, http.StatusBadRequest, "no images provided", nil)
		return
	}

	uploaded := make([]*application.UploadedImage, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxUploadSize {
			response.Error[any](c, http.StatusBadRequest, "file too large: "+fh.Filename, nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			fail(c, h.Logger, err)
			return
		}
		img, err := h.Svc.Upload(c.Request.Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			if err == application.ErrStorageUnavailable {
				response.Error[any](c, http.StatusServiceUnavailable, err.Error(), nil)
				return
			}
			fail(c, h.Logger, err)
			return
		}
		uploaded = append(uploaded, img)
	}
	response.Success(c, http.StatusCreated, uploaded, "images uploaded", gin.H{"count": len(uploaded)})
}

// Delete DELETE /api/upload/images/:id
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == application.ErrStorageUnavailable {
			response.Error[any](c, http.StatusServiceUnavailable, err.Error(), nil)
			return
		}
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "image deleted", nil)
}
