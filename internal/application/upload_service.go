package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/imovelsul/api/pkg/helpers"
)

// UploadService stores property images on the external asset host.
// Object ids are opaque to callers; the URL is what ends up on listings.
type UploadService struct {
	GCS    *storage.Client
	Bucket string
	Logger *logrus.Logger
}

func NewUploadService(gcs *storage.Client, bucket string, logger *logrus.Logger) *UploadService {
	return &UploadService{GCS: gcs, Bucket: bucket, Logger: logger}
}

var ErrStorageUnavailable = errors.New("image storage not configured")

// UploadedImage is returned to the admin UI after a successful upload.
type UploadedImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Upload stores one image under properties/<uuid><ext> and returns its id and URL.
func (s *UploadService) Upload(ctx context.Context, r io.Reader, filename, contentType string) (*UploadedImage, error) {
	if s.GCS == nil || s.Bucket == "" {
		return nil, ErrStorageUnavailable
	}
	id := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	objectPath := "properties/" + id
	url, err := helpers.UploadObject(ctx, s.GCS, s.Bucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	return &UploadedImage{ID: id, URL: url}, nil
}

// Delete removes a previously uploaded image by id.
func (s *UploadService) Delete(ctx context.Context, id string) error {
	if s.GCS == nil || s.Bucket == "" {
		return ErrStorageUnavailable
	}
	return helpers.DeleteObject(ctx, s.GCS, s.Bucket, "properties/"+id)
}
