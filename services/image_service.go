package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"bike-shop/utils"

	log "github.com/sirupsen/logrus"
)

const (
	imageFolder = "bike-shop/items"
	imageSubDir = "items"
	// UploadsPath is where the local upload directory is served.
	UploadsPath = "/uploads"
)

type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (url string, publicID string, err error)
}

// ImageService stores item images on cloudinary, or on local disk when no
// uploader is configured or the upload fails.
type ImageService struct {
	uploader  ImageUploader
	uploadDir string
	maxSize   int64
}

func NewImageService(uploader ImageUploader, uploadDir string, maxSize int64) *ImageService {
	return &ImageService{
		uploader:  uploader,
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

// Store validates the upload and returns the public URL of the stored image.
func (s *ImageService) Store(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader, s.maxSize); err != nil {
		return "", err
	}

	if s.uploader != nil {
		url, err := s.uploadRemote(ctx, fileHeader)
		if err == nil {
			return url, nil
		}
		log.WithError(err).Warn("Cloudinary upload failed, storing image locally")
	}

	rel, err := utils.UploadFile(fileHeader, s.uploadDir, imageSubDir, s.maxSize)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return path.Join(UploadsPath, rel), nil
}

func (s *ImageService) uploadRemote(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	url, _, err := s.uploader.Upload(ctx, file, fileHeader.Filename, imageFolder)
	return url, err
}
