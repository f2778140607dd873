package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	log "github.com/sirupsen/logrus"
)

var ErrCloudinaryNotConfigured = errors.New("cloudinary credentials not configured")

type CloudinaryCredentials struct {
	URL       string
	CloudName string
	APIKey    string
	APISecret string
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader prefers explicit credentials and falls back to
// CLOUDINARY_URL.
func NewCloudinaryUploader(creds CloudinaryCredentials) (*CloudinaryUploader, error) {
	if creds.CloudName != "" && creds.APIKey != "" && creds.APISecret != "" {
		cld, err := cloudinary.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from params: %w", err)
		}
		return &CloudinaryUploader{cld: cld}, nil
	}

	if creds.URL == "" {
		return nil, ErrCloudinaryNotConfigured
	}

	log.WithField("url", maskURL(creds.URL)).Debug("Using CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(creds.URL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, string, error) {
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(filename, " ", "_"))
	publicID = strings.TrimSuffix(publicID, filepath.Ext(publicID))

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", "", errors.New("cloudinary response is nil")
	}

	url := resp.SecureURL
	if url == "" {
		url = resp.URL
	}
	if url == "" {
		return "", "", errors.New("cloudinary returned no URL")
	}

	log.WithFields(log.Fields{"public_id": resp.PublicID, "url": url}).Info("Image uploaded to cloudinary")
	return url, resp.PublicID, nil
}

func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	result, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}

// PublicIDFromURL extracts the public id from a cloudinary delivery URL, or
// returns "" when url is not one.
func PublicIDFromURL(url string) string {
	parts := strings.Split(url, "/")

	uploadIndex := -1
	for i, part := range parts {
		if part == "upload" {
			uploadIndex = i
			break
		}
	}
	if uploadIndex == -1 || uploadIndex >= len(parts)-1 {
		return ""
	}

	rest := parts[uploadIndex+1:]
	// skip the version segment (v1712345678) when present
	if len(rest) > 1 && len(rest[0]) > 1 && rest[0][0] == 'v' && isDigits(rest[0][1:]) {
		rest = rest[1:]
	}

	publicID := strings.Join(rest, "/")
	if i := strings.Index(publicID, "?"); i != -1 {
		publicID = publicID[:i]
	}
	if i := strings.LastIndex(publicID, "."); i != -1 {
		publicID = publicID[:i]
	}
	return publicID
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func maskURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:10] + "..." + url[len(url)-10:]
}
