package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Uploader accepts a binary blob and a logical folder and returns a
// publicly retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}

// CloudinaryUploader stores blobs in Cloudinary
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	log    zerolog.Logger
}

// NewCloudinaryUploader creates an uploader from a CLOUDINARY_URL-style DSN
func NewCloudinaryUploader(cloudinaryURL string, log zerolog.Logger) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryUploader{
		client: client,
		log:    log.With().Str("component", "uploader").Logger(),
	}, nil
}

// Upload stores the blob under a unique name in the given folder and
// returns its public URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	publicID := uniqueName(filename)

	result, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		u.log.Error().Err(err).Str("folder", folder).Msg("Upload failed")
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	u.log.Info().
		Str("folder", folder).
		Str("public_id", publicID).
		Msg("File uploaded")
	return result.SecureURL, nil
}

// uniqueName derives a collision-free name from the original filename
func uniqueName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("%s_%s", base, uuid.New().String()[:8])
}
