package media

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements services.MediaStore against the Cloudinary
// upload API.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a client from CLOUDINARY_URL, or from
// CLOUDINARY_CLOUD_NAME / CLOUDINARY_API_KEY / CLOUDINARY_API_SECRET when the
// single-URL form is unset.
func NewCloudinaryStore() (*CloudinaryStore, error) {
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		client, err := cloudinary.NewFromURL(url)
		if err != nil {
			return nil, fmt.Errorf("invalid CLOUDINARY_URL: %w", err)
		}
		return &CloudinaryStore{client: client}, nil
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL or CLOUDINARY_CLOUD_NAME/CLOUDINARY_API_KEY/CLOUDINARY_API_SECRET must be configured")
	}

	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("error creating Cloudinary client: %w", err)
	}
	return &CloudinaryStore{client: client}, nil
}

func (c *CloudinaryStore) Upload(ctx context.Context, data []byte, folder string) (string, string, error) {
	result, err := c.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", "", err
	}
	if result.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary upload rejected: %s", result.Error.Message)
	}

	log.Printf("[CLOUDINARY] uploaded %s to folder %s", result.PublicID, folder)
	return result.SecureURL, result.PublicID, nil
}

func (c *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	result, err := c.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return err
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy of %s returned %q", publicID, result.Result)
	}

	log.Printf("[CLOUDINARY] destroyed %s", publicID)
	return nil
}
