package services

import (
	"context"
	"path"
	"strings"
)

// MediaStore is the remote image host (Cloudinary in production). Upload
// returns the public URL of the stored object and the opaque id needed to
// destroy it later.
type MediaStore interface {
	Upload(ctx context.Context, data []byte, folder string) (url string, publicID string, err error)
	Destroy(ctx context.Context, publicID string) error
}

// PublicIDFromURL derives the media store's opaque id from a delivery URL:
// the last path segment minus its extension, prefixed with the upload folder.
func PublicIDFromURL(imageURL, folder string) string {
	base := path.Base(imageURL)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if folder == "" {
		return base
	}
	return folder + "/" + base
}
