// Package media defines the boundary to the external blob store. Uploads
// yield an opaque URL and identifier; the backend never inspects the
// bytes beyond the declared content type.
package media

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/intentia/backend/internal/models"
)

var ErrNotFound = errors.New("media not found")

// Store is the blob-store collaborator interface.
type Store interface {
	// Upload stores the blob and returns its public URL and identifier.
	Upload(ctx context.Context, r io.Reader, contentType string) (url, id string, err error)

	// Delete removes a previously uploaded blob.
	Delete(ctx context.Context, id string) error
}

// TypeOf maps a MIME content type to the post media type. Anything that
// is not an image is treated as video, matching the upload validation
// done upstream.
func TypeOf(contentType string) models.MediaType {
	if strings.HasPrefix(contentType, "image/") {
		return models.MediaImage
	}
	return models.MediaVideo
}
