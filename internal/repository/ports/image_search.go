package ports

import "context"

// ImageSearch looks up a photo for a free-text query and returns its URL.
type ImageSearch interface {
	RandomPhotoURL(ctx context.Context, query string) (string, error)
}
