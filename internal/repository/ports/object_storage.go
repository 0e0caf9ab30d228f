package ports

import "context"

type ObjectStorage interface {
	Upload(ctx context.Context, objectName, contentType string, body []byte) (string, error)
}
