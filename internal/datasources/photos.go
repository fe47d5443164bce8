package datasources

import (
	"context"
	"io"
)

// PhotoStore persists uploaded images and returns the relative path they are
// served from.
type PhotoStore interface {
	SavePhoto(ctx context.Context, filename string, content io.Reader) (string, error)
}
