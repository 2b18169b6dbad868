package ports

import (
	"context"
	"io"
)

type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
