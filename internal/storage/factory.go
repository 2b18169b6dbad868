package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/stpnv0/EventPass/internal/config"
	"github.com/stpnv0/EventPass/internal/storage/disk"
)

// Provider stores uploaded payment proofs and returns their public URL.
type Provider interface {
	Name() string
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

func NewProvider(cfg config.UploadsConfig) (Provider, error) {
	switch cfg.Provider {
	case "disk":
		return disk.New(cfg.Dir, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown uploads provider: %s", cfg.Provider)
	}
}
