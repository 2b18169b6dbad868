package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Provider пишет файлы в локальную директорию, которую роутер раздаёт как /uploads.
type Provider struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Provider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Provider{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (p *Provider) Name() string { return "disk" }

func (p *Provider) Upload(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(p.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// недописанный файл не оставляем
		return "", errors.Join(fmt.Errorf("write file: %w", err), os.Remove(path))
	}

	return p.baseURL + "/" + name, nil
}
