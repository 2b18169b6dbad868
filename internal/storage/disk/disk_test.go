package disk

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Upload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	p, err := New(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := p.Upload(context.Background(), "proof.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/proof.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "proof.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestProvider_Upload_NoOverwrite(t *testing.T) {
	p, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = p.Upload(context.Background(), "a.pdf", "application/pdf", strings.NewReader("first"))
	require.NoError(t, err)

	_, err = p.Upload(context.Background(), "a.pdf", "application/pdf", strings.NewReader("second"))
	assert.Error(t, err)
}

func TestProvider_Upload_RejectsPaths(t *testing.T) {
	p, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.png", "nested/file.png"} {
		_, err = p.Upload(context.Background(), name, "image/png", strings.NewReader("x"))
		assert.Error(t, err, name)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestProvider_Upload_RemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	p, err := New(dir, "/uploads")
	require.NoError(t, err)

	_, err = p.Upload(context.Background(), "broken.jpg", "image/jpeg", failingReader{})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "broken.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}
