package storage

import (
	"path/filepath"
	"testing"

	"github.com/stpnv0/EventPass/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.UploadsConfig{
		Provider:      "disk",
		Dir:           filepath.Join(t.TempDir(), "proofs"),
		PublicBaseURL: "http://localhost:8080/uploads",
	})
	require.NoError(t, err)
	assert.Equal(t, "disk", p.Name())

	_, err = NewProvider(config.UploadsConfig{Provider: "s3"})
	assert.Error(t, err)
}
