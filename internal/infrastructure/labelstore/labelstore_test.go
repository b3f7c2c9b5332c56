package labelstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTempFileStore_Store(t *testing.T) {
	dir := t.TempDir()
	store := NewTempFileStore(dir, zap.NewNop())

	tenantID := uuid.New()
	pdf := []byte("%PDF-1.4 label content")

	path, err := store.Store(context.Background(), tenantID, "MRW123456", pdf)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, fmt.Sprintf("%s-mrw-MRW123456-", tenantID)), "unexpected name %q", name)
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pdf, content)
}

func TestTempFileStore_Store_UniqueNames(t *testing.T) {
	store := NewTempFileStore(t.TempDir(), zap.NewNop())
	tenantID := uuid.New()

	first, err := store.Store(context.Background(), tenantID, "MRW123456", []byte("a"))
	require.NoError(t, err)
	second, err := store.Store(context.Background(), tenantID, "MRW123456", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTempFileStore_Store_BadDirectory(t *testing.T) {
	store := NewTempFileStore(filepath.Join(t.TempDir(), "missing"), zap.NewNop())

	_, err := store.Store(context.Background(), uuid.New(), "MRW123456", []byte("a"))
	assert.Error(t, err)
}
