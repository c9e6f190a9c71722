package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisk_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	repo := NewDiskRepository(dir, "/uploads/")

	got, err := repo.Save(context.Background(), "7-abc.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/7-abc.png", got)

	content, err := os.ReadFile(filepath.Join(dir, "7-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestDisk_SaveRejectsPathTraversal(t *testing.T) {
	repo := NewDiskRepository(t.TempDir(), "/uploads/")

	_, err := repo.Save(context.Background(), "../escape.png", strings.NewReader("x"))
	assert.Error(t, err)
}
