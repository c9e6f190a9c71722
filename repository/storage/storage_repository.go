package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StorageRepository persists uploaded files and returns their public path.
type StorageRepository interface {
	Save(ctx context.Context, name string, content io.Reader) (string, error)
}

type disk struct {
	dir        string
	publicPath string
}

// NewDiskRepository stores files under dir and exposes them under publicPath.
func NewDiskRepository(dir, publicPath string) StorageRepository {
	return &disk{dir: dir, publicPath: publicPath}
}

func (d *disk) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	if err := ctx.Err(); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return d.publicPath + name, nil
}
