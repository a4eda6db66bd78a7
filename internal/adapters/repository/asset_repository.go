package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/internal/core/ports"
	"github.com/mdslide/mdslide/pkg/logging"
)

const filePerm = 0644

// AssetRepository writes pasted blobs into per-document asset directories
type AssetRepository struct {
	mutator ports.WorkspaceMutator
}

// NewAssetRepository creates an asset store that creates directories through mutator
func NewAssetRepository(mutator ports.WorkspaceMutator) *AssetRepository {
	return &AssetRepository{mutator: mutator}
}

// Ensure it implements the interface
var _ ports.AssetWriter = (*AssetRepository)(nil)

// Write ensures dir exists (reusing it untouched if present) and writes
// data to dir/fileName, replacing any file of that name. It returns the
// absolute path written. If the directory cannot be created no write is attempted.
func (r *AssetRepository) Write(ctx context.Context, dir, fileName string, data []byte) (string, error) {
	const op = "save_pasted_asset"

	if err := r.mutator.EnsureDirectory(ctx, dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", domain.IO(op, path, err)
	}

	logging.Debug("Assets", "wrote %d bytes to %s", len(data), path)
	return path, nil
}

// List returns the files directly inside dir, in name order.
// A missing directory means the document has no assets yet.
func (r *AssetRepository) List(ctx context.Context, dir string) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Entry{}, nil
		}
		return nil, domain.IO("list_assets", dir, err)
	}

	assets := make([]domain.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		assets = append(assets, domain.Entry{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return assets, nil
}
