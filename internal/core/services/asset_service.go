package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/internal/core/ports"
	"github.com/mdslide/mdslide/pkg/logging"
	"github.com/mdslide/mdslide/pkg/workspace"
)

// AssetService co-locates pasted binary assets with the documents that embed them
type AssetService struct {
	assets ports.AssetWriter
}

// NewAssetService creates a new asset service
func NewAssetService(assets ports.AssetWriter) *AssetService {
	return &AssetService{
		assets: assets,
	}
}

// SavePastedAsset writes data to <parent>/<stem>/<assetName>.<extension> next to
// documentPath and returns the asset with its "<stem>/<name>.<ext>" reference.
// Pasting the same name again overwrites the file: last write wins.
// An empty assetName gets a generated identifier.
func (s *AssetService) SavePastedAsset(ctx context.Context, documentPath, assetName string, data []byte, extension string) (*domain.PastedAsset, error) {
	const op = "save_pasted_asset"

	// 1. Resolve names before touching storage
	stem, err := workspace.Stem(documentPath)
	if err != nil {
		return nil, err
	}
	assetDir, err := workspace.AssetDirFor(documentPath)
	if err != nil {
		return nil, err
	}

	if assetName == "" {
		assetName = domain.NewAssetName()
	}
	if err := workspace.ValidateComponent(op, assetName); err != nil {
		return nil, err
	}

	ext := domain.NormalizeExtension(extension)
	if err := workspace.ValidateComponent(op, ext); err != nil {
		return nil, err
	}

	asset := &domain.PastedAsset{
		DocumentPath: documentPath,
		Name:         assetName,
		Extension:    ext,
		RelativePath: workspace.RelativeAssetRef(stem, assetName, ext),
	}

	// 2. Ensure the directory and write
	path, err := s.assets.Write(ctx, assetDir, asset.FileName(), data)
	if err != nil {
		return nil, err
	}
	asset.AbsolutePath = path

	logging.Info("Assets", "saved %s for %s", asset.RelativePath, documentPath)
	return asset, nil
}

// ImportFile pastes the image at srcPath into documentPath's asset directory.
// An empty extension is taken from the source file name, lower-cased.
func (s *AssetService) ImportFile(ctx context.Context, documentPath, srcPath, assetName, extension string) (*domain.PastedAsset, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NotFound("import_asset", srcPath)
		}
		return nil, domain.IO("import_asset", srcPath, err)
	}

	if strings.TrimSpace(extension) == "" {
		extension = strings.ToLower(strings.TrimPrefix(filepath.Ext(srcPath), "."))
	}
	return s.SavePastedAsset(ctx, documentPath, assetName, data, extension)
}

// ListAssets returns the files in documentPath's asset directory
func (s *AssetService) ListAssets(ctx context.Context, documentPath string) ([]domain.Entry, error) {
	assetDir, err := workspace.AssetDirFor(documentPath)
	if err != nil {
		return nil, err
	}

	entries, err := s.assets.List(ctx, assetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return entries, nil
}
