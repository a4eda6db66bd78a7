package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdslide/mdslide/internal/adapters/repository"
	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/internal/core/ports/mocks"
)

func TestAssetService_SavePastedAsset_Success(t *testing.T) {
	// Setup
	ws := t.TempDir()
	docPath := filepath.Join(ws, "doc.md")
	svc := NewAssetService(repository.NewAssetRepository(repository.NewWorkspaceRepository()))

	// Execute
	asset, err := svc.SavePastedAsset(context.Background(), docPath, "img1", []byte("B1"), "png")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.RelativePath != "doc/img1.png" {
		t.Errorf("expected doc/img1.png, got %s", asset.RelativePath)
	}

	stored, err := os.ReadFile(filepath.Join(ws, "doc", "img1.png"))
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if string(stored) != "B1" {
		t.Errorf("stored content = %q", stored)
	}
	if asset.AbsolutePath != filepath.Join(ws, "doc", "img1.png") {
		t.Errorf("unexpected absolute path %s", asset.AbsolutePath)
	}
}

func TestAssetService_SavePastedAsset_LastWriteWins(t *testing.T) {
	ws := t.TempDir()
	docPath := filepath.Join(ws, "doc.md")
	svc := NewAssetService(repository.NewAssetRepository(repository.NewWorkspaceRepository()))
	ctx := context.Background()

	if _, err := svc.SavePastedAsset(ctx, docPath, "img1", []byte("B1"), "png"); err != nil {
		t.Fatalf("first paste: %v", err)
	}
	asset, err := svc.SavePastedAsset(ctx, docPath, "img1", []byte("B2"), "png")
	if err != nil {
		t.Fatalf("second paste: %v", err)
	}
	if asset.RelativePath != "doc/img1.png" {
		t.Errorf("expected doc/img1.png, got %s", asset.RelativePath)
	}

	stored, err := os.ReadFile(filepath.Join(ws, "doc", "img1.png"))
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if string(stored) != "B2" {
		t.Errorf("expected second write to win, got %q", stored)
	}
}

func TestAssetService_SavePastedAsset_ReusesExistingDirectory(t *testing.T) {
	ws := t.TempDir()
	docPath := filepath.Join(ws, "doc.md")
	existing := filepath.Join(ws, "doc", "keep.png")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewAssetService(repository.NewAssetRepository(repository.NewWorkspaceRepository()))
	if _, err := svc.SavePastedAsset(context.Background(), docPath, "img2", []byte("new"), "jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(existing)
	if err != nil || string(data) != "keep" {
		t.Errorf("existing asset disturbed: %q, %v", data, err)
	}
}

func TestAssetService_SavePastedAsset_InvalidDocumentPath(t *testing.T) {
	writer := mocks.NewMockAssetWriter()
	svc := NewAssetService(writer)

	for _, path := range []string{"", "/", "/ws/.md"} {
		_, err := svc.SavePastedAsset(context.Background(), path, "img1", []byte("B1"), "png")
		if !errors.Is(err, domain.ErrInvalidPath) {
			t.Errorf("path %q: expected invalid path, got %v", path, err)
		}
	}

	if calls := writer.GetCalls(); len(calls) != 0 {
		t.Errorf("expected no writes, got %d", len(calls))
	}
}

func TestAssetService_SavePastedAsset_RejectsEscapingNames(t *testing.T) {
	writer := mocks.NewMockAssetWriter()
	svc := NewAssetService(writer)

	tests := []struct {
		name string
		ext  string
	}{
		{"../evil", "png"},
		{"sub/img", "png"},
		{"img", "png/../x"},
		{"..", "png"},
	}

	for _, tt := range tests {
		_, err := svc.SavePastedAsset(context.Background(), "/ws/doc.md", tt.name, []byte("x"), tt.ext)
		if !errors.Is(err, domain.ErrInvalidPath) {
			t.Errorf("%q.%q: expected invalid path, got %v", tt.name, tt.ext, err)
		}
	}

	if calls := writer.GetCalls(); len(calls) != 0 {
		t.Errorf("expected no writes, got %d", len(calls))
	}
}

func TestAssetService_SavePastedAsset_GeneratesNameAndDefaultsExtension(t *testing.T) {
	writer := mocks.NewMockAssetWriter()
	svc := NewAssetService(writer)

	asset, err := svc.SavePastedAsset(context.Background(), "/ws/talk.md", "", []byte("x"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(asset.Name) != 12 {
		t.Errorf("expected 12 character generated name, got %q", asset.Name)
	}
	if asset.Extension != "png" {
		t.Errorf("expected png default, got %q", asset.Extension)
	}
	if asset.RelativePath != "talk/"+asset.Name+".png" {
		t.Errorf("unexpected reference %s", asset.RelativePath)
	}

	calls := writer.GetCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write, got %d", len(calls))
	}
	if calls[0].Dir != filepath.Join("/ws", "talk") {
		t.Errorf("unexpected dir %s", calls[0].Dir)
	}
}

func TestAssetService_SavePastedAsset_KeepsExtensionCase(t *testing.T) {
	writer := mocks.NewMockAssetWriter()
	svc := NewAssetService(writer)

	asset, err := svc.SavePastedAsset(context.Background(), "/ws/doc.md", "img", []byte("x"), ".PNG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.RelativePath != "doc/img.PNG" {
		t.Errorf("expected doc/img.PNG, got %s", asset.RelativePath)
	}
}

func TestAssetService_SavePastedAsset_WriteFailure(t *testing.T) {
	writer := mocks.NewMockAssetWriter()
	writer.SetShouldFail(true, nil)
	svc := NewAssetService(writer)

	_, err := svc.SavePastedAsset(context.Background(), "/ws/doc.md", "img1", []byte("x"), "png")
	if !errors.Is(err, domain.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}

func TestAssetService_ImportFile(t *testing.T) {
	ws := t.TempDir()
	src := filepath.Join(t.TempDir(), "Screenshot.JPG")
	if err := os.WriteFile(src, []byte("jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewAssetService(repository.NewAssetRepository(repository.NewWorkspaceRepository()))
	asset, err := svc.ImportFile(context.Background(), filepath.Join(ws, "doc.md"), src, "shot", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.RelativePath != "doc/shot.jpg" {
		t.Errorf("expected doc/shot.jpg, got %s", asset.RelativePath)
	}

	// An explicit extension wins over the source name
	asset, err = svc.ImportFile(context.Background(), filepath.Join(ws, "doc.md"), src, "shot", ".jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.RelativePath != "doc/shot.jpeg" {
		t.Errorf("expected doc/shot.jpeg, got %s", asset.RelativePath)
	}
	if _, err := os.Stat(filepath.Join(ws, "doc", "shot.jpeg")); err != nil {
		t.Errorf("asset not written under the explicit extension: %v", err)
	}

	_, err = svc.ImportFile(context.Background(), filepath.Join(ws, "doc.md"), filepath.Join(ws, "missing.png"), "", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAssetService_ListAssets(t *testing.T) {
	ws := t.TempDir()
	docPath := filepath.Join(ws, "doc.md")
	svc := NewAssetService(repository.NewAssetRepository(repository.NewWorkspaceRepository()))
	ctx := context.Background()

	assets, err := svc.ListAssets(ctx, docPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("expected no assets, got %v", assets)
	}

	for _, name := range []string{"b", "a"} {
		if _, err := svc.SavePastedAsset(ctx, docPath, name, []byte(name), "png"); err != nil {
			t.Fatal(err)
		}
	}

	assets, err = svc.ListAssets(ctx, docPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 2 || assets[0].Name != "a.png" {
		t.Errorf("unexpected assets %+v", assets)
	}
}
