package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdslide/mdslide/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist, stat err = %v", path, err)
	}
}

func TestEnsureDirectory_Idempotent(t *testing.T) {
	repo := NewWorkspaceRepository()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	for i := 0; i < 2; i++ {
		if err := repo.EnsureDirectory(ctx, path); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, err = %v", path, err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to read parent: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one entry, got %d", len(entries))
	}
}

func TestEnsureDirectory_ExistingFileIsNoop(t *testing.T) {
	repo := NewWorkspaceRepository()
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "keep me")

	if err := repo.EnsureDirectory(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, path); got != "keep me" {
		t.Errorf("file modified: %q", got)
	}
}

func TestCreateDirectory(t *testing.T) {
	repo := NewWorkspaceRepository()
	ctx := context.Background()
	root := t.TempDir()

	t.Run("creates full chain", func(t *testing.T) {
		path := filepath.Join(root, "new", "nested")
		if err := repo.CreateDirectory(ctx, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			t.Fatalf("expected directory, err = %v", err)
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		path := filepath.Join(root, "taken")
		writeFile(t, filepath.Join(path, "inside.md"), "content")

		err := repo.CreateDirectory(ctx, path)
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("expected already exists, got %v", err)
		}
		if got := readFile(t, filepath.Join(path, "inside.md")); got != "content" {
			t.Errorf("existing entry modified: %q", got)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(root, "file.md")
		writeFile(t, path, "content")

		err := repo.CreateDirectory(ctx, path)
		if domain.KindOf(err) != domain.KindAlreadyExists {
			t.Fatalf("expected already exists, got %v", err)
		}
		if got := readFile(t, path); got != "content" {
			t.Errorf("existing file modified: %q", got)
		}
	})
}

func TestRename(t *testing.T) {
	repo := NewWorkspaceRepository()
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		root := t.TempDir()
		oldPath := filepath.Join(root, "old.md")
		newPath := filepath.Join(root, "new.md")
		writeFile(t, oldPath, "# slides")

		if err := repo.Rename(ctx, oldPath, newPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertMissing(t, oldPath)
		if got := readFile(t, newPath); got != "# slides" {
			t.Errorf("content not preserved: %q", got)
		}
	})

	t.Run("directory", func(t *testing.T) {
		root := t.TempDir()
		oldPath := filepath.Join(root, "talks")
		newPath := filepath.Join(root, "archive")
		writeFile(t, filepath.Join(oldPath, "a.md"), "a")

		if err := repo.Rename(ctx, oldPath, newPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertMissing(t, oldPath)
		if got := readFile(t, filepath.Join(newPath, "a.md")); got != "a" {
			t.Errorf("content not preserved: %q", got)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		root := t.TempDir()
		err := repo.Rename(ctx, filepath.Join(root, "ghost.md"), filepath.Join(root, "new.md"))
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		assertMissing(t, filepath.Join(root, "new.md"))
	})

	t.Run("destination exists", func(t *testing.T) {
		root := t.TempDir()
		oldPath := filepath.Join(root, "old.md")
		newPath := filepath.Join(root, "new.md")
		writeFile(t, oldPath, "old")
		writeFile(t, newPath, "new")

		err := repo.Rename(ctx, oldPath, newPath)
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("expected already exists, got %v", err)
		}
		if readFile(t, oldPath) != "old" || readFile(t, newPath) != "new" {
			t.Error("contents changed after refused rename")
		}
	})

	t.Run("empty destination", func(t *testing.T) {
		root := t.TempDir()
		oldPath := filepath.Join(root, "old.md")
		writeFile(t, oldPath, "old")

		if err := repo.Rename(ctx, oldPath, ""); !errors.Is(err, domain.ErrInvalidPath) {
			t.Fatalf("expected invalid path, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	repo := NewWorkspaceRepository()
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.md")
		writeFile(t, path, "x")

		if err := repo.Delete(ctx, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertMissing(t, path)
	})

	t.Run("non-empty directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc")
		writeFile(t, filepath.Join(path, "img1.png"), "png")
		writeFile(t, filepath.Join(path, "deep", "img2.png"), "png")

		if err := repo.Delete(ctx, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertMissing(t, path)
	})

	t.Run("missing", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "keep.md"), "keep")

		err := repo.Delete(ctx, filepath.Join(root, "ghost.md"))
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}

		entries, _ := os.ReadDir(root)
		if len(entries) != 1 || readFile(t, filepath.Join(root, "keep.md")) != "keep" {
			t.Error("filesystem changed after failed delete")
		}
	})
}

func TestExists(t *testing.T) {
	repo := NewWorkspaceRepository()
	ctx := context.Background()
	root := t.TempDir()

	exists, err := repo.Exists(ctx, root)
	if err != nil || !exists {
		t.Errorf("Exists(root) = %v, %v", exists, err)
	}

	exists, err = repo.Exists(ctx, filepath.Join(root, "nope"))
	if err != nil || exists {
		t.Errorf("Exists(missing) = %v, %v", exists, err)
	}
}

func TestMutator_EmptyPathAndCancelledContext(t *testing.T) {
	repo := NewWorkspaceRepository()

	if err := repo.EnsureDirectory(context.Background(), ""); !errors.Is(err, domain.ErrInvalidPath) {
		t.Errorf("expected invalid path, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "never")
	if err := repo.CreateDirectory(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	assertMissing(t, path)
}
