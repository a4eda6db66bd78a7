package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdslide/mdslide/internal/core/domain"
)

const (
	// ConfigFileName lives directly in the user's home directory
	ConfigFileName = ".mdslide_config.json"

	// DefaultWorkspaceDir is the workspace folder created under home on first run
	DefaultWorkspaceDir = "mdslide"
)

// HomeProvider returns the current user's home directory
type HomeProvider func() (string, error)

// OSHome looks the home directory up from the environment
func OSHome() (string, error) {
	return os.UserHomeDir()
}

// StaticHome returns a provider that always yields dir
func StaticHome(dir string) HomeProvider {
	return func() (string, error) {
		return dir, nil
	}
}

// Paths holds the fixed per-user locations
type Paths struct {
	home string
}

// New resolves the home directory once and returns the derived paths
func New(home HomeProvider) (*Paths, error) {
	if home == nil {
		home = OSHome
	}
	dir, err := home()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	if dir == "" {
		return nil, fmt.Errorf("failed to get home directory: empty path")
	}
	return &Paths{home: dir}, nil
}

// Home returns the resolved home directory
func (p *Paths) Home() string {
	return p.home
}

// ConfigPath returns <home>/.mdslide_config.json, independent of the workspace root
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.home, ConfigFileName)
}

// Stem returns the base name of documentPath without its final extension.
// "/ws/doc.md" -> "doc", "/ws/archive.tar.gz" -> "archive.tar"
func Stem(documentPath string) (string, error) {
	if documentPath == "" {
		return "", domain.InvalidPath("stem", documentPath, "empty path")
	}

	base := filepath.Base(documentPath)
	if base == "." || base == string(filepath.Separator) || base == ".." {
		return "", domain.InvalidPath("stem", documentPath, "path has no file name")
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "", domain.InvalidPath("stem", documentPath, "file name has no stem")
	}
	return stem, nil
}

// AssetDirFor returns parent(documentPath)/stem(documentPath) without touching storage
func AssetDirFor(documentPath string) (string, error) {
	stem, err := Stem(documentPath)
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(documentPath), stem), nil
}

// RelativeAssetRef returns "<stem>/<name>.<ext>" with forward slashes for embedding
func RelativeAssetRef(stem, name, ext string) string {
	return stem + "/" + name + "." + ext
}

// ValidateComponent rejects names that would escape their directory
func ValidateComponent(op, name string) error {
	if name == "" {
		return domain.InvalidPath(op, name, "empty name")
	}
	if name == "." || name == ".." || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) {
		return domain.InvalidPath(op, name, "name must not contain path separators or '..'")
	}
	return nil
}
