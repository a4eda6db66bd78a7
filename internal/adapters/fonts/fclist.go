package fonts

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mdslide/mdslide/internal/core/ports"
)

// FCList implements the FontSource port using fontconfig's fc-list
type FCList struct {
	binary string
}

// NewFCList creates a font source that shells out to fc-list
func NewFCList() *FCList {
	return &FCList{binary: "fc-list"}
}

// Ensure it implements the interface
var _ ports.FontSource = (*FCList)(nil)

// Families returns every installed family name reported by fc-list
func (f *FCList) Families(ctx context.Context) ([]string, error) {
	path, err := exec.LookPath(f.binary)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", f.binary, err)
	}

	out, err := exec.CommandContext(ctx, path, ":", "family").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to query font families: %w", err)
	}

	return ParseFamilies(string(out)), nil
}

// IsAvailable checks if fc-list is installed
func IsAvailable() bool {
	_, err := exec.LookPath("fc-list")
	return err == nil
}

// ParseFamilies splits fc-list output into family names.
// A line may carry several comma-separated localized names; each is returned.
func ParseFamilies(output string) []string {
	var families []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		for _, name := range strings.Split(scanner.Text(), ",") {
			name = strings.TrimSpace(strings.ReplaceAll(name, `\-`, "-"))
			if name != "" {
				families = append(families, name)
			}
		}
	}
	return families
}
