package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/ui"
)

// errCancelled is returned when the user backs out of a picker or prompt
var errCancelled = errors.New("operation cancelled")

// workspaceRoot returns the configured workspace directory
func workspaceRoot() string {
	return appConfig.WorkspacePath
}

// resolvePath makes arg absolute. Relative paths are taken from the workspace root.
func resolvePath(arg string) string {
	if arg == "" {
		return workspaceRoot()
	}
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Join(workspaceRoot(), arg)
}

// dirArg returns the directory named by the first argument, or the workspace root
func dirArg(args []string) string {
	if len(args) == 0 {
		return workspaceRoot()
	}
	return resolvePath(args[0])
}

// relativeToWorkspace shortens path for display
func relativeToWorkspace(path string) string {
	rel, err := filepath.Rel(workspaceRoot(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// confirm asks a y/n question on out and reads the answer from in
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, ui.StyleWarning.Render(question+" (y/n): "))

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(response))
	return answer == "y" || answer == "yes"
}

// selectDocument picks a markdown document from the workspace with the fuzzy finder
func selectDocument() (string, error) {
	docs, err := treeService.Documents(getContext(), workspaceRoot())
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", domain.NotFound("select_document", workspaceRoot())
	}

	idx, err := fuzzyfinder.Find(
		docs,
		func(i int) string {
			return relativeToWorkspace(docs[i].Path)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return documentPreview(docs[i].Path, h)
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return "", errCancelled
	}
	return docs[idx].Path, nil
}

// documentPreview returns the first lines of a document for the picker
func documentPreview(path string, lines int) string {
	doc, err := documentService.Open(getContext(), path)
	if err != nil {
		return err.Error()
	}

	content := strings.Split(doc.Content, "\n")
	if lines > 0 && len(content) > lines {
		content = content[:lines]
	}
	return strings.Join(content, "\n")
}

// documentArg returns the document named by args[0], or asks the user to pick one
func documentArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return resolvePath(args[0]), nil
	}
	return selectDocument()
}

// cancelled reports a backed-out picker as a normal exit
func cancelled(err error) bool {
	if errors.Is(err, errCancelled) {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return true
	}
	return false
}

// resolveSource makes a source file argument absolute relative to the working directory
func resolveSource(arg string) string {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return arg
	}
	return abs
}
