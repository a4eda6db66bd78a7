package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/ui"
)

var mvWithAssets bool

var mvCmd = &cobra.Command{
	Use:     "mv OLD NEW",
	Aliases: []string{"rename"},
	Short:   "Rename or move a file or folder",
	Long: `Rename or move a file or folder. Never overwrites an existing target.

A bare NEW name renames in place: "mv decks/talk.md keynote.md" gives
decks/keynote.md. A NEW path is taken from the workspace root.

With --with-assets a document's asset folder is renamed along with it,
so "talk.md" -> "keynote.md" also moves "talk/" -> "keynote/".
References inside the document are not rewritten.

Examples:
  mdslide mv talk.md keynote.md
  mdslide mv --with-assets talk.md keynote.md`,
	Args: cobra.ExactArgs(2),
	RunE: runMv,
}

func init() {
	mvCmd.Flags().BoolVar(&mvWithAssets, "with-assets", false, "Also rename the document's asset folder")
}

func runMv(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	oldPath := resolvePath(args[0])
	newPath := resolvePath(args[1])
	inPlace := !strings.ContainsAny(args[1], `/\`)
	if inPlace {
		newPath = filepath.Join(filepath.Dir(oldPath), args[1])
	}

	var err error
	switch {
	case domain.IsDocumentPath(oldPath) && inPlace:
		newPath, err = documentService.Rename(ctx, oldPath, args[1], mvWithAssets)
	case domain.IsDocumentPath(oldPath):
		err = documentService.Move(ctx, oldPath, newPath, mvWithAssets)
	default:
		err = workspaceRepo.Rename(ctx, oldPath, newPath)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("Renamed %s -> %s",
		relativeToWorkspace(oldPath), relativeToWorkspace(newPath))))
	return nil
}
