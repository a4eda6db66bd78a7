package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/domain"
	"github.com/mdslide/mdslide/pkg/ui"
)

var (
	rmForce      bool
	rmWithAssets bool
)

var rmCmd = &cobra.Command{
	Use:     "rm [PATH]",
	Aliases: []string{"delete"},
	Short:   "Delete a file or folder",
	Long: `Delete a file, or a folder and everything in it.

Asks for confirmation when confirm_delete is on, unless --force is given.
A document's asset folder is kept unless --with-assets is given.
Without PATH, pick a document with the fuzzy finder.

Examples:
  mdslide rm old-talk.md
  mdslide rm --with-assets old-talk.md
  mdslide rm --force drafts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Do not ask for confirmation")
	rmCmd.Flags().BoolVar(&rmWithAssets, "with-assets", false, "Also delete the document's asset folder")
}

func runRm(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	// 1. Select target
	path, err := documentArg(args)
	if err != nil {
		if cancelled(err) {
			return nil
		}
		return err
	}

	exists, err := workspaceRepo.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound("delete", path)
	}

	// 2. Confirmation
	if appConfig.ConfirmDelete && !rmForce {
		question := fmt.Sprintf("Delete %s?", relativeToWorkspace(path))
		if rmWithAssets {
			question = fmt.Sprintf("Delete %s and its assets?", relativeToWorkspace(path))
		}
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	// 3. Delete
	if rmWithAssets && domain.IsDocumentPath(path) {
		if err := documentService.Delete(ctx, path, true); err != nil {
			return err
		}
	} else if err := workspaceRepo.Delete(ctx, path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Deleted "+relativeToWorkspace(path)))
	return nil
}
