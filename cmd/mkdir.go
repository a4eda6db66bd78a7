package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/pkg/ui"
)

var mkdirParents bool

var mkdirCmd = &cobra.Command{
	Use:   "mkdir PATH",
	Short: "Create a folder in the workspace",
	Long: `Create a folder, including any missing parents.

Fails if anything already exists at PATH. With -p an existing
path is accepted silently.

Examples:
  mdslide mkdir talks/2025
  mdslide mkdir -p talks`,
	Args: cobra.ExactArgs(1),
	RunE: runMkdir,
}

func init() {
	mkdirCmd.Flags().BoolVarP(&mkdirParents, "parents", "p", false, "No error if the folder exists")
}

func runMkdir(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	path := resolvePath(args[0])

	if mkdirParents {
		if err := workspaceRepo.EnsureDirectory(ctx, path); err != nil {
			return err
		}
	} else if err := workspaceRepo.CreateDirectory(ctx, path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Folder ready: "+relativeToWorkspace(path)))
	return nil
}
