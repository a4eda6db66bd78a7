package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/pkg/ui"
)

var newTitle string

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [DIR]",
	Short: "Create an empty slide document",
	Long: `Create an empty markdown document named after the current time,
e.g. 20251128-141503.md. Never overwrites an existing file.

The folder is created if needed. Defaults to the workspace root.
With --title the first slide starts with that heading.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Heading of the first slide")
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	dir := dirArg(args)

	if err := workspaceRepo.EnsureDirectory(ctx, dir); err != nil {
		return err
	}

	path, err := documentService.Create(ctx, dir, time.Now())
	if err != nil {
		return err
	}

	if newTitle != "" {
		if err := documentService.Save(ctx, path, "# "+newTitle+"\n"); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Document created: "+relativeToWorkspace(path)))
	return nil
}
