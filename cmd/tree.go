package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/services"
	"github.com/mdslide/mdslide/pkg/ui"
)

var treeDepth int

var treeCmd = &cobra.Command{
	Use:     "tree [DIR]",
	Aliases: []string{"ls"},
	Short:   "Show the workspace tree",
	Long: `Show folders, markdown documents and images, folders first.

Examples:
  mdslide tree
  mdslide tree talks --depth 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", services.Unlimited, "Levels to expand (-1 for all)")
}

func runTree(cmd *cobra.Command, args []string) error {
	dir := dirArg(args)

	entries, err := treeService.Walk(getContext(), dir, treeDepth)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.StyleAccent.Render(dir))
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.FormatMuted("(empty)"))
		return nil
	}
	fmt.Fprint(out, ui.RenderTree(entries))
	return nil
}
