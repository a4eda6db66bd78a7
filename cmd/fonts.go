package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/adapters/fonts"
	"github.com/mdslide/mdslide/pkg/ui"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List font families for the editor",
	Long: `List the font families that can be used as font_family.

The preferred monospace fonts are always listed. Installed families
are queried with fc-list when it is available.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !fonts.IsAvailable() {
			fmt.Fprintln(out, ui.FormatMuted("(fc-list not found, showing defaults)"))
		}

		for _, name := range fontService.List(getContext()) {
			if name == appConfig.FontFamily {
				fmt.Fprintln(out, ui.StyleSuccess.Render("* "+name))
				continue
			}
			fmt.Fprintln(out, "  "+name)
		}
		return nil
	},
}
