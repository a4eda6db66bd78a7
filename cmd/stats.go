package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/core/services"
	"github.com/mdslide/mdslide/pkg/logging"
	"github.com/mdslide/mdslide/pkg/slides"
	"github.com/mdslide/mdslide/pkg/ui"
)

var statsChart string

var statsCmd = &cobra.Command{
	Use:   "stats [DIR]",
	Short: "Count documents, slides, images and folders",
	Long: `Count the folders, markdown documents, slides and images in the workspace.

With --chart, also write an HTML bar chart to the given file.

Examples:
  mdslide stats
  mdslide stats --chart stats.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "Write an HTML bar chart to this file")
}

func runStats(cmd *cobra.Command, args []string) error {
	dir := dirArg(args)

	ctx := getContext()
	stats, err := treeService.Count(ctx, dir)
	if err != nil {
		return err
	}

	// Slides need the document contents
	docs, err := treeService.Documents(ctx, dir)
	if err != nil {
		return err
	}
	totalSlides := 0
	for _, d := range docs {
		doc, err := documentService.Open(ctx, d.Path)
		if err != nil {
			logging.Warn("Stats", "skipping %s: %v", d.Path, err)
			continue
		}
		totalSlides += slides.Count(doc.Content)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.FormatTitle("Workspace: "+dir))
	fmt.Fprintln(out, ui.RenderKeyValue("Documents", fmt.Sprint(stats.Documents)))
	fmt.Fprintln(out, ui.RenderKeyValue("Slides", fmt.Sprint(totalSlides)))
	fmt.Fprintln(out, ui.RenderKeyValue("Images", fmt.Sprint(stats.Images)))
	fmt.Fprintln(out, ui.RenderKeyValue("Folders", fmt.Sprint(stats.Directories)))

	if statsChart == "" {
		return nil
	}

	f, err := os.Create(statsChart)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := renderStatsChart(f, dir, stats, totalSlides); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Fprintln(out, ui.FormatSuccess("Chart written: "+statsChart))
	return nil
}

// renderStatsChart writes a standalone HTML bar chart of the counts
func renderStatsChart(w io.Writer, dir string, stats *services.Stats, totalSlides int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "mdslide workspace",
			Subtitle: dir,
		}),
	)

	bar.SetXAxis([]string{"Documents", "Slides", "Images", "Folders"}).
		AddSeries("Count", []opts.BarData{
			{Value: stats.Documents},
			{Value: totalSlides},
			{Value: stats.Images},
			{Value: stats.Directories},
		})

	return bar.Render(w)
}
