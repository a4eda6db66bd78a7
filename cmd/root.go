package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/internal/adapters/fonts"
	"github.com/mdslide/mdslide/internal/adapters/repository"
	"github.com/mdslide/mdslide/internal/core/services"
	"github.com/mdslide/mdslide/pkg/config"
	"github.com/mdslide/mdslide/pkg/logging"
	"github.com/mdslide/mdslide/pkg/ui"
	"github.com/mdslide/mdslide/pkg/workspace"
)

// annotationConfig marks commands that must run even when the config file is broken
const (
	annotationConfig = "config"
	configOptional   = "optional"
)

var (
	// Resolved per-user locations and settings
	appPaths   *workspace.Paths
	appConfig  *config.AppConfig
	configPath string

	// Repositories
	workspaceRepo *repository.WorkspaceRepository
	documentRepo  *repository.DocumentRepository
	assetRepo     *repository.AssetRepository

	// Services
	assetService    *services.AssetService
	documentService *services.DocumentService
	treeService     *services.TreeService
	fontService     *services.FontService

	// Global flags
	verbose        bool
	configOverride string
	theme          string

	// homeProvider is swapped in tests
	homeProvider = workspace.OSHome
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdslide",
	Short: "mdslide - Markdown slide workspace manager",
	Long: ui.StyleTitle.Render("mdslide") + " - Markdown Slide Workspace\n\n" +
		"Manage a workspace of markdown slide decks from the terminal.\n" +
		"Pasted images live next to the deck that embeds them.",
	PersistentPreRunE: initializeApp,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and runs it.
// Errors are printed once here and the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatErr(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(slidesCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configOverride, "config", "", "Config file (default ~/"+workspace.ConfigFileName+")")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "auto", "Color theme: auto, dark or light")
}

// initializeApp resolves paths, loads the config and wires adapters into services
func initializeApp(cmd *cobra.Command, args []string) error {
	initLogging()

	t, err := ui.ParseTheme(theme)
	if err != nil {
		return err
	}
	ui.SetTheme(t)

	p, err := workspace.New(homeProvider)
	if err != nil {
		return err
	}
	appPaths = p

	configPath = p.ConfigPath()
	if configOverride != "" {
		configPath = configOverride
	}

	cfg, err := config.Load(configPath, p.Home())
	if err != nil {
		if cmd.Annotations[annotationConfig] != configOptional {
			return err
		}
		logging.Warn("Config", "falling back to defaults: %v", err)
		cfg = config.DefaultConfig(p.Home())
	}
	appConfig = cfg

	// Initialize repositories
	workspaceRepo = repository.NewWorkspaceRepository()
	documentRepo = repository.NewDocumentRepository()
	assetRepo = repository.NewAssetRepository(workspaceRepo)

	// Initialize services
	assetService = services.NewAssetService(assetRepo)
	documentService = services.NewDocumentService(documentRepo, workspaceRepo)
	treeService = services.NewTreeService(documentRepo)
	fontService = services.NewFontService(fonts.NewFCList())

	logging.Debug("App", "config=%s workspace=%s", configPath, appConfig.WorkspacePath)
	return nil
}

// initLogging honours --verbose first, then MDSLIDE_LOG_LEVEL
func initLogging() {
	level := logging.ParseLevel(os.Getenv("MDSLIDE_LOG_LEVEL"))
	if verbose {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
