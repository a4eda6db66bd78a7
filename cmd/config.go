package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdslide/mdslide/pkg/config"
	"github.com/mdslide/mdslide/pkg/ui"
)

var configShowYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the mdslide settings",
	Long: `Show or change the settings stored in ~/.mdslide_config.json.

The record is saved whole on every change.

Examples:
  mdslide config show
  mdslide config set font_size 16
  mdslide config reset`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configShowYAML {
			out, err := appConfig.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		}

		table := ui.NewTable([]ui.TableColumn{{Header: "KEY"}, {Header: "VALUE"}})
		for _, key := range config.Keys {
			value, err := appConfig.Get(key)
			if err != nil {
				return err
			}
			table.AddRow(key, value)
		}
		fmt.Fprint(cmd.OutOrStdout(), table.Render())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file location",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationConfig: configOptional},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appConfig.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := appConfig.Save(configPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("%s = %s", args[0], args[1])))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:         "reset",
	Short:       "Restore the default settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationConfig: configOptional},
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig = config.DefaultConfig(appPaths.Home())
		if err := appConfig.Save(configPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Settings reset: "+configPath))
		return nil
	},
}

var configJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Print the settings as stored on disk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := json.MarshalIndent(appConfig, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowYAML, "yaml", false, "Print as YAML")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configJSONCmd)
}
