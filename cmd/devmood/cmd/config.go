package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/devmood/internal/config"
	"github.com/iiroan/devmood/internal/ui"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the devmood config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default devmood.yaml",
	Long: `Write the default configuration to the --config path, or to
devmood.yaml in the user config directory. An existing file is kept unless
--force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		if err := config.WriteDefault(path, configForce); err != nil {
			if errors.Is(err, config.ErrExists) {
				fmt.Println(ui.WarningStyle.Render("! " + path + " already exists (use --force to overwrite)"))
				return nil
			}
			return err
		}
		fmt.Println(ui.SuccessStyle.Render("✓ Wrote " + path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func configFilePath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("locating config: %w", err)
	}
	return path, nil
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
