package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/devmood/internal/ui"
	"github.com/iiroan/devmood/internal/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about devmood.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Current()
		if versionJSON {
			out, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		fmt.Println(ui.Header(info.Short()))
		fmt.Printf("Version:    %s\n", info.Version)
		fmt.Printf("Commit:     %s\n", info.Commit)
		fmt.Printf("Build Date: %s\n", info.BuildDate)
		fmt.Printf("Go Version: %s\n", info.GoVersion)
		fmt.Printf("OS/Arch:    %s\n", info.Platform)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print as JSON")
}
