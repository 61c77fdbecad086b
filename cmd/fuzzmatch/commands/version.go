package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzmatch/display"
	"github.com/teranos/fuzzmatch/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the fuzzmatch version, commit hash, build time and platform.`,
	RunE:  runVersionCommand,
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.Get()

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(info)
	}

	fmt.Println(info.String())
	fmt.Printf("Platform: %s\n", info.Platform)
	fmt.Printf("Go: %s\n", info.GoVersion)
	return nil
}
