package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/diceroll-go/internal/ports"
	"github.com/doeshing/diceroll-go/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand(plugin ports.LauncherPlugin) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show diceroll version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.OutOrStdout(), plugin)
		},
	}
}

// displayVersionInformation displays version information
func displayVersionInformation(out io.Writer, plugin ports.LauncherPlugin) error {
	fmt.Fprintf(out, "diceroll version %s\n", version.Version)

	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}

	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}

	if plugin != nil {
		info := plugin.Info()
		fmt.Fprintf(out, "Plugin: %s (%s)\n", info.Name, info.ID)
		fmt.Fprintf(out, "Synopsis: %s\n", info.Synopsis)
	}

	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	return nil
}
