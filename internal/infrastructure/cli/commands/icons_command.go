package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/diceroll-go/internal/app"
	"github.com/doeshing/diceroll-go/internal/infrastructure/icons"
)

// NewIconsCommand creates the icons command, which writes the embedded die
// icons to disk for launchers that reference icons by path.
func NewIconsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "icons [dir]",
		Short: "Write die icons to disk and print their paths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := container.Icons
			if len(args) == 1 {
				resolver = icons.NewResolver(args[0])
			}
			if resolver == nil {
				return errors.New(ErrIconsUnavailable)
			}
			paths, err := resolver.Materialize()
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
