package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/diceroll-go/internal/app"
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/infrastructure/cli/helpers"
)

// NewInitCommand creates the init command, an interactive walk through the
// launcher preferences that also writes the die icons to disk.
func NewInitCommand(container *app.Container) *cobra.Command {
	var acceptDefaults bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up diceroll preferences and icons",
		Long: `Walk through the diceroll preferences and save them to the config file.

Each prompt shows the current value; press Enter to keep it. The die icons are
written to the icons directory so launchers that need file paths can use them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, container, acceptDefaults)
		},
	}

	cmd.Flags().BoolVarP(&acceptDefaults, "yes", "y", false, "Keep current values without prompting")

	return cmd
}

func runInit(cmd *cobra.Command, container *app.Container, acceptDefaults bool) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}

	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if !acceptDefaults {
		reader := bufio.NewReader(cmd.InOrStdin())
		cfg = promptForPreferences(cmd.OutOrStdout(), reader, cfg)
	}

	if err := helpers.SaveConfigWithValidation(container, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nConfiguration saved: %s\n", loader.Path())

	if container.Icons != nil {
		paths, err := container.Icons.Materialize()
		if err != nil {
			return fmt.Errorf("failed to write icons: %w", err)
		}
		fmt.Fprintf(out, "Icons written: %d in %s\n", len(paths), container.Icons.Dir())
	}

	fmt.Fprintln(out, "\nTry it:")
	fmt.Fprintln(out, "  diceroll 2d6 1d20")
	fmt.Fprintln(out, "  diceroll launch")
	return nil
}

func promptForPreferences(out io.Writer, reader *bufio.Reader, cfg domain.Config) domain.Config {
	fmt.Fprintln(out, "Launcher preferences:")

	// the trailing space in the stored trigger is significant to hosts
	trigger := helpers.PromptForChoice(out, reader, "Trigger keyword", strings.TrimSpace(cfg.Launcher.Trigger))
	cfg.Launcher.Trigger = ""
	if trigger = strings.TrimSpace(trigger); trigger != "" {
		cfg.Launcher.Trigger = trigger + " "
	}

	cfg.Launcher.CopyAction = helpers.PromptForChoice(out, reader,
		"Copy on activate (total/rolls)?", cfg.Launcher.CopyAction)
	cfg.Output.Format = helpers.PromptForChoice(out, reader,
		"Output format (text/json)?", cfg.Output.Format)
	cfg.Output.Color = helpers.PromptForChoice(out, reader,
		"Color (auto/always/never)?", cfg.Output.Color)

	if helpers.PromptForYesNo(out, reader, "Enable debug logging?", cfg.Logging.Level == "debug") {
		cfg.Logging.Level = "debug"
	} else if cfg.Logging.Level == "debug" {
		cfg.Logging.Level = domain.DefaultLogLevel
	}

	return cfg
}
