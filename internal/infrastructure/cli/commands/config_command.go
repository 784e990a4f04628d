package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/diceroll-go/internal/app"
	configapp "github.com/doeshing/diceroll-go/internal/application/config"
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/diceroll-go/internal/infrastructure/config"
)

type configCommand struct {
	container *app.Container
}

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	c := &configCommand{container: container}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit diceroll configuration",
		Args:  cobra.NoArgs,
		RunE:  c.show,
	}

	cmd.AddCommand(
		&cobra.Command{Use: "show", Short: "Show full configuration", Args: cobra.NoArgs, RunE: c.show},
		&cobra.Command{Use: "get <key>", Short: "Get a value, e.g. launcher.copy_action", Args: cobra.MaximumNArgs(1), RunE: c.get},
		&cobra.Command{Use: "set <key> <value>", Short: "Set a value (YAML syntax accepted)", Args: cobra.MinimumNArgs(2), RunE: c.set},
		&cobra.Command{Use: "edit", Short: "Open the config file in $EDITOR", Args: cobra.NoArgs, RunE: c.edit},
		&cobra.Command{Use: "validate", Short: "Validate the config file", Args: cobra.NoArgs, RunE: c.validate},
		&cobra.Command{Use: "reset", Short: "Reset configuration to defaults", Args: cobra.NoArgs, RunE: c.reset},
		&cobra.Command{Use: "diff", Short: "Show differences from the default configuration", Args: cobra.NoArgs, RunE: c.diff},
		&cobra.Command{Use: "path", Short: "Print the config file path", Args: cobra.NoArgs, RunE: c.path},
	)

	return cmd
}

func (c *configCommand) load(cmd *cobra.Command) (domain.Config, error) {
	loader, err := helpers.GetConfigLoader(c.container)
	if err != nil {
		return domain.Config{}, err
	}
	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return domain.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func (c *configCommand) show(cmd *cobra.Command, _ []string) error {
	cfg, err := c.load(cmd)
	if err != nil {
		return err
	}
	return printYAML(cmd, cfg)
}

func (c *configCommand) get(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New(ErrKeyRequired)
	}
	cfg, err := c.load(cmd)
	if err != nil {
		return err
	}
	m, err := helpers.ConfigToMap(cfg)
	if err != nil {
		return err
	}
	value, ok := m.Get(args[0])
	if !ok {
		return fmt.Errorf("key %s not found in configuration", args[0])
	}
	return printYAML(cmd, value)
}

func (c *configCommand) set(cmd *cobra.Command, args []string) error {
	key := args[0]
	cfg, err := c.load(cmd)
	if err != nil {
		return err
	}
	m, err := helpers.ConfigToMap(cfg)
	if err != nil {
		return err
	}
	if !m.Set(key, helpers.ParseYAMLValue(strings.Join(args[1:], " "))) {
		return fmt.Errorf("unknown configuration key %s", key)
	}
	updated, err := m.Config()
	if err != nil {
		return err
	}
	if err := helpers.SaveConfigWithValidation(c.container, updated); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)
	return nil
}

func (c *configCommand) edit(cmd *cobra.Command, _ []string) error {
	loader, err := helpers.GetConfigLoader(c.container)
	if err != nil {
		return err
	}

	editor := os.Getenv(envKeyEditor)
	if editor == "" {
		editor = DefaultEditorCommand
	}
	run := exec.CommandContext(cmd.Context(), editor, loader.Path())
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	if err := run.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", editor, err)
	}
	return nil
}

func (c *configCommand) validate(cmd *cobra.Command, _ []string) error {
	cfg, err := c.load(cmd)
	if err == nil {
		err = configapp.Validate(cfg)
	}
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
	return nil
}

func (c *configCommand) reset(cmd *cobra.Command, _ []string) error {
	loader, err := helpers.GetConfigLoader(c.container)
	if err != nil {
		return err
	}
	if _, err := os.Stat(loader.Path()); err == nil {
		if backup, err := loader.Backup(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Previous configuration saved to %s\n", backup)
		}
	}
	defaults, err := loader.Reset()
	if err != nil {
		return fmt.Errorf("failed to reset configuration: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration reset at %s\n", loader.Path())
	return printYAML(cmd, defaults)
}

func (c *configCommand) diff(cmd *cobra.Command, _ []string) error {
	cfg, err := c.load(cmd)
	if err != nil {
		return err
	}
	if diff := cmp.Diff(configinfra.DefaultConfig(), cfg); diff != "" {
		fmt.Fprintln(cmd.OutOrStdout(), diff)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), MsgNoDifferencesFromDefault)
	return nil
}

func (c *configCommand) path(cmd *cobra.Command, _ []string) error {
	loader, err := helpers.GetConfigLoader(c.container)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
	return nil
}

func printYAML(cmd *cobra.Command, value interface{}) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
