package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/doeshing/diceroll-go/internal/app"
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	rootOpts := newRollOptions(container)
	root := &cobra.Command{
		Use:   "diceroll [query]",
		Short: "Roll dice from <amount>d<sides> notation",
		Long: "diceroll parses whitespace-separated <amount>d<sides> tokens (e.g. 2d6 3d8)\n" +
			"and prints one result per token plus an overall total.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootOpts.bind(root.Flags())

	root.AddCommand(newRollCommand(container))
	root.AddCommand(newLaunchCommand(container))
	root.AddCommand(commands.NewInitCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewIconsCommand(container))
	root.AddCommand(commands.NewVersionCommand(container.Plugin))
	return root, nil
}

func newRollCommand(container *app.Container) *cobra.Command {
	opts := newRollOptions(container)
	cmd := &cobra.Command{
		Use:     "roll [query]",
		Short:   "Roll dice, e.g. roll 2d6 1d20",
		Example: "  diceroll roll 2d6 3d8\n  diceroll roll --copy --action rolls 4d6",
		RunE:    opts.run,
	}
	opts.bind(cmd.Flags())
	return cmd
}

type rollOptions struct {
	container *app.Container

	copy    bool
	sel     int
	action  string
	format  string
	seed    uint64
	trigger string
}

func newRollOptions(container *app.Container) *rollOptions {
	return &rollOptions{container: container}
}

func (o *rollOptions) bind(flags *pflag.FlagSet) {
	flags.BoolVarP(&o.copy, "copy", "c", false, "Copy the selected entry to the clipboard")
	flags.IntVarP(&o.sel, "select", "s", 0, "1-based entry to copy (default: overall total, else first roll)")
	flags.StringVar(&o.action, "action", "", "What to copy: total|rolls (default from config)")
	flags.StringVar(&o.format, "format", "", "Output format: text|json (default from config)")
	flags.Uint64Var(&o.seed, "seed", 0, "Seed the random source for reproducible rolls")
	flags.StringVar(&o.trigger, "trigger", o.container.Config.Launcher.Trigger, "Launcher keyword stripped from the front of the query")
}

func (o *rollOptions) run(cmd *cobra.Command, args []string) error {
	cfg := o.container.Config
	format, err := cfg.ResolveFormat(o.format)
	if err != nil {
		return err
	}

	service := o.container.QueryService
	if cmd.Flags().Changed("seed") {
		service = o.container.Seeded(o.seed)
	}

	resp, err := service.Run(domain.QueryRequest{
		Context:    cmd.Context(),
		Query:      strings.Join(args, " "),
		Trigger:    o.trigger,
		Activate:   o.copy || cmd.Flags().Changed("select"),
		Select:     o.sel,
		CopyAction: o.action,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := NewRenderer(out, cfg.ColorEnabled(isTerminal(out)), o.container.Icons)
	return renderer.Render(resp, format)
}

func newLaunchCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "launch [query]",
		Short: "Open the interactive dice launcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.Config
			copyAction, err := cfg.ResolveCopyAction("")
			if err != nil {
				return err
			}
			launcher := NewLauncher(container.Plugin, container.Clipboard, cfg.Launcher.Trigger, copyAction, strings.Join(args, " "))
			return RunLauncher(launcher)
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
