package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/renamer/internal/version"
	"github.com/arthur-debert/renamer/pkg/config"
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/arthur-debert/renamer/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries global flag values and the loaded configuration to the
// subcommands
type app struct {
	verbosity  int
	format     string
	configPath string

	cfg *config.Config
	fs  types.FS
}

// Run executes the command line in args and returns the process exit code.
// A failing command has its error printed to stderr in the output format
// resolved from the flags and configuration.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd, a := newRootCmd()
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	printer, perr := ui.NewPrinter(stderr, a.errorFormat())
	if perr != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", errors.UserMessage(err))
		return 1
	}
	_ = printer.Error(err)
	return 1
}

// errorFormat is the configured output format, or the --format flag when
// the configuration could not be loaded
func (a *app) errorFormat() ui.Format {
	if a.cfg != nil {
		return a.cfg.Format()
	}
	if f, err := ui.ParseFormat(a.format); err == nil {
		return f
	}
	return ui.FormatAuto
}

// newRootCmd creates the root command and the state its subcommands share
func newRootCmd() (*cobra.Command, *app) {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "renamer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = a.format
			}
			if f := cmd.Flags().Lookup("captures"); f != nil && f.Changed {
				overrides["pattern.captures"] = f.Value.String()
			}

			cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides})
			if err != nil {
				// Logging is not configured yet, keep the console usable for the error
				logging.Setup(logging.Options{Verbosity: a.verbosity, Console: cmd.ErrOrStderr()})
				return errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
			}
			a.cfg = cfg

			logging.Setup(logging.Options{
				Verbosity: a.verbosity,
				File:      cfg.Log.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newRenameCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newPatternsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd, a
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    `Print detailed version information including commit hash and build date`,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var (
		template bool
		path     bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case path:
				p := a.configPath
				if p == "" {
					p = config.UserConfigPath()
				}
				_, err := fmt.Fprintln(out, p)
				return err
			case template:
				_, err := fmt.Fprintln(out, config.GenerateConfigContent())
				return err
			}

			content, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, content)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
