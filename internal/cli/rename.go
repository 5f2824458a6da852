package cli

import (
	"os"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/renamer"
	"github.com/arthur-debert/renamer/pkg/ui"
	"github.com/spf13/cobra"
)

func newRenameCmd(a *app) *cobra.Command {
	var (
		pattern1 string
		pattern2 string
	)

	cmd := &cobra.Command{
		Use:     "rename [DIRECTORY]",
		Short:   MsgRenameShort,
		Long:    MsgRenameLong,
		Example: MsgRenameExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.rename")

			directory, err := resolveDirectory(args)
			if err != nil {
				return err
			}

			// The directory is checked before anything is asked or renamed
			if err := renamer.ValidateDirectory(a.fs, directory); err != nil {
				return err
			}

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			if !cmd.Flags().Changed("pattern1") {
				if pattern1, err = p.Prompt(MsgPromptPattern1); err != nil {
					return errors.Wrapf(err, errors.ErrPromptFailed, MsgErrNoInput, "pattern1")
				}
			}
			if !cmd.Flags().Changed("pattern2") {
				if pattern2, err = p.Prompt(MsgPromptPattern2); err != nil {
					return errors.Wrapf(err, errors.ErrPromptFailed, MsgErrNoInput, "pattern2")
				}
			}

			printer, err := ui.NewPrinter(cmd.OutOrStdout(), a.cfg.Format())
			if err != nil {
				return err
			}

			if err := printer.Info("directory", MsgInfoDirectory, directory); err != nil {
				return err
			}
			if err := printer.Info("pattern1", MsgInfoPattern1, pattern1); err != nil {
				return err
			}
			if err := printer.Info("pattern2", MsgInfoPattern2, pattern2); err != nil {
				return err
			}

			r := renamer.New(renamer.Options{FS: a.fs, CaptureMode: a.cfg.Pattern.Captures})
			count := 0
			for result, err := range r.Rename(directory, pattern1, pattern2) {
				if err != nil {
					logger.Debug().Err(err).Int("renamed", count).Msg("Rename stopped")
					return err
				}
				count++
				if err := printer.Renamed(result); err != nil {
					return err
				}
			}

			return printer.Complete(MsgRenameDone, count)
		},
	}

	cmd.Flags().StringVar(&pattern1, "pattern1", "", MsgFlagPattern1)
	cmd.Flags().StringVar(&pattern2, "pattern2", "", MsgFlagPattern2)
	// Read through the root's config overrides
	cmd.Flags().String("captures", "", MsgFlagCaptures)

	return cmd
}

// resolveDirectory returns the DIRECTORY argument or the working directory
func resolveDirectory(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidDirectory, MsgErrWorkingDir)
	}
	return cwd, nil
}
