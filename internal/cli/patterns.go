package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideWidth = 80

func newPatternsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:     "patterns",
		Short:   MsgPatternsShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styled := !raw && isTerminalWriter(out)
			return writeGuide(out, MsgPatternsGuide, styled)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)

	return cmd
}

// writeGuide writes markdown to w, rendered through glamour when styled
func writeGuide(w io.Writer, markdown string, styled bool) error {
	if !styled {
		_, err := fmt.Fprint(w, markdown)
		return err
	}

	rendered, err := renderMarkdown(markdown)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrRenderGuide)
	}
	_, err = fmt.Fprint(w, rendered)
	return err
}

func renderMarkdown(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(guideWidth),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTerminal(f)
}
