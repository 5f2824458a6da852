package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/ui"
	"github.com/pterm/pterm"
)

// prompter asks the user for a single line of text
type prompter interface {
	Prompt(message string) (string, error)
}

// newPrompter picks an interactive prompt when in is a terminal and a plain
// line reader otherwise
func newPrompter(in io.Reader, out io.Writer) prompter {
	if f, ok := in.(*os.File); ok && ui.IsTerminal(f) {
		return &interactivePrompter{}
	}
	return &linePrompter{r: bufio.NewReader(in), w: out}
}

type interactivePrompter struct{}

func (p *interactivePrompter) Prompt(message string) (string, error) {
	for {
		value, err := pterm.DefaultInteractiveTextInput.Show(message)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPromptFailed, "prompt failed")
		}
		if value != "" {
			return value, nil
		}
	}
}

// linePrompter reads answers one line at a time. Empty lines ask again.
type linePrompter struct {
	r *bufio.Reader
	w io.Writer
}

func (p *linePrompter) Prompt(message string) (string, error) {
	for {
		if _, err := fmt.Fprintf(p.w, "%s: ", message); err != nil {
			return "", errors.Wrap(err, errors.ErrPromptFailed, "prompt failed")
		}

		line, err := p.r.ReadString('\n')
		value := strings.TrimRight(line, "\r\n")
		if value != "" {
			return value, nil
		}
		if err == io.EOF {
			return "", errors.New(errors.ErrPromptFailed, "input ended before a value was entered")
		}
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPromptFailed, "prompt failed")
		}
	}
}
