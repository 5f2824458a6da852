// Package ui renders renamer's user facing output in terminal, plain text
// or JSON form.
package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// RenamedFormat is the human readable line emitted for every rename
const RenamedFormat = "Renamed %s to %s"

// Event names used in JSON output
const (
	EventInfo     = "info"
	EventRenamed  = "renamed"
	EventComplete = "complete"
	EventError    = "error"
)

// Printer writes one line per event in the configured format
type Printer struct {
	w      io.Writer
	format Format
	styles Styles
	enc    *json.Encoder
}

// NewPrinter creates a printer for w. FormatAuto is resolved against w.
func NewPrinter(w io.Writer, format Format) (*Printer, error) {
	p := &Printer{w: w, format: ResolveFormat(format, w)}

	switch p.format {
	case FormatTerminal:
		styles, err := DefaultStyles(lipgloss.NewRenderer(w))
		if err != nil {
			return nil, err
		}
		p.styles = styles
	case FormatJSON:
		p.enc = json.NewEncoder(w)
	case FormatText:
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}

	return p, nil
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

// Info prints a labelled value such as the directory being processed.
// key names the value in JSON output, label is the human text.
func (p *Printer) Info(key, label, value string) error {
	switch p.format {
	case FormatJSON:
		return p.enc.Encode(map[string]string{"event": EventInfo, "key": key, "value": value})
	case FormatTerminal:
		return p.line(p.styles.Render("Label", label+":") + " " + p.styles.Render("Value", value))
	default:
		return p.line(label + ": " + value)
	}
}

// Renamed prints one completed rename
func (p *Printer) Renamed(result types.RenameResult) error {
	switch p.format {
	case FormatJSON:
		return p.enc.Encode(struct {
			Event string `json:"event"`
			types.RenameResult
		}{EventRenamed, result})
	case FormatTerminal:
		return p.line(fmt.Sprintf(RenamedFormat,
			p.styles.Render("OldName", result.OldName),
			p.styles.Render("NewName", result.NewName)))
	default:
		return p.line(fmt.Sprintf(RenamedFormat, result.OldName, result.NewName))
	}
}

// Complete prints the closing line with the number of renamed files
func (p *Printer) Complete(message string, renamed int) error {
	switch p.format {
	case FormatJSON:
		return p.enc.Encode(map[string]interface{}{"event": EventComplete, "renamed": renamed})
	case FormatTerminal:
		return p.line(p.styles.Render("Success", message))
	default:
		return p.line(message)
	}
}

// Error prints err. Only the JSON event carries the error code.
func (p *Printer) Error(err error) error {
	message := errors.UserMessage(err)
	switch p.format {
	case FormatJSON:
		return p.enc.Encode(map[string]interface{}{
			"event":   EventError,
			"code":    string(errors.GetErrorCode(err)),
			"error":   message,
			"details": errors.GetErrorDetails(err),
		})
	case FormatTerminal:
		return p.line(p.styles.Render("Error", "Error:") + " " + message)
	default:
		return p.line("Error: " + message)
	}
}

func (p *Printer) line(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}
