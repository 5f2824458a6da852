package pattern

import (
	"strings"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// CaptureMode selects how captured segments fill a replacement template
type CaptureMode string

const (
	// CaptureFirst substitutes the first capture into every '*'
	CaptureFirst CaptureMode = "first"
	// CapturePositional substitutes captures in order, one per '*'
	CapturePositional CaptureMode = "positional"
)

// DefaultCaptureMode is used when nothing is configured
const DefaultCaptureMode = CaptureFirst

// ParseCaptureMode parses a configured mode name. The empty string selects
// the default.
func ParseCaptureMode(s string) (CaptureMode, error) {
	switch CaptureMode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultCaptureMode, nil
	case CaptureFirst:
		return CaptureFirst, nil
	case CapturePositional:
		return CapturePositional, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown capture mode: %s", s).
			WithDetail("valid", []string{string(CaptureFirst), string(CapturePositional)})
	}
}

// Expand fills the wildcards in template with captures. Substitution is
// literal. Wildcards without a matching capture expand to the empty string.
func Expand(template string, captures []string, mode CaptureMode) string {
	if !strings.Contains(template, Wildcard) {
		return template
	}

	if mode != CapturePositional {
		first := ""
		if len(captures) > 0 {
			first = captures[0]
		}
		return strings.ReplaceAll(template, Wildcard, first)
	}

	segments := strings.Split(template, Wildcard)
	var b strings.Builder
	for i, segment := range segments {
		b.WriteString(segment)
		if i == len(segments)-1 {
			break
		}
		if i < len(captures) {
			b.WriteString(captures[i])
		}
	}
	return b.String()
}
