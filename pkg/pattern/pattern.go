package pattern

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// Wildcard is the only special token in a pattern
const Wildcard = "*"

// captureGroup replaces each wildcard. (?s) on the whole expression lets it
// cross any character, newlines included.
const captureGroup = "(.*)"

// Pattern is a compiled wildcard pattern
type Pattern struct {
	source    string
	re        *regexp.Regexp
	wildcards int
}

// Compile translates a wildcard pattern into a full-match regular expression.
// Literal runs are quoted and each '*' becomes a greedy capture group.
func Compile(p string) (*Pattern, error) {
	parts := strings.Split(p, Wildcard)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	expr := "(?s)^" + strings.Join(parts, captureGroup) + "$"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "failed to compile pattern %q", p).
			WithDetail("pattern", p).
			WithDetail("expression", expr)
	}

	return &Pattern{
		source:    p,
		re:        re,
		wildcards: len(parts) - 1,
	}, nil
}

// String returns the source pattern
func (p *Pattern) String() string {
	return p.source
}

// Expression returns the generated regular expression
func (p *Pattern) Expression() string {
	return p.re.String()
}

// Wildcards returns the number of '*' tokens in the pattern
func (p *Pattern) Wildcards() int {
	return p.wildcards
}

// Match tests name against the pattern. On success it returns one captured
// segment per wildcard, in order.
func (p *Pattern) Match(name string) ([]string, bool) {
	m := p.re.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

