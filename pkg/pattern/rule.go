package pattern

// Rule pairs a compiled search pattern with its replacement template
type Rule struct {
	search      *Pattern
	replacement string
	mode        CaptureMode
}

// NewRule compiles search and binds it to replacement
func NewRule(search, replacement string, mode CaptureMode) (*Rule, error) {
	compiled, err := Compile(search)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = DefaultCaptureMode
	}
	return &Rule{
		search:      compiled,
		replacement: replacement,
		mode:        mode,
	}, nil
}

// Search returns the compiled search pattern
func (r *Rule) Search() *Pattern {
	return r.search
}

// Replacement returns the replacement template
func (r *Rule) Replacement() string {
	return r.replacement
}

// Mode returns the capture mode in effect
func (r *Rule) Mode() CaptureMode {
	return r.mode
}

// Apply computes the new name for name. The search pattern is anchored at
// both ends, so the matched region is the whole name and the result is the
// expanded replacement.
func (r *Rule) Apply(name string) (string, bool) {
	captures, ok := r.search.Match(name)
	if !ok {
		return "", false
	}
	return Expand(r.replacement, captures, r.mode), true
}
