// Package pattern compiles wildcard filename patterns into anchored
// regular expressions and expands replacement templates.
//
// The only special token is '*'. Every other character, including regular
// expression metacharacters, is matched literally. A compiled pattern must
// match the whole filename, and each '*' captures the text it matched.
//
// How captures flow into a replacement template depends on CaptureMode:
//
//	first       every '*' in the template receives the first capture
//	positional  the i-th '*' in the template receives the i-th capture
//
// With a single wildcard both modes agree.
package pattern
