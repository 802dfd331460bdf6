package getopts

import (
	"fmt"
	"io"
)

// State is passed to the [Action] of the running cmdlet. It gives access to the parsed command
// line through the embedded [Values] and to the I/O streams of the run.
type State struct {
	*Values

	// Cmdlet is the cmdlet selected by the command line.
	Cmdlet *Cmdlet

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Get retrieves the converted value of an option by name, with type inference. Example usage:
//
//	count, ok := getopts.Get[int64](s, "count")
//	size, ok := getopts.Get[getopts.Size](s, "size")
//	path, ok := getopts.Get[string](s, "f")
//
// The boolean is false if the option was not given. Get panics if the converter of the option
// produced a different type. Options without argument have no value; use [Values.IsSet] for them.
func Get[T any](s *State, name string) (T, bool) {
	var zero T
	value, ok := s.Value(name)
	if !ok {
		return zero, false
	}
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for option %q in cmdlet %q: registered %T, requested %T",
			name, s.Cmdlet.Name(), value, zero))
	}
	return v, true
}
