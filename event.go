package getopts

import "fmt"

// Event is a single unit of parsed command-line input. It is one of [ToolEvent], [OptionEvent],
// [ArgumentEvent] or [ErrorEvent].
type Event interface {
	event()
}

// ToolEvent reports the name of the tool, taken from the basename of argv[0].
type ToolEvent struct {
	Name string
}

// OptionEvent reports a declared option. Value holds the option argument and is only meaningful
// when the option was declared with [RequiredArgument]; it may legitimately be empty, as in
// "--file=".
type OptionEvent struct {
	Option *Option
	Value  string
}

// HasValue reports whether the option carries an argument.
func (e OptionEvent) HasValue() bool {
	return e.Option != nil && e.Option.Arg == RequiredArgument
}

// ArgumentEvent reports a positional argument, verbatim.
type ArgumentEvent struct {
	Text string
}

// ErrorEvent reports a malformed or unknown option. Token is the complete command-line argument
// and Len the length of its option part, i.e. "-x" or "--name" without any value.
type ErrorEvent struct {
	Kind  ErrorKind
	Token string
	Len   int
}

// Option returns the option part of the offending token.
func (e ErrorEvent) Option() string {
	if e.Len < 0 || e.Len > len(e.Token) {
		return e.Token
	}
	return e.Token[:e.Len]
}

func (e ErrorEvent) Error() string {
	switch e.Kind {
	case InvalidOption:
		return fmt.Sprintf("invalid option: %s", e.Option())
	case MissingValue:
		return fmt.Sprintf("missing value for option %s", e.Option())
	case NeedlessValue:
		return fmt.Sprintf("needless value for option %s", e.Option())
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Option())
	}
}

func (ToolEvent) event()     {}
func (OptionEvent) event()   {}
func (ArgumentEvent) event() {}
func (ErrorEvent) event()    {}
