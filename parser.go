package getopts

import "strings"

// Flags alter the behavior of a [Parser].
type Flags int

const (
	// IgnoreUnknownOptions makes the parser skip options that have no declaration instead of
	// reporting an [InvalidOption] error.
	IgnoreUnknownOptions Flags = 1 << iota
)

func (f Flags) has(flag Flags) bool {
	return f&flag != 0
}

// Parser produces one [Event] per call to [Parser.Next]. The first argument is reported as a
// [ToolEvent], every further argument as an option, a positional argument or an error.
//
// The parser holds nothing but a cursor into args. It never modifies args and never copies them;
// event strings are substrings of the original arguments.
type Parser struct {
	args    []string
	options Group
	flags   Flags
	idx     int
}

// NewParser returns a parser positioned before argv[0].
func NewParser(argv []string, options Group, flags Flags) *Parser {
	return &Parser{args: argv, options: options, flags: flags}
}

// Reset moves the cursor back before argv[0].
func (p *Parser) Reset() {
	p.idx = 0
}

// Next returns the next event. It returns false once all arguments are consumed.
func (p *Parser) Next() (Event, bool) {
	for p.idx < len(p.args) {
		var (
			ev   Event
			skip bool
		)
		switch arg := p.args[p.idx]; {
		case p.idx == 0:
			ev = p.onTool(arg)
		case isLongOption(arg):
			ev, skip = p.onLongOption(arg)
		case isShortOption(arg):
			ev, skip = p.onShortOption(arg)
		default:
			ev = ArgumentEvent{Text: arg}
		}
		p.idx++
		if !skip {
			return ev, true
		}
	}
	return nil, false
}

func (p *Parser) onTool(arg string) Event {
	if i := strings.LastIndexByte(arg, '/'); i >= 0 {
		return ToolEvent{Name: arg[i+1:]}
	}
	return ToolEvent{Name: arg}
}

func (p *Parser) onLongOption(arg string) (Event, bool) {
	name, value, hasValue := strings.Cut(arg[2:], "=")
	nameLen := len(name) + 2

	opt := p.options.LookupLong(name)
	switch {
	case opt == nil:
		if p.flags.has(IgnoreUnknownOptions) {
			return nil, true
		}
		return ErrorEvent{Kind: InvalidOption, Token: arg, Len: nameLen}, false
	case opt.Arg == NoArgument:
		if hasValue {
			return ErrorEvent{Kind: NeedlessValue, Token: arg, Len: nameLen}, false
		}
		return OptionEvent{Option: opt}, false
	default:
		if !hasValue {
			return ErrorEvent{Kind: MissingValue, Token: arg, Len: nameLen}, false
		}
		return OptionEvent{Option: opt, Value: value}, false
	}
}

func (p *Parser) onShortOption(arg string) (Event, bool) {
	opt := p.options.LookupShort(arg[1])
	switch {
	case opt == nil:
		if p.flags.has(IgnoreUnknownOptions) {
			return nil, true
		}
		return ErrorEvent{Kind: InvalidOption, Token: arg, Len: 2}, false
	case opt.Arg == NoArgument:
		if len(arg) > 2 {
			return ErrorEvent{Kind: NeedlessValue, Token: arg, Len: 2}, false
		}
		return OptionEvent{Option: opt}, false
	default:
		if len(arg) == 2 {
			return ErrorEvent{Kind: MissingValue, Token: arg, Len: 2}, false
		}
		return OptionEvent{Option: opt, Value: arg[2:]}, false
	}
}

// isLongOption matches "--" followed by at least one character.
func isLongOption(arg string) bool {
	return len(arg) > 2 && arg[0] == '-' && arg[1] == '-'
}

// isShortOption matches "-" followed by a character other than "-". A lone "-" or "--" is a
// positional argument.
func isShortOption(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] != '-'
}
