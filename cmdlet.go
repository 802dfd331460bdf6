package getopts

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Action is the function bound to a cmdlet. It receives the parsed command line and returns the
// exit status of the tool. Or'ing [ReqHelp] into the status renders help for the cmdlet instead.
type Action func(ctx context.Context, s *State) int

// Cmdlet is a node in the command tree of a [Tool]. Each cmdlet is selected by its name on the
// command line, owns a list of options and may have child cmdlets of its own.
//
// The options visible while a cmdlet runs are its own options followed by the options of all its
// ancestors. An option of the cmdlet shadows an ancestor option with the same name.
type Cmdlet struct {
	// Syntax describes the positional arguments of the cmdlet, as shown in the usage line of the
	// help text, e.g. "add [options...] <text>". Defaults to "<path> [options...]".
	Syntax string

	// ShortHelp is a one-line description, listed with the actions of the parent cmdlet.
	ShortHelp string

	// LongHelp is shown below ShortHelp in the help text of the cmdlet.
	LongHelp string

	name     string
	parent   *Cmdlet
	options  []*OptionInfo
	group    Group
	children []*Cmdlet
	action   Action
}

// OptionSpec describes an option to add to a cmdlet.
type OptionSpec struct {
	// Long is the name used as --Long. May be empty if Short is set.
	Long string
	// Short is the character used as -Short. May be zero if Long is set.
	Short byte
	// Converter converts the option argument. NoValue declares an option without argument.
	Converter ConverterID
	// Description is shown in the help text.
	Description string
	// Placeholder names the argument in the help text. Defaults to "ARG".
	Placeholder string
}

// OptionInfo is an option declared by a cmdlet together with its help and conversion metadata.
type OptionInfo struct {
	Option      *Option
	Converter   ConverterID
	Description string
	Placeholder string
}

func newCmdlet(parent *Cmdlet, name string) *Cmdlet {
	c := &Cmdlet{name: name, parent: parent}
	c.rebuild()
	return c
}

// Name returns the name of the cmdlet.
func (c *Cmdlet) Name() string { return c.name }

// Parent returns the parent cmdlet, or nil for the root.
func (c *Cmdlet) Parent() *Cmdlet { return c.parent }

// Children returns the child cmdlets in registration order.
func (c *Cmdlet) Children() []*Cmdlet { return c.children }

// Options returns the options declared by the cmdlet itself.
func (c *Cmdlet) Options() []*OptionInfo { return c.options }

// Group returns the options visible to the cmdlet: its own, then those of its ancestors.
func (c *Cmdlet) Group() Group { return c.group }

// Path returns the names of the cmdlets leading from the root to c, excluding the root.
func (c *Cmdlet) Path() []string {
	var path []string
	for cur := c; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.name)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// AddChild registers a new child cmdlet. The name must be unique among the children of c.
func (c *Cmdlet) AddChild(name string) (*Cmdlet, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if c.Child(name) != nil {
		return nil, &DuplicateNameError{Parent: c, Name: name}
	}
	child := newCmdlet(c, name)
	c.children = append(c.children, child)
	return child, nil
}

// Child returns the direct child with the given name, or nil.
func (c *Cmdlet) Child(name string) *Cmdlet {
	for _, child := range c.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// AddOption declares an option for the cmdlet and its descendants. Long names are at least two
// characters long, since a single character always refers to a short name.
func (c *Cmdlet) AddOption(spec OptionSpec) (*Option, error) {
	if spec.Long == "" && spec.Short == 0 {
		return nil, ErrNoOptionName
	}
	if spec.Short != 0 && (spec.Short == '-' || spec.Short <= ' ' || spec.Short > '~') {
		return nil, fmt.Errorf("%w: -%c", ErrInvalidOptionName, spec.Short)
	}
	if len(spec.Long) == 1 || strings.ContainsFunc(spec.Long, func(r rune) bool { return r == '=' || unicode.IsSpace(r) }) {
		return nil, fmt.Errorf("%w: --%s", ErrInvalidOptionName, spec.Long)
	}
	for _, info := range c.options {
		if spec.Short != 0 && info.Option.Short == spec.Short {
			return nil, fmt.Errorf("%w: -%c", ErrDuplicateOptionName, spec.Short)
		}
		if spec.Long != "" && info.Option.Long == spec.Long {
			return nil, fmt.Errorf("%w: --%s", ErrDuplicateOptionName, spec.Long)
		}
	}

	opt := &Option{Short: spec.Short, Long: spec.Long, Arg: NoArgument}
	if spec.Converter != NoValue {
		opt.Arg = RequiredArgument
	}
	c.options = append(c.options, &OptionInfo{
		Option:      opt,
		Converter:   spec.Converter,
		Description: spec.Description,
		Placeholder: spec.Placeholder,
	})
	c.rebuild()
	return opt, nil
}

// OptionInfo returns the metadata of an option visible to the cmdlet, or nil.
func (c *Cmdlet) OptionInfo(opt *Option) *OptionInfo {
	for cur := c; cur != nil; cur = cur.parent {
		for _, info := range cur.options {
			if info.Option == opt {
				return info
			}
		}
	}
	return nil
}

// SetAction binds fn to the cmdlet, replacing any previous action.
func (c *Cmdlet) SetAction(fn Action) {
	c.action = fn
}

// Invoke runs the action of the cmdlet. A cmdlet without action succeeds.
func (c *Cmdlet) Invoke(ctx context.Context, s *State) int {
	if c.action == nil {
		return 0
	}
	return c.action(ctx, s)
}

// rebuild refreshes the option view. The parent view is referenced, not copied, so options added
// to an ancestor later on are visible as well.
func (c *Cmdlet) rebuild() {
	list := make([]*Option, 0, len(c.options))
	for _, info := range c.options {
		list = append(list, info.Option)
	}
	c.group = Group{{List: list}}
	if c.parent != nil {
		c.group = append(c.group, GroupEntry{Group: &c.parent.group})
	}
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.HasPrefix(name, "-") || strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
