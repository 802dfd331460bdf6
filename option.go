package getopts

// ArgumentType tells the parser whether an option takes an argument.
type ArgumentType int

const (
	// NoArgument options are plain switches: -v, --verbose.
	NoArgument ArgumentType = iota
	// RequiredArgument options carry a value: -fvalue, --file=value.
	RequiredArgument
)

// Option declares a command-line option. Short is the single character following a "-" and Long
// the name following a "--". A zero Short or an empty Long means the option has no such name, but
// at least one of them must be set.
type Option struct {
	Short byte
	Long  string
	Arg   ArgumentType
}

// Name returns the long name of the option, or its short name if there is no long name.
func (o *Option) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return string(o.Short)
}

// Group is a tree of option declarations. Entries are searched in order; within an entry the
// nested Group is searched before the List. The first declaration that matches wins, so earlier
// entries shadow later ones.
//
// A nil or empty Group declares no options at all.
type Group []GroupEntry

// GroupEntry is a single element of a [Group]. Either field may be nil.
type GroupEntry struct {
	// Group references another option tree.
	Group *Group
	// List is a flat list of options.
	List []*Option
}

// List returns a group containing only the given options.
func List(opts ...*Option) Group {
	return Group{{List: opts}}
}

// LookupShort returns the first option in the tree whose short name is c, or nil.
func (g Group) LookupShort(c byte) *Option {
	if c == 0 {
		return nil
	}
	return g.find(func(o *Option) bool { return o.Short == c })
}

// LookupLong returns the first option in the tree whose long name is exactly name, or nil.
func (g Group) LookupLong(name string) *Option {
	if name == "" {
		return nil
	}
	return g.find(func(o *Option) bool { return o.Long == name })
}

func (g Group) find(match func(*Option) bool) *Option {
	for _, entry := range g {
		if entry.Group != nil {
			if opt := entry.Group.find(match); opt != nil {
				return opt
			}
		}
		for _, opt := range entry.List {
			if opt != nil && match(opt) {
				return opt
			}
		}
	}
	return nil
}
