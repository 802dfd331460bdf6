package getopts

// Values holds the events of a single run in command-line order, along with the converted value
// of every option. It is filled while the command line is parsed and read-only afterwards.
//
// Options are looked up by name: a name of length 1 matches the short name of an option, a longer
// name its long name. If an option occurs several times, the first occurrence wins.
type Values struct {
	entries []valueEntry
}

type valueEntry struct {
	event Event
	value any
}

func (v *Values) add(ev Event, value any) {
	v.entries = append(v.entries, valueEntry{event: ev, value: value})
}

// Tool returns the name of the tool, or "" if the command line was empty.
func (v *Values) Tool() string {
	for _, e := range v.entries {
		if ev, ok := e.event.(ToolEvent); ok {
			return ev.Name
		}
	}
	return ""
}

// Arg returns the positional argument at index i, counting from zero.
func (v *Values) Arg(i int) (string, bool) {
	if i < 0 {
		return "", false
	}
	for _, e := range v.entries {
		if ev, ok := e.event.(ArgumentEvent); ok {
			if i == 0 {
				return ev.Text, true
			}
			i--
		}
	}
	return "", false
}

// Args returns all positional arguments, including the names of the selected cmdlets.
func (v *Values) Args() []string {
	var args []string
	for _, e := range v.entries {
		if ev, ok := e.event.(ArgumentEvent); ok {
			args = append(args, ev.Text)
		}
	}
	return args
}

// IsSet reports whether the option was given on the command line.
func (v *Values) IsSet(name string) bool {
	_, ok := v.option(name)
	return ok
}

// Value returns the converted value of an option. Options without argument have a nil value.
func (v *Values) Value(name string) (any, bool) {
	e, ok := v.option(name)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Raw returns the unconverted argument of an option.
func (v *Values) Raw(name string) (string, bool) {
	e, ok := v.option(name)
	if !ok {
		return "", false
	}
	return e.event.(OptionEvent).Value, true
}

// Events returns a copy of all events in command-line order.
func (v *Values) Events() []Event {
	events := make([]Event, 0, len(v.entries))
	for _, e := range v.entries {
		events = append(events, e.event)
	}
	return events
}

func (v *Values) option(name string) (valueEntry, bool) {
	if name == "" {
		return valueEntry{}, false
	}
	for _, e := range v.entries {
		ev, ok := e.event.(OptionEvent)
		if !ok {
			continue
		}
		if len(name) == 1 && ev.Option.Short == name[0] || len(name) > 1 && ev.Option.Long == name {
			return e, true
		}
	}
	return valueEntry{}, false
}
