package getopts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/drobin/nuts-getopts/pkg/suggest"
	"github.com/drobin/nuts-getopts/pkg/textutil"
)

// HelpRenderer writes the help text of a cmdlet. tool is the name the tool was invoked with.
type HelpRenderer interface {
	RenderHelp(w io.Writer, tool string, c *Cmdlet) error
}

// HelpFunc adapts an ordinary function to a [HelpRenderer].
type HelpFunc func(w io.Writer, tool string, c *Cmdlet) error

func (f HelpFunc) RenderHelp(w io.Writer, tool string, c *Cmdlet) error {
	return f(w, tool, c)
}

const defaultWidth = 80

// DefaultHelp renders a usage line, the descriptions of the cmdlet, its child actions and all
// options visible to it.
type DefaultHelp struct {
	// Width is the maximum line width. If zero, the width of the terminal is used when writing to
	// one, 80 otherwise.
	Width int
}

func (h *DefaultHelp) RenderHelp(w io.Writer, tool string, c *Cmdlet) error {
	width := h.width(w)
	var b bytes.Buffer

	b.WriteString("Usage:\n  ")
	b.WriteString(usageLine(tool, c))
	b.WriteString("\n")

	for _, descr := range []string{c.ShortHelp, c.LongHelp} {
		if descr == "" {
			continue
		}
		b.WriteString("\n")
		for _, line := range textutil.Wrap(descr, width) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if len(c.children) > 0 {
		rows := make([]textutil.Row, 0, len(c.children))
		for _, child := range c.children {
			rows = append(rows, textutil.Row{Name: child.name, Description: child.ShortHelp})
		}
		b.WriteString("\nActions:\n")
		if err := textutil.WriteTable(&b, rows, 2, width); err != nil {
			return err
		}
	}

	var local, global []textutil.Row
	for cur := c; cur != nil; cur = cur.parent {
		for _, info := range cur.options {
			row := textutil.Row{Name: optionColumn(info), Description: info.Description}
			if cur == c {
				local = append(local, row)
			} else {
				global = append(global, row)
			}
		}
	}
	if len(local) > 0 {
		b.WriteString("\nOptions:\n")
		if err := textutil.WriteTable(&b, local, 2, width); err != nil {
			return err
		}
	}
	if len(global) > 0 {
		b.WriteString("\nGlobal Options:\n")
		if err := textutil.WriteTable(&b, global, 2, width); err != nil {
			return err
		}
	}

	if len(c.children) > 0 {
		path := append([]string{tool}, c.Path()...)
		fmt.Fprintf(&b, "\nUse \"%s help <action>\" for more information about an action.\n",
			strings.Join(path, " "))
	}

	_, err := w.Write(b.Bytes())
	return err
}

func (h *DefaultHelp) width(w io.Writer) int {
	if h.Width > 0 {
		return h.Width
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

func usageLine(tool string, c *Cmdlet) string {
	switch {
	case c.parent == nil:
		return tool + " [options...] <actions...>"
	case c.Syntax != "":
		return tool + " " + c.Syntax
	default:
		return tool + " " + strings.Join(c.Path(), " ") + " [options...]"
	}
}

// optionColumn renders the names of an option, e.g. "-f, --file FILE" or "    --quiet".
func optionColumn(info *OptionInfo) string {
	var b strings.Builder
	opt := info.Option
	switch {
	case opt.Short != 0 && opt.Long != "":
		fmt.Fprintf(&b, "-%c, --%s", opt.Short, opt.Long)
	case opt.Short != 0:
		fmt.Fprintf(&b, "-%c", opt.Short)
	default:
		fmt.Fprintf(&b, "    --%s", opt.Long)
	}
	if opt.Arg == RequiredArgument {
		placeholder := info.Placeholder
		if placeholder == "" {
			placeholder = "ARG"
		}
		b.WriteString(" ")
		b.WriteString(placeholder)
	}
	return b.String()
}

// EnableHelp adds a "help" action to the root cmdlet. "tool help a b" renders the help of the
// cmdlet reached through the actions a and b.
func (t *Tool) EnableHelp() (*Cmdlet, error) {
	help, err := t.root.AddChild("help")
	if err != nil {
		return nil, err
	}
	help.Syntax = "help [<actions...>]"
	help.ShortHelp = "Display usage information about an action."
	help.SetAction(t.helpAction)
	return help, nil
}

func (t *Tool) helpAction(ctx context.Context, s *State) int {
	args := s.Args()
	if len(args) > 0 && args[0] == "help" {
		args = args[1:]
	}

	target := t.root
	for _, name := range args {
		next := target.Child(name)
		if next == nil {
			fmt.Fprintln(s.Stderr, unknownActionError(target, name))
			return 1
		}
		target = next
	}

	if err := t.help.RenderHelp(s.Stdout, s.Tool(), target); err != nil {
		fmt.Fprintf(s.Stderr, "render help: %v\n", err)
		return 1
	}
	return 0
}

func unknownActionError(c *Cmdlet, name string) error {
	known := make([]string, 0, len(c.children))
	for _, child := range c.children {
		known = append(known, child.name)
	}
	suggestions := suggest.FindSimilar(name, known, 3)
	if len(suggestions) > 0 {
		return fmt.Errorf("unknown action %q. Did you mean one of these?\n\t%s",
			name,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("unknown action %q", name)
}
