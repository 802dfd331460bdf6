package getopts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ToolConfig holds the collaborators of a [Tool]. Zero fields fall back to defaults.
type ToolConfig struct {
	// Converters converts option arguments. Defaults to [DefaultConverters].
	Converters Converters

	// Help renders help when an action requests it. Defaults to [DefaultHelp].
	Help HelpRenderer

	// Logger receives debug information about each run. Defaults to a logger that discards
	// everything.
	Logger *slog.Logger
}

// Tool dispatches a command line to the cmdlet tree rooted at [Tool.Root].
type Tool struct {
	root       *Cmdlet
	converters Converters
	help       HelpRenderer
	logger     *slog.Logger
}

// NewTool returns a tool with an empty root cmdlet. The config may be nil.
func NewTool(config *ToolConfig) *Tool {
	if config == nil {
		config = &ToolConfig{}
	}
	t := &Tool{
		root:       newCmdlet(nil, "root"),
		converters: config.Converters,
		help:       config.Help,
		logger:     config.Logger,
	}
	if t.converters == nil {
		t.converters = DefaultConverters()
	}
	if t.help == nil {
		t.help = &DefaultHelp{}
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t
}

// Root returns the root cmdlet. Options of the root are visible to every cmdlet.
func (t *Tool) Root() *Cmdlet {
	return t.root
}

// RunOptions specifies options for running a command line.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams of the run. If
	// any of these are nil, the run uses the default streams ([os.Stdin], [os.Stdout], and
	// [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run parses argv, which includes the tool name as argv[0], and invokes the selected cmdlet.
//
// Parsing happens in two passes. The first pass ignores all options and follows the positional
// arguments down the cmdlet tree, as long as they name child cmdlets. The second pass parses argv
// again with the options visible to the selected cmdlet and converts their arguments.
//
// Run returns the exit status of the tool. The error is non-nil if the command line could not be
// parsed or an option argument could not be converted; it has already been written to Stderr and
// the status is 1. The action never runs in that case.
func (t *Tool) Run(ctx context.Context, argv []string, options *RunOptions) (int, error) {
	options = checkAndSetRunOptions(options)

	cmdlet, err := t.detect(argv)
	if err != nil {
		return t.fail(options, err)
	}
	t.logger.Debug("cmdlet detected", "path", strings.Join(cmdlet.Path(), " "))

	values, err := t.parse(cmdlet, argv)
	if err != nil {
		return t.fail(options, err)
	}
	t.logger.Debug("command line parsed", "events", len(values.entries))

	state := &State{
		Values: values,
		Cmdlet: cmdlet,
		Stdin:  options.Stdin,
		Stdout: options.Stdout,
		Stderr: options.Stderr,
	}
	rc := cmdlet.Invoke(ctx, state)
	if rc&ReqHelp != 0 {
		t.logger.Debug("help requested", "status", rc)
		if err := t.help.RenderHelp(state.Stdout, values.Tool(), cmdlet); err != nil {
			return t.fail(options, fmt.Errorf("render help: %w", err))
		}
		return 0, nil
	}
	return rc & 0xFF, nil
}

// detect walks down the cmdlet tree along the positional arguments of argv.
func (t *Tool) detect(argv []string) (*Cmdlet, error) {
	cur := t.root
	p := NewParser(argv, nil, IgnoreUnknownOptions)
	for {
		ev, ok := p.Next()
		if !ok {
			return cur, nil
		}
		switch ev := ev.(type) {
		case ArgumentEvent:
			next := cur.Child(ev.Text)
			if next == nil {
				return cur, nil
			}
			cur = next
		case ErrorEvent:
			return nil, ev
		}
	}
}

// parse collects all events of argv against the options visible to cmdlet.
func (t *Tool) parse(cmdlet *Cmdlet, argv []string) (*Values, error) {
	values := &Values{}
	p := NewParser(argv, cmdlet.Group(), 0)
	for {
		ev, ok := p.Next()
		if !ok {
			return values, nil
		}
		switch ev := ev.(type) {
		case ErrorEvent:
			return nil, ev
		case OptionEvent:
			value, err := t.convert(cmdlet, ev)
			if err != nil {
				return nil, err
			}
			values.add(ev, value)
		default:
			values.add(ev, nil)
		}
	}
}

func (t *Tool) convert(cmdlet *Cmdlet, ev OptionEvent) (any, error) {
	info := cmdlet.OptionInfo(ev.Option)
	if info == nil || info.Converter == NoValue {
		return nil, nil
	}
	conv, ok := t.converters[info.Converter]
	if !ok {
		return nil, &UnknownConverterError{Option: ev.Option, ID: info.Converter}
	}
	value, err := conv.Convert(ev.Value)
	if err != nil {
		return nil, &ConversionError{Option: ev.Option, Value: ev.Value, Err: err}
	}
	return value, nil
}

func (t *Tool) fail(options *RunOptions, err error) (int, error) {
	t.logger.Debug("run failed", "error", err)
	fmt.Fprintln(options.Stderr, err)
	return 1, err
}

func checkAndSetRunOptions(options *RunOptions) *RunOptions {
	opt := &RunOptions{}
	if options != nil {
		*opt = *options
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
