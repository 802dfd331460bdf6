package getopts

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHelpTool(t *testing.T) (*Tool, *Cmdlet) {
	t.Helper()

	tool := NewTool(&ToolConfig{Help: &DefaultHelp{Width: 80}})
	root := tool.Root()
	root.ShortHelp = "A sample tool."
	_, err := root.AddOption(OptionSpec{Short: 'v', Long: "verbose", Description: "Verbose output."})
	require.NoError(t, err)

	one, err := root.AddChild("one")
	require.NoError(t, err)
	one.ShortHelp = "First action."
	one.LongHelp = "The first action does the first thing."
	_, err = one.AddOption(OptionSpec{Short: 'f', Long: "file", Converter: StringValue, Placeholder: "FILE", Description: "Input file."})
	require.NoError(t, err)
	_, err = one.AddOption(OptionSpec{Long: "quiet", Description: "No output."})
	require.NoError(t, err)
	_, err = one.AddOption(OptionSpec{Short: 'n', Converter: IntValue})
	require.NoError(t, err)

	_, err = tool.EnableHelp()
	require.NoError(t, err)
	return tool, one
}

func TestDefaultHelp(t *testing.T) {
	t.Parallel()

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		tool, _ := newHelpTool(t)
		var b bytes.Buffer
		require.NoError(t, (&DefaultHelp{Width: 80}).RenderHelp(&b, "tool", tool.Root()))
		expected := `Usage:
  tool [options...] <actions...>

A sample tool.

Actions:
  one     First action.
  help    Display usage information about an action.

Options:
  -v, --verbose    Verbose output.

Use "tool help <action>" for more information about an action.
`
		assert.Equal(t, expected, b.String())
	})
	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		_, one := newHelpTool(t)
		var b bytes.Buffer
		require.NoError(t, (&DefaultHelp{}).RenderHelp(&b, "tool", one))
		expected := `Usage:
  tool one [options...]

First action.

The first action does the first thing.

Options:
  -f, --file FILE    Input file.
      --quiet        No output.
  -n ARG

Global Options:
  -v, --verbose    Verbose output.
`
		assert.Equal(t, expected, b.String())
	})
	t.Run("syntax", func(t *testing.T) {
		t.Parallel()
		_, one := newHelpTool(t)
		one.Syntax = "one [options...] <file>"
		var b bytes.Buffer
		require.NoError(t, (&DefaultHelp{}).RenderHelp(&b, "tool", one))
		assert.True(t, strings.HasPrefix(b.String(), "Usage:\n  tool one [options...] <file>\n"), b.String())
	})
	t.Run("wrapping", func(t *testing.T) {
		t.Parallel()
		tool := NewTool(nil)
		tool.Root().LongHelp = strings.Repeat("long ", 20)
		var b bytes.Buffer
		require.NoError(t, (&DefaultHelp{Width: 30}).RenderHelp(&b, "tool", tool.Root()))
		var wrapped int
		for _, line := range strings.Split(b.String(), "\n") {
			if strings.HasPrefix(line, "long") {
				wrapped++
				assert.LessOrEqual(t, len(line), 30, "line %q", line)
			}
		}
		assert.Equal(t, 4, wrapped)
	})
}

func TestHelpCmdlet(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, argv ...string) (int, string, string) {
		t.Helper()
		tool, _ := newHelpTool(t)
		var stdout, stderr bytes.Buffer
		rc, err := tool.Run(context.Background(), argv, &RunOptions{Stdout: &stdout, Stderr: &stderr})
		require.NoError(t, err)
		return rc, stdout.String(), stderr.String()
	}

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		rc, stdout, _ := run(t, "/usr/bin/tool", "help")
		assert.Equal(t, 0, rc)
		assert.True(t, strings.HasPrefix(stdout, "Usage:\n  tool [options...] <actions...>\n"), stdout)
	})
	t.Run("action", func(t *testing.T) {
		t.Parallel()
		rc, stdout, _ := run(t, "tool", "-v", "help", "one")
		assert.Equal(t, 0, rc)
		assert.True(t, strings.HasPrefix(stdout, "Usage:\n  tool one [options...]\n"), stdout)
	})
	t.Run("help itself", func(t *testing.T) {
		t.Parallel()
		rc, stdout, _ := run(t, "tool", "help", "help")
		assert.Equal(t, 0, rc)
		assert.True(t, strings.HasPrefix(stdout, "Usage:\n  tool help [<actions...>]\n"), stdout)
	})
	t.Run("unknown action", func(t *testing.T) {
		t.Parallel()
		rc, stdout, stderr := run(t, "tool", "help", "onee")
		assert.Equal(t, 1, rc)
		assert.Empty(t, stdout)
		assert.Equal(t, "unknown action \"onee\". Did you mean one of these?\n\tone\n", stderr)
	})
	t.Run("unknown action without suggestion", func(t *testing.T) {
		t.Parallel()
		rc, _, stderr := run(t, "tool", "help", "one", "zzz")
		assert.Equal(t, 1, rc)
		assert.Equal(t, "unknown action \"zzz\"\n", stderr)
	})
	t.Run("twice", func(t *testing.T) {
		t.Parallel()
		tool, _ := newHelpTool(t)
		_, err := tool.EnableHelp()
		assert.ErrorIs(t, err, ErrDuplicateName)
	})
}

func TestHelpRequestedByAction(t *testing.T) {
	t.Parallel()

	tool, one := newHelpTool(t)
	one.SetAction(func(ctx context.Context, s *State) int {
		if _, ok := s.Arg(1); !ok {
			return ReqHelp | 2
		}
		return 0
	})

	var stdout bytes.Buffer
	rc, err := tool.Run(context.Background(), []string{"tool", "one"}, &RunOptions{Stdout: &stdout})
	require.NoError(t, err)
	assert.Equal(t, 0, rc)
	assert.Contains(t, stdout.String(), "Usage:\n  tool one [options...]\n")

	stdout.Reset()
	rc, err = tool.Run(context.Background(), []string{"tool", "one", "x"}, &RunOptions{Stdout: &stdout})
	require.NoError(t, err)
	assert.Equal(t, 0, rc)
	assert.Empty(t, stdout.String())
}
