package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "simple wrap",
			text:     "hello world",
			width:    5,
			expected: []string{"hello", "world"},
		},
		{
			name:     "no wrap needed",
			text:     "hello",
			width:    10,
			expected: []string{"hello"},
		},
		{
			name:     "multiple wraps",
			text:     "this is a long text that needs wrapping",
			width:    10,
			expected: []string{"this is a", "long text", "that needs", "wrapping"},
		},
		{
			name:     "empty string",
			text:     "",
			width:    10,
			expected: nil,
		},
		{
			name:     "single word longer than width",
			text:     "supercalifragilistic",
			width:    10,
			expected: []string{"supercalifragilistic"},
		},
		{
			name:     "multiple spaces",
			text:     "hello    world",
			width:    20,
			expected: []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Wrap(tt.text, tt.width), "wrapped text mismatch for input %q with width %d", tt.text, tt.width)
		})
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	t.Run("aligned columns", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		err := WriteTable(&b, []Row{
			{Name: "add", Description: "Add a task."},
			{Name: "remove", Description: "Remove a task."},
			{Name: "bare"},
		}, 2, 80)
		require.NoError(t, err)
		expected := "" +
			"  add       Add a task.\n" +
			"  remove    Remove a task.\n" +
			"  bare\n"
		assert.Equal(t, expected, b.String())
	})
	t.Run("wrapped description", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		err := WriteTable(&b, []Row{
			{Name: "-v", Description: strings.Repeat("word ", 10)},
		}, 1, 27)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, " -v    word word word word", lines[0])
		assert.Equal(t, "       word word word word", lines[1])
		assert.Equal(t, "       word word", lines[2])
	})
}
