package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		maxResults int
		expected   []string
	}{
		{
			name:       "exact match first",
			target:     "list",
			candidates: []string{"add", "list", "lost"},
			maxResults: 2,
			expected:   []string{"list", "lost"},
		},
		{
			name:       "typo",
			target:     "verzion",
			candidates: []string{"help", "version"},
			maxResults: 3,
			expected:   []string{"version"},
		},
		{
			name:       "prefix",
			target:     "rem",
			candidates: []string{"remove", "rename", "remote", "add"},
			maxResults: 3,
			expected:   []string{"remote", "remove"},
		},
		{
			name:       "limited results",
			target:     "rem",
			candidates: []string{"remove", "rename"},
			maxResults: 1,
			expected:   []string{"remove"},
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"add", "list"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "no matches",
			target:     "xyz",
			candidates: []string{"add", "list"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "invalid max results",
			target:     "add",
			candidates: []string{"add"},
			maxResults: -1,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := FindSimilar(tt.target, tt.candidates, tt.maxResults)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "perfect match", a: "help", b: "help", expected: 1.0},
		{name: "case is ignored", a: "Help", b: "help", expected: 1.0},
		{name: "prefix", a: "hel", b: "help", expected: 0.9},
		{name: "different", a: "hello", b: "world", expected: 0.2},
		{name: "both empty", a: "", b: "", expected: 1.0},
		{name: "one empty", a: "hello", b: "", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, similarity(tt.a, tt.b), 0.001, "similarity of %q and %q", tt.a, tt.b)
		})
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{a: "hello", b: "hello", expected: 0},
		{a: "hello", b: "hallo", expected: 1},
		{a: "hello", b: "hello1", expected: 1},
		{a: "hello", b: "hell", expected: 1},
		{a: "", b: "hello", expected: 5},
		{a: "hello", b: "", expected: 5},
		{a: "", b: "", expected: 0},
		{a: "hello", b: "world", expected: 4},
		{a: "kitten", b: "sitting", expected: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, distance(tt.a, tt.b), "distance of %q and %q", tt.a, tt.b)
		assert.Equal(t, tt.expected, distance(tt.b, tt.a), "distance of %q and %q", tt.b, tt.a)
	}
}
