package getopts

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConverters(t *testing.T) {
	t.Parallel()

	conv := DefaultConverters()
	require.Len(t, conv, 3)

	tests := []struct {
		name     string
		id       ConverterID
		raw      string
		expected any
		fail     bool
	}{
		{name: "string", id: StringValue, raw: " any thing ", expected: " any thing "},
		{name: "empty string", id: StringValue, raw: "", expected: ""},
		{name: "int", id: IntValue, raw: "42", expected: int64(42)},
		{name: "negative int", id: IntValue, raw: "-7", expected: int64(-7)},
		{name: "int with leading space", id: IntValue, raw: "  12", expected: int64(12)},
		{name: "int with trailing space", id: IntValue, raw: "12 ", fail: true},
		{name: "int with suffix", id: IntValue, raw: "12kb", fail: true},
		{name: "empty int", id: IntValue, raw: "", fail: true},
		{name: "blank int", id: IntValue, raw: "   ", fail: true},
		{name: "int overflow", id: IntValue, raw: "99999999999999999999", fail: true},
		{name: "size", id: SizeValue, raw: "512", expected: Size(512)},
		{name: "size kb", id: SizeValue, raw: "2kb", expected: Size(2 << 10)},
		{name: "size MB", id: SizeValue, raw: "3MB", expected: Size(3 << 20)},
		{name: "size Gb", id: SizeValue, raw: " 1Gb", expected: Size(1 << 30)},
		{name: "size unknown unit", id: SizeValue, raw: "1tb", fail: true},
		{name: "size unit only", id: SizeValue, raw: "kb", fail: true},
		{name: "size space before unit", id: SizeValue, raw: "1 kb", fail: true},
		{name: "size overflow", id: SizeValue, raw: "9223372036854775807gb", fail: true},
		{name: "empty size", id: SizeValue, raw: "", fail: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			value, err := conv[tt.id].Convert(tt.raw)
			if tt.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}

	_, err := conv[IntValue].Convert("99999999999999999999")
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestSizeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", Size(512).String())
	assert.Equal(t, "2.0 KiB", Size(2048).String())
	assert.Equal(t, "-1.0 MiB", Size(-1<<20).String())
}

func TestConverterFunc(t *testing.T) {
	t.Parallel()

	var conv Converter = ConverterFunc(func(raw string) (any, error) { return len(raw), nil })
	value, err := conv.Convert("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, value)
}
