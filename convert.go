package getopts

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// ConverterID selects the converter applied to the argument of an option. [NoValue] declares an
// option without argument; every other id declares an option with a required argument. Ids above
// [SizeValue] are free for custom converters registered in [ToolConfig].
type ConverterID int

const (
	NoValue ConverterID = iota
	StringValue
	IntValue
	SizeValue
)

// Converter turns the raw argument of an option into a typed value.
type Converter interface {
	Convert(raw string) (any, error)
}

// ConverterFunc adapts an ordinary function to a [Converter].
type ConverterFunc func(raw string) (any, error)

func (f ConverterFunc) Convert(raw string) (any, error) {
	return f(raw)
}

// Converters maps converter ids to converters.
type Converters map[ConverterID]Converter

// DefaultConverters returns the string, int and size converters.
//
//   - [StringValue] returns the argument unchanged as a string.
//   - [IntValue] returns an int64. Leading whitespace is ignored, the rest must be a base-10 number.
//   - [SizeValue] returns a [Size]: a number optionally followed by kb, mb or gb (any case), which
//     multiply it by 1024, 1024² and 1024³.
func DefaultConverters() Converters {
	return Converters{
		StringValue: ConverterFunc(convertString),
		IntValue:    ConverterFunc(convertInt),
		SizeValue:   ConverterFunc(convertSize),
	}
}

// Size is a byte count produced by the [SizeValue] converter.
type Size int64

func (s Size) String() string {
	if s < 0 {
		return "-" + humanize.IBytes(uint64(-s))
	}
	return humanize.IBytes(uint64(s))
}

var errNoDigits = errors.New("no digits")

func convertString(raw string) (any, error) {
	return raw, nil
}

func convertInt(raw string) (any, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return n, nil
}

var sizeUnits = map[string]int64{
	"":   1,
	"kb": 1 << 10,
	"mb": 1 << 20,
	"gb": 1 << 30,
}

func convertSize(raw string) (any, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil, fmt.Errorf("parse size %q: %w", raw, errNoDigits)
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return nil, err
	}
	unit, ok := sizeUnits[strings.ToLower(s[end:])]
	if !ok {
		return nil, fmt.Errorf("parse size %q: unknown unit %q", raw, s[end:])
	}
	if n > math.MaxInt64/unit || n < math.MinInt64/unit {
		return nil, fmt.Errorf("parse size %q: %w", raw, strconv.ErrRange)
	}
	return Size(n * unit), nil
}
