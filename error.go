package getopts

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an [ErrorEvent].
type ErrorKind int

const (
	// InvalidOption means the argument looks like an option but no declaration matches it.
	InvalidOption ErrorKind = iota + 1
	// MissingValue means the option requires an argument and none was given.
	MissingValue
	// NeedlessValue means the option takes no argument but one was given.
	NeedlessValue
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidOption:
		return "invalid option"
	case MissingValue:
		return "missing value"
	case NeedlessValue:
		return "needless value"
	default:
		return "unknown error"
	}
}

// ReqHelp may be or'ed into the status returned by an [Action]. Instead of exiting with that
// status, the tool renders help for the running cmdlet.
const ReqHelp = 1 << 8

var (
	// ErrEmptyName is returned when a cmdlet is registered without a name.
	ErrEmptyName = errors.New("cmdlet name is empty")
	// ErrInvalidName is returned when a cmdlet name contains whitespace.
	ErrInvalidName = errors.New("invalid cmdlet name")
	// ErrDuplicateName is matched by a [DuplicateNameError].
	ErrDuplicateName = errors.New("duplicate cmdlet name")
	// ErrNoOptionName is returned when an option has neither a short nor a long name.
	ErrNoOptionName = errors.New("option has no name")
	// ErrInvalidOptionName is returned for option names the parser could never match.
	ErrInvalidOptionName = errors.New("invalid option name")
	// ErrDuplicateOptionName is returned when a cmdlet already declares an option with the same
	// short or long name.
	ErrDuplicateOptionName = errors.New("duplicate option name")
	// ErrConversion is matched by a [ConversionError].
	ErrConversion = errors.New("invalid option value")
)

// DuplicateNameError is returned when a cmdlet already has a child with the requested name.
type DuplicateNameError struct {
	Parent *Cmdlet
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("cmdlet %q already has an action named %q", e.Parent.Name(), e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// ConversionError is returned when the converter of an option rejects its value.
type ConversionError struct {
	Option *Option
	Value  string
	Err    error
}

func (e *ConversionError) Error() string {
	return "invalid value for option: " + e.Option.Name()
}

func (e *ConversionError) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}

// UnknownConverterError is returned when an option refers to a converter id that is not
// registered with the tool.
type UnknownConverterError struct {
	Option *Option
	ID     ConverterID
}

func (e *UnknownConverterError) Error() string {
	return fmt.Sprintf("option %q: no converter registered for id %d", e.Option.Name(), e.ID)
}
