package cli

import (
	"errors"
	"fmt"
	"strings"
)

// Exit statuses reported by the process.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Kind classifies why an invocation was rejected.
type Kind int

const (
	MissingArgument Kind = iota + 1
	InvalidValue
	UnknownArgument
)

func (k Kind) String() string {
	switch k {
	case MissingArgument:
		return "MissingArgument"
	case InvalidValue:
		return "InvalidValue"
	case UnknownArgument:
		return "UnknownArgument"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError is returned when the argument list does not match the schema.
type ParseError struct {
	Kind  Kind
	Args  []string // offending options or arguments, e.g. "--input"
	Value string   // rejected value, InvalidValue only
	Err   error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingArgument:
		return "required option(s) not provided: " + strings.Join(e.Args, ", ")
	case InvalidValue:
		if len(e.Args) == 0 {
			return e.cause("invalid value")
		}
		if e.Err != nil {
			return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Args[0], e.Err)
		}
		return fmt.Sprintf("invalid value %q for %s", e.Value, e.Args[0])
	case UnknownArgument:
		if len(e.Args) == 0 {
			return e.cause("unknown argument")
		}
		return fmt.Sprintf("unexpected argument %q", e.Args[0])
	default:
		return e.cause("invalid arguments")
	}
}

func (e *ParseError) cause(fallback string) string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fallback
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries a ParseError of the given kind.
func IsKind(err error, k Kind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == k
}

// ExitCode maps an error returned by the command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return ExitUsage
	}
	return ExitFailure
}
