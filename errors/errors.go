package errors

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
)

// Kind classifies an Error.
type Kind int

const (
	KindParse Kind = iota
	KindIncompleteConfig
	KindConversion
	KindMissingArg
	KindAssertion
	KindUnknownOption
	KindUnknownSubcommand
	KindUnsupportedField
)

// Sentinels usable with errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrParse             = cerrors.New("parse error")
	ErrIncompleteConfig  = cerrors.New("incomplete configuration")
	ErrConversion        = cerrors.New("value conversion failed")
	ErrMissingArg        = cerrors.New("missing required argument")
	ErrAssertion         = cerrors.New("inconsistent configuration")
	ErrUnknownOption     = cerrors.New("unknown option")
	ErrUnknownSubcommand = cerrors.New("unknown subcommand")
	ErrUnsupportedField  = cerrors.New("unsupported field type")
)

var sentinels = map[Kind]error{
	KindParse:             ErrParse,
	KindIncompleteConfig:  ErrIncompleteConfig,
	KindConversion:        ErrConversion,
	KindMissingArg:        ErrMissingArg,
	KindAssertion:         ErrAssertion,
	KindUnknownOption:     ErrUnknownOption,
	KindUnknownSubcommand: ErrUnknownSubcommand,
	KindUnsupportedField:  ErrUnsupportedField,
}

// Error is the single error type surfaced by soya. Field names the option,
// argument or configuration attribute at fault; Value holds the offending
// input token when there is one.
type Error struct {
	Kind  Kind
	Field string
	Value string
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if cerrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Helper constructors
func NewParseError(msg string) error { return &Error{Kind: KindParse, Msg: msg} }

func NewIncompleteConfig(attr string) error {
	return &Error{
		Kind:  KindIncompleteConfig,
		Field: attr,
		Msg:   fmt.Sprintf("incomplete configuration: missing %s", attr),
	}
}

func NewConversion(field, value string, cause error) error {
	return &Error{
		Kind:  KindConversion,
		Field: field,
		Value: value,
		Msg:   fmt.Sprintf("invalid value %q for %s", value, field),
		cause: cerrors.WithStack(cause),
	}
}

func NewMissingArg(field string) error {
	return &Error{Kind: KindMissingArg, Field: field, Msg: fmt.Sprintf("missing required argument: %s", field)}
}

func NewAssertion(field, msg string) error {
	return &Error{Kind: KindAssertion, Field: field, Msg: fmt.Sprintf("option %s: %s", field, msg)}
}

// NewUnknownOption reports an option token that matched no declaration.
// Suggestion, if present, is a close match the user may have intended.
func NewUnknownOption(name, suggestion string) error {
	msg := fmt.Sprintf("unknown option: %s", name)
	if suggestion != "" {
		msg = fmt.Sprintf("unknown option: %s (did you mean %q?)", name, suggestion)
	}
	return &Error{Kind: KindUnknownOption, Field: name, Msg: msg}
}

func NewUnknownSubcommand(name, suggestion string) error {
	msg := fmt.Sprintf("unknown subcommand: %s", name)
	if suggestion != "" {
		msg = fmt.Sprintf("unknown subcommand: %s (did you mean %q?)", name, suggestion)
	}
	return &Error{Kind: KindUnknownSubcommand, Field: name, Msg: msg}
}

func NewUnsupportedField(field, typ string) error {
	return &Error{
		Kind:  KindUnsupportedField,
		Field: field,
		Value: typ,
		Msg:   fmt.Sprintf("unsupported type for field %s: %s", field, typ),
	}
}

// Wrap attaches context to err while keeping its kind visible to KindOf and errors.Is.
func Wrap(err error, format string, args ...any) error {
	return cerrors.Wrapf(err, format, args...)
}
