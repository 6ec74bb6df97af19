package reshape

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidItem   = "invalid_item"
	CodeMissing       = "missing"
)

// Kind separates the two failure families of the engine.
type Kind int

const (
	KindInvalid Kind = iota // A value fails a type/shape/required constraint during Validate.
	KindMissing             // A required Get path segment is absent from the source.
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalid matches every *Error of KindInvalid via errors.Is.
	ErrInvalid = errors.New("reshape: invalid")
	// ErrMissing matches every *Error of KindMissing via errors.Is.
	ErrMissing = errors.New("reshape: missing")
	// ErrUnknownField is returned by Instance.Set for names the schema does not declare.
	ErrUnknownField = errors.New("reshape: unknown field")
	// ErrFieldRebound is returned by Build when one Field value is registered under two names.
	ErrFieldRebound = errors.New("reshape: field already bound to another name")
)

// Error is a single validation or lookup failure.
type Error struct {
	Kind    Kind
	Code    string // One of the codes listed above.
	Path    string // JSON Pointer relative to the validated record (for example: /captain/first_name).
	Message string
	Value   any   // Optional: the offending value.
	Cause   error // Optional: underlying error.
}

func (e *Error) Error() string {
	if e.Path == "" || e.Path == "/" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel of this error's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalid:
		return e.Kind == KindInvalid
	case ErrMissing:
		return e.Kind == KindMissing
	}
	return false
}

// Errors is a collection of failures that implements error.
type Errors []*Error

// Error summarizes the first few errors.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", es[i].Code, es[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// AppendErrors appends errors to the destination, initializing the slice when
// needed.
func AppendErrors(dst Errors, more ...*Error) Errors {
	if dst == nil {
		dst = Errors{}
	}
	return append(dst, more...)
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsErrors extracts Errors from err. A single *Error is returned as a
// one-element collection.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	if e, ok := AsError(err); ok {
		return Errors{e}, true
	}
	return nil, false
}
