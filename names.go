package reshape

import "strings"

// EscapePrefix marks a declared name that stands in for an external name that
// cannot be used directly (a reserved word in a generated client, for
// example). A field declared as "__if" is read, written, constructed and
// serialized as "if".
const EscapePrefix = "__"

// Escape returns the declared form of an external name.
func Escape(name string) string { return EscapePrefix + name }

// Unescape strips the escape marker, returning the external name.
func Unescape(name string) string { return strings.TrimPrefix(name, EscapePrefix) }
