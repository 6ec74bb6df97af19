package reshape

import (
	"strconv"
	"strings"
)

// pointerField returns the JSON Pointer segment for name, escaping '~' and
// '/' per RFC6901.
func pointerField(name string) string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}

func pointerIndex(base string, i int) string {
	if base == "/" {
		base = ""
	}
	return base + "/" + strconv.Itoa(i)
}

// JoinPointer appends a field segment to a JSON Pointer.
func JoinPointer(base, name string) string {
	if base == "/" {
		base = ""
	}
	return base + pointerField(name)
}

// rebase prefixes the path of err with base when err is an *Error or Errors.
// Other errors are returned unchanged.
func rebase(err error, base string) error {
	switch t := err.(type) {
	case *Error:
		return rebaseOne(t, base)
	case Errors:
		out := make(Errors, len(t))
		for i, e := range t {
			out[i] = rebaseOne(e, base)
		}
		return out
	default:
		return err
	}
}

func rebaseOne(e *Error, base string) *Error {
	if base == "" || base == "/" {
		return e
	}
	c := *e
	switch {
	case e.Path == "" || e.Path == "/":
		c.Path = base
	case e.Path[0] == '/':
		c.Path = base + e.Path
	default:
		c.Path = base + "/" + e.Path
	}
	return &c
}
