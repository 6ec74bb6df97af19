// Package transform provides the composable nodes evaluated by a
// reshape.Mapping.
//
// Every node implements reshape.Node. Node arguments are either literal
// values or other nodes; nested nodes are evaluated first, depth-first and
// left to right, against the same source:
//
//	transform.Concat(transform.Get("first"), " ", transform.Get("last"))
//
// Nodes are immutable and hold no state between evaluations.
package transform

import (
	"errors"
	"strings"

	"github.com/reoring/reshape"
)

var (
	// ErrNotText is returned by Concat when a part is not a string.
	ErrNotText = errors.New("transform: concat of non-text value")
	// ErrNotSequence is returned by Chain when an argument is not a sequence.
	ErrNotSequence = errors.New("transform: not a sequence")
	// ErrNotDate is returned by the date nodes for unsupported input.
	ErrNotDate = errors.New("transform: not a date")
	// ErrNoArgument is returned when a node that needs an argument has none.
	ErrNoArgument = errors.New("transform: missing argument")
)

// eval evaluates arg against src when it is a node and returns it unchanged
// otherwise.
func eval(arg, src any) (any, error) {
	if n, ok := arg.(reshape.Node); ok {
		return n.Eval(src)
	}
	return arg, nil
}

func evalArgs(args []any, src any) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		v, err := eval(a, src)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// GetNode walks a path of names through the source.
type GetNode struct {
	path     []string
	required bool
}

// Get returns a node reading path from the source: map keys, record
// attributes or struct fields. A missing step yields nil.
func Get(path ...string) *GetNode { return &GetNode{path: path} }

// GetRequired is like Get but fails with a reshape.ErrMissing error when a
// step is absent.
func GetRequired(path ...string) *GetNode { return &GetNode{path: path, required: true} }

func (g *GetNode) Eval(src any) (any, error) {
	cur := src
	for i, name := range g.path {
		v, ok := reshape.Lookup(cur, name)
		if !ok {
			if g.required {
				return nil, reshape.NewMissing("/" + strings.Join(g.path[:i+1], "/"))
			}
			return nil, nil
		}
		cur = v
	}
	return cur, nil
}

// AllNode passes the whole source through.
type AllNode struct{ strict bool }

// All returns the source. Records are replaced by their raw snapshot, so
// keys the source schema does not declare survive.
func All() *AllNode { return &AllNode{} }

// AllStrict returns the source as is, without the raw snapshot.
func AllStrict() *AllNode { return &AllNode{strict: true} }

func (a *AllNode) Eval(src any) (any, error) {
	if !a.strict {
		if r, ok := src.(reshape.RawSnapshotter); ok && !reshape.IsNil(src) {
			return r.Raw(), nil
		}
	}
	return src, nil
}

// ConstNode yields a fixed value.
type ConstNode struct{ value any }

// Const returns a node yielding v regardless of the source. A node passed
// as v is evaluated.
func Const(v any) *ConstNode { return &ConstNode{value: v} }

func (c *ConstNode) Eval(src any) (any, error) { return eval(c.value, src) }
