package transform

import (
	"errors"
	"fmt"

	"github.com/reoring/reshape"
)

// ErrManySubmapping is returned when a Many factory produces a sub-mapping
// node. Use ManySubmap for lists of sub-mappings.
var ErrManySubmapping = errors.New("transform: Many cannot apply a sub-mapping, use ManySubmap")

// NodeFactory builds a node around one literal item. Int, Num, Str and Bool
// are NodeFactory values.
type NodeFactory func(arg any) reshape.Node

// manyItems flattens evaluated arguments into the list a list node works
// on: nils are dropped; several remaining values form the list; a single
// sequence is the list; a single scalar is wrapped.
func manyItems(vals []any) []any {
	kept := make([]any, 0, len(vals))
	for _, v := range vals {
		if !reshape.IsNil(v) {
			kept = append(kept, v)
		}
	}
	switch len(kept) {
	case 0:
		return []any{}
	case 1:
		if items, ok := reshape.AsSlice(kept[0]); ok {
			return items
		}
		return kept
	default:
		return kept
	}
}

// ManyNode applies a node factory to every item of a list.
type ManyNode struct {
	sub  NodeFactory
	args []any
}

// Many returns a node applying sub to each item gathered from args. For an
// empty list sub is called once with nil to check the node kind.
func Many(sub NodeFactory, args ...any) *ManyNode { return &ManyNode{sub: sub, args: args} }

func (m *ManyNode) Eval(src any) (any, error) {
	vals, err := evalArgs(m.args, src)
	if err != nil {
		return nil, err
	}
	items := manyItems(vals)
	if len(items) == 0 && isSubmapping(m.sub(nil)) {
		return nil, ErrManySubmapping
	}
	out := make([]any, 0, len(items))
	for _, it := range items {
		n := m.sub(it)
		if isSubmapping(n) {
			return nil, ErrManySubmapping
		}
		v, err := n.Eval(nil)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func isSubmapping(n reshape.Node) bool {
	switch n.(type) {
	case *SubmappingNode, *ManySubmapNode:
		return true
	}
	return false
}

// SubmappingNode applies a mapping to its evaluated argument.
type SubmappingNode struct {
	m   *reshape.Mapping
	arg any
}

// Submapping returns a node applying m to the evaluated arg. The mapping sees
// arg, not the enclosing source.
func Submapping(m *reshape.Mapping, arg any) *SubmappingNode {
	return &SubmappingNode{m: m, arg: arg}
}

func (s *SubmappingNode) Eval(src any) (any, error) {
	v, err := eval(s.arg, src)
	if err != nil {
		return nil, err
	}
	return s.m.Apply(v)
}

// ManySubmapNode applies a mapping to every item of a list.
type ManySubmapNode struct {
	m    *reshape.Mapping
	args []any
}

// ManySubmap returns a node applying m to each item gathered from args, with
// the same flattening rule as Many.
func ManySubmap(m *reshape.Mapping, args ...any) *ManySubmapNode {
	return &ManySubmapNode{m: m, args: args}
}

func (s *ManySubmapNode) Eval(src any) (any, error) {
	vals, err := evalArgs(s.args, src)
	if err != nil {
		return nil, err
	}
	items := manyItems(vals)
	out := make([]any, 0, len(items))
	for i, it := range items {
		r, err := s.m.Apply(it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// ChainNode concatenates sequences.
type ChainNode struct{ args []any }

// Chain returns a node concatenating the evaluated sequences in order. nil
// arguments are skipped.
func Chain(args ...any) *ChainNode { return &ChainNode{args: args} }

func (c *ChainNode) Eval(src any) (any, error) {
	vals, err := evalArgs(c.args, src)
	if err != nil {
		return nil, err
	}
	out := []any{}
	for i, v := range vals {
		if reshape.IsNil(v) {
			continue
		}
		items, ok := reshape.AsSlice(v)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d is %T", ErrNotSequence, i, v)
		}
		out = append(out, items...)
	}
	return out, nil
}
