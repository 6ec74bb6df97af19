package transform

// Func is an arbitrary function applied by Do.
type Func func(args ...any) (any, error)

// DoNode applies a Func to its evaluated arguments.
type DoNode struct {
	fn   Func
	args []any
}

// Do returns a node calling fn with the evaluated args.
func Do(fn Func, args ...any) *DoNode { return &DoNode{fn: fn, args: args} }

func (d *DoNode) Eval(src any) (any, error) {
	vals, err := evalArgs(d.args, src)
	if err != nil {
		return nil, err
	}
	return d.fn(vals...)
}
