package transform

import (
	"fmt"
	"reflect"
	"time"

	"github.com/araddon/dateparse"

	"github.com/reoring/reshape/codec"
)

// ParseDateNode parses a timestamp or date string into a time.Time.
type ParseDateNode struct {
	arg any
	loc *time.Location
}

// ParseDate parses arg in UTC. See ParseDateIn.
func ParseDate(arg any) *ParseDateNode { return &ParseDateNode{arg: arg, loc: time.UTC} }

// ParseDateIn parses arg: integers are Unix seconds, strings are parsed by
// a best-effort date parser. loc is attached when the input carries no zone
// of its own.
func ParseDateIn(arg any, loc *time.Location) *ParseDateNode {
	if loc == nil {
		loc = time.UTC
	}
	return &ParseDateNode{arg: arg, loc: loc}
}

func (p *ParseDateNode) Eval(src any) (any, error) {
	v, err := eval(p.arg, src)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case string:
		if ts, err := codec.ParseISO(t); err == nil {
			return ts, nil
		}
		ts, err := dateparse.ParseIn(t, p.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNotDate, t, err)
		}
		return ts, nil
	case bool, nil:
		return nil, fmt.Errorf("%w: %v", ErrNotDate, v)
	}
	rv := reflect.ValueOf(v)
	var sec int64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sec = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sec = int64(rv.Uint())
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotDate, v)
	}
	u := time.Unix(sec, 0).UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), 0, p.loc), nil
}

// DateToIsoNode formats a time as ISO 8601 text.
type DateToIsoNode struct{ args []any }

// DateToIsoString formats the first evaluated argument, a time.Time or
// *time.Time, as ISO 8601 text.
func DateToIsoString(args ...any) *DateToIsoNode { return &DateToIsoNode{args: args} }

func (d *DateToIsoNode) Eval(src any) (any, error) {
	vals, err := evalArgs(d.args, src)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNotDate, ErrNoArgument)
	}
	switch t := vals[0].(type) {
	case time.Time:
		return codec.FormatISO(t), nil
	case *time.Time:
		if t != nil {
			return codec.FormatISO(*t), nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNotDate, vals[0])
}
