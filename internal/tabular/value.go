package tabular

import (
	"strconv"
	"strings"
)

// Kind identifies the inferred type of a parsed cell.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
)

// Value is a tagged scalar produced by cell type inference: null, bool, int,
// float, string or list-of-strings. Accessors coerce across kinds so a
// numeric column that happens to contain "1" (inferred bool) still reads as
// a number.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []string
}

// Constructors.

func Null() Value            { return Value{kind: KindNull} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func Int(i int64) Value      { return Value{kind: KindInt, i: i} }
func Float(f float64) Value  { return Value{kind: KindFloat, f: f} }
func String(s string) Value  { return Value{kind: KindString, s: s} }
func List(xs []string) Value { return Value{kind: KindList, list: xs} }

// Kind returns the inferred type tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the cell was empty.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool coerces the value to a boolean. Numbers are true when non-zero.
func (v Value) Bool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	default:
		return false
	}
}

// Int coerces the value to an integer: bools become 0/1, floats truncate,
// numeric strings parse. Anything else is zero.
func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return int64(v.f)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Float coerces the value to a float64 with the same rules as Int.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String renders the value. Lists join with commas; null renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindList:
		return strings.Join(v.list, ",")
	default:
		return ""
	}
}

// List coerces the value to a string slice. A comma-joined string splits into
// trimmed elements; any other scalar becomes a single-element slice; null is
// nil.
func (v Value) List() []string {
	switch v.kind {
	case KindList:
		return v.list
	case KindNull:
		return nil
	case KindString:
		if v.s == "" {
			return nil
		}
		parts := strings.Split(v.s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	default:
		return []string{v.String()}
	}
}
