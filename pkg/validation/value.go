package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies the payload carried by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a scalar form value: null, string, integer, float or boolean.
// The zero Value is null.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

func Null() Value { return Value{} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// False returns the failure sentinel stored by a failed field.
func False() Value { return Bool(false) }

// Of converts a Go scalar into a Value. Byte slices become strings, nil
// becomes null and anything else is stored in its fmt string form.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case []byte:
		return String(string(x))
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return uintValue(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return Float(f)
		}
		return String(x.String())
	case fmt.Stringer:
		return String(x.String())
	default:
		return String(fmt.Sprint(x))
	}
}

func uintValue(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// IsFalse reports whether v is the boolean false, the marker of a failed field.
func (v Value) IsFalse() bool { return v.kind == KindBool && !v.b }

// String returns the scalar string form: "" for null and false, "1" for true.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// Len returns the number of characters in the string form, counted on its
// NFC normalisation.
func (v Value) Len() int {
	s := v.String()
	if norm.NFC.IsNormalString(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(norm.NFC.String(s))
}

var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Number returns the numeric interpretation of v. Strings qualify when they
// hold a decimal number, optionally with exponent and surrounding whitespace.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return 0, false
		}
		return v.f, true
	case KindString:
		s := strings.TrimSpace(v.s)
		if !numericRegex.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IsInteger reports whether v is numeric with no fractional part.
func (v Value) IsInteger() bool {
	if v.kind == KindInt {
		return true
	}
	f, ok := v.Number()
	return ok && f == math.Trunc(f)
}

// Equal reports strict equality: same kind and same payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == other.s
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	default:
		return true
	}
}

// LooseEqual compares numerically when both sides are numeric, by
// truthiness when either side is a bool and by string form otherwise.
func (v Value) LooseEqual(other Value) bool {
	if v.kind == KindBool || other.kind == KindBool {
		return v.Truthy() == other.Truthy()
	}
	if v.kind == KindNull || other.kind == KindNull {
		return v.String() == other.String()
	}
	a, okA := v.Number()
	b, okB := other.Number()
	if okA && okB {
		return a == b
	}
	return v.String() == other.String()
}

// Truthy is false for null, false, 0, 0.0, "" and "0".
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.s != "" && v.s != "0"
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindBool:
		return v.b
	default:
		return false
	}
}

// Any returns the payload as a plain Go value (nil, string, int64, float64 or bool).
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindFloat && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.Any())
}

// GoString makes Values readable in test failure output.
func (v Value) GoString() string {
	if v.kind == KindString {
		return fmt.Sprintf("validation.String(%q)", v.s)
	}
	return fmt.Sprintf("validation.%s(%s)", kindCtor(v.kind), v.debugPayload())
}

func kindCtor(k Kind) string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	default:
		return "Null"
	}
}

func (v Value) debugPayload() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
