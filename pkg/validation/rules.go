package validation

import (
	"fmt"
	"regexp"
	"time"
)

// Required fails when the value is empty.
func (v *Validator) Required(msg string) *Validator {
	return v.check("required", func() bool {
		return v.value.Len() > 0
	}, msg, MsgRequired)
}

// Numeric fails unless the value is a number or a numeric string.
func (v *Validator) Numeric(msg string) *Validator {
	return v.check("numeric", func() bool {
		_, ok := v.value.Number()
		return ok
	}, msg, MsgNumeric)
}

// Integer fails unless the value is numeric with no fractional part.
func (v *Validator) Integer(msg string) *Validator {
	return v.check("integer", v.value.IsInteger, msg, MsgInteger)
}

// Min fails when the value has fewer than length characters.
func (v *Validator) Min(length int, msg string) *Validator {
	return v.check("min", func() bool {
		return v.value.Len() >= length
	}, msg, MsgMin)
}

// Max fails when the value has more than length characters.
func (v *Validator) Max(length int, msg string) *Validator {
	return v.check("max", func() bool {
		return v.value.Len() <= length
	}, msg, MsgMax)
}

// Equals fails unless the value has the same type and payload as other.
func (v *Validator) Equals(other any, msg string) *Validator {
	return v.check("equals", func() bool {
		return v.value.Equal(Of(other))
	}, msg, MsgEquals)
}

// Between fails unless the value is numeric and lo <= value <= hi.
func (v *Validator) Between(lo, hi float64, msg string) *Validator {
	return v.check("between", func() bool {
		n, ok := v.value.Number()
		return ok && lo <= n && n <= hi
	}, msg, MsgBetween)
}

// Regex fails unless pattern matches the whole value. Compiled patterns are
// cached. It panics with ErrInvalidPattern if pattern does not compile.
func (v *Validator) Regex(pattern, msg string) *Validator {
	re := v.compile(pattern)
	return v.check("regex", func() bool {
		return re.MatchString(v.value.String())
	}, msg, MsgRegex)
}

// Pattern fails unless re matches the whole value. The anchored form of re
// is compiled once and cached like Regex patterns.
func (v *Validator) Pattern(re *regexp.Regexp, msg string) *Validator {
	if re == nil {
		panic(fmt.Errorf("%w: nil pattern", ErrInvalidArgument))
	}
	return v.Regex(re.String(), msg)
}

// Date fails unless the value parses with layout and formats back to the
// same string, which rejects impossible dates such as 2023-02-29.
// Layout uses Go reference time notation. An empty layout panics.
func (v *Validator) Date(layout, msg string) *Validator {
	if layout == "" {
		panic(ErrInvalidLayout)
	}
	return v.check("date", func() bool {
		s := v.value.String()
		t, err := time.Parse(layout, s)
		return err == nil && t.Format(layout) == s
	}, msg, MsgDate)
}

// In fails unless the value strictly equals one of allowed.
func (v *Validator) In(allowed []any, msg string) *Validator {
	return v.check("in", func() bool {
		for _, a := range allowed {
			if v.value.Equal(Of(a)) {
				return true
			}
		}
		return false
	}, msg, MsgIn)
}

// Custom fails when fn returns false for the value.
func (v *Validator) Custom(fn func(Value) bool, msg string) *Validator {
	if fn == nil {
		panic(fmt.Errorf("%w: nil custom predicate", ErrInvalidArgument))
	}
	return v.check("custom", func() bool {
		return fn(v.value)
	}, msg, MsgCustom)
}

func (v *Validator) compile(pattern string) *regexp.Regexp {
	re, err := v.patterns.GetOrLoad(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(`^(?:` + pattern + `)$`)
	})
	if err != nil {
		panic(fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err))
	}
	return re
}
