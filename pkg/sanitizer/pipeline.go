package sanitizer

// Func transforms a string.
type Func func(string) string

// Apply runs s through fns in order.
func Apply(s string, fns ...Func) string {
	for _, fn := range fns {
		s = fn(s)
	}
	return s
}

// Compose returns a Func applying fns in order.
func Compose(fns ...Func) Func {
	return func(s string) string {
		return Apply(s, fns...)
	}
}
