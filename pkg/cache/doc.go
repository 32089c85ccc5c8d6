// Package cache provides a small generic LRU cache.
//
// The validation package keeps compiled regular expressions here so that a
// pattern used on every request is compiled once:
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](128)
//	re, err := patterns.GetOrLoad(expr, func() (*regexp.Regexp, error) {
//	    return regexp.Compile(expr)
//	})
//
// All methods are safe for concurrent use. Loader errors are returned to the
// caller and nothing is stored.
package cache
