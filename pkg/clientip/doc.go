// Package clientip resolves the client address of an HTTP request and carries
// it through context.Context.
//
// The captcha predicate of the validation package reads the address with
// FromContext and forwards it to the verification service, so handlers only
// need to mount Middleware in front of their routes:
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//
// Proxy headers are consulted in order: CF-Connecting-IP, X-Forwarded-For
// (first valid entry), X-Real-IP; RemoteAddr is the last resort. Only values
// that parse as IP addresses are accepted.
package clientip
