package clientip

import "context"

type ctxKey struct{}

// WithIP stores ip in ctx.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ip)
}

// FromContext returns the stored address, or Loopback when there is none.
func FromContext(ctx context.Context) string {
	if ip, _ := ctx.Value(ctxKey{}).(string); ip != "" {
		return ip
	}
	return Loopback
}
