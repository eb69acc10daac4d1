package audit

import "context"

// Origin is where a change came from. Both fields are empty for cron runs.
type Origin struct {
	IPAddress string
	UserAgent string
}

type originKey struct{}

// WithOrigin attaches the request origin to ctx.
func WithOrigin(ctx context.Context, o Origin) context.Context {
	return context.WithValue(ctx, originKey{}, o)
}

// OriginFrom returns the origin stored in ctx, or the zero Origin.
func OriginFrom(ctx context.Context) Origin {
	o, _ := ctx.Value(originKey{}).(Origin)
	return o
}
