package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose labels the context with what the call is for ("enrich",
// …). The logging middleware picks it up.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
