package logging

import "context"

type contextKey string

const (
	briefKey      contextKey = "brief"
	citationIDKey contextKey = "citation_id"
)

// WithBrief adds the brief source (file path, "-" or "sample") to the context.
func WithBrief(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, briefKey, source)
}

// WithCitationID adds a citation ID to the context.
func WithCitationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, citationIDKey, id)
}

// GetBrief retrieves the brief source from the context.
// Returns empty string if not present.
func GetBrief(ctx context.Context) string {
	if s, ok := ctx.Value(briefKey).(string); ok {
		return s
	}
	return ""
}

// GetCitationID retrieves the citation ID from the context.
// Returns empty string if not present.
func GetCitationID(ctx context.Context) string {
	if id, ok := ctx.Value(citationIDKey).(string); ok {
		return id
	}
	return ""
}
