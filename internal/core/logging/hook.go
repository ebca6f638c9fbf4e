package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts the brief source and citation_id from context and
// adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if source := GetBrief(ctx); source != "" {
		e.Str("brief", source)
	}

	if id := GetCitationID(ctx); id != "" {
		e.Str("citation_id", id)
	}
}
