package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Header carrying the request trace ID. The agent's gateway does not set it
// today, so most requests get a freshly minted ID; callers that do set it
// (curl sessions, a future UI) see it echoed back.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request-scoped child logger tagged with the trace
// ID to the request context. Downstream handlers pick it up via
// [logger.FromRequest], so every log line of one action call shares the same
// trace_id field.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.GetChildLogger()
		requestLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(requestLogger.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
