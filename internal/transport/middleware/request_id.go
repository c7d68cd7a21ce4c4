package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hi5jack/compass-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID makes every request traceable: an inbound X-Request-Id is kept
// so traces can span services, otherwise a fresh UUID is minted. The id goes
// into the context for the access log and is echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
