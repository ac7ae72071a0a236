package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes is plenty for the JSON payloads the API accepts.
const DefaultMaxBodyBytes = 1 << 20

// LimitAndDrainBody caps the request body at maxBodyBytes and, once the
// handler is done, drains whatever it left unread so the connection can be
// reused.
func LimitAndDrainBody(maxBodyBytes int64) func(next http.Handler) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
