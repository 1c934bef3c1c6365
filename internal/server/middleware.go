package server

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

// requestID tags each request with a generated identifier so log lines from
// one resolution can be correlated.
func requestID(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		rw.Header().Set("X-Request-Id", id)
		logger.Printf("[INFO] request %s: %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(rw, r)
	})
}
