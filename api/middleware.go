package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(route string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r, ps)
		elapsed := time.Since(start)
		s.metrics.ObserveHTTP(route, strconv.Itoa(rec.status), elapsed)
		s.log.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "elapsed", elapsed)
	}
}

func corsOptions(allowedOrigins []string) cors.Options {
	return cors.Options{
		AllowOriginFunc:  allowedOrigin(allowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
}

// allowedOrigin accepts every origin when the list is empty or starts with "*".
// Entries match with or without their scheme.
func allowedOrigin(allowedOrigins []string) func(origin string) bool {
	trimScheme := func(origin string) string {
		return strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://")
	}
	return func(origin string) bool {
		if len(allowedOrigins) == 0 || allowedOrigins[0] == "*" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if allowed == origin || trimScheme(allowed) == trimScheme(origin) {
				return true
			}
		}
		return false
	}
}
