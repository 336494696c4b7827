package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"
)

type message struct {
	Status string `json:"status"`
	Body   string `json:"body"`
}

// Limit rejects requests with 429 once the shared token bucket of rps
// tokens per second and size burst runs dry.
func Limit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(message{
					Status: "Request Failed",
					Body:   "The API is at capacity, try again later.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
