package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that caps incoming request
// bodies at limit bytes. Handlers reading past the cap get an error from the
// body reader, which surfaces as a rejected request instead of unbounded
// memory use from an oversized snapshot edit.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
