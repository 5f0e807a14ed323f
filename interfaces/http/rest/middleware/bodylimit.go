package middleware

import "net/http"

// MaxBodyBytes is the request body cap applied before handler dispatch.
const MaxBodyBytes = 10 << 20 // 10 MiB

// BodyLimit rejects request bodies over MaxBodyBytes. Handlers see the
// oversize as a read error from the wrapped body.
func BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
