package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/InfinityXOneSystems/Real-Estate-Intelligence/pkg/common"
)

// Recoverer converts a handler panic into a 500 envelope. The underlying
// message is included outside production and suppressed in it.
func Recoverer(logger *zap.Logger, production bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("Handler panic",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("panic", rec),
						zap.Stack("stack"),
					)

					message := "Internal server error"
					if !production {
						message = fmt.Sprintf("Internal server error: %v", rec)
					}
					common.RespondError(w, http.StatusInternalServerError, message)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
