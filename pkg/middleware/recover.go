package middleware

import (
	"fmt"
	"net/http"

	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500 JSON response so the server keeps serving.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("PANIC recovered",
					zap.Any("error", rec),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.Stack("stack"),
				)

				utils.ResponseInternalError(w, "Server error", fmt.Errorf("%v", rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
