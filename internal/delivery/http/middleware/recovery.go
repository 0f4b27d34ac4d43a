package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/sirupsen/logrus"
)

func Recovery(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					var stack [4096]byte
					n := runtime.Stack(stack[:], false)

					log.WithFields(logrus.Fields{
						"request_id": GetRequestIDFromContext(r.Context()),
						"panic":      fmt.Sprintf("%v", rv),
						"stack":      string(stack[:n]),
					}).Error("panic recovered")

					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
