package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/http/respond"
)

// Recover converts handler panics into a 500 JSON response. A panic after the
// response has started is only logged.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracked := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			zerolog.Ctx(r.Context()).Error().
				Str("panic", fmt.Sprint(rec)).
				Bool("response_started", tracked.wroteHeader).
				Msg("handler panic")
			if tracked.wroteHeader {
				return
			}
			respond.Error(w, r, http.StatusInternalServerError, "Internal Server Error")
		}()
		next.ServeHTTP(tracked, r)
	})
}
