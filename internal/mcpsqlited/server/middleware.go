package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/nsqlite/mcpsqlite/internal/log"
	"github.com/nsqlite/mcpsqlite/internal/util/httputil"
)

// statusRecorder remembers the status written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequestMiddleware logs every request with its final status and
// duration at debug level.
func (s *Server) logRequestMiddleware(
	next httputil.HandlerFuncErr,
) httputil.HandlerFuncErr {
	return func(w http.ResponseWriter, r *http.Request) error {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		err := next(rec, r)

		status := rec.status
		if err != nil {
			status = http.StatusInternalServerError
			var httpErr httputil.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.HTTPStatus
			}
		}

		s.logger.DebugNs(log.NsServer, "request handled", log.KV{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": status,
			"ip":     httputil.ReadUserIP(r),
			"time":   time.Since(start).Seconds(),
		})
		return err
	}
}
