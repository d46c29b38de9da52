package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/nsqlite/mcpsqlite/internal/log"
	"github.com/nsqlite/mcpsqlite/internal/util/httputil"
)

func (s *Server) errorHandler(
	w http.ResponseWriter, r *http.Request, err error,
) {
	ip := httputil.ReadUserIP(r)
	errorURL := r.URL.String()
	errorId := uuid.NewString()

	var httpErr httputil.HTTPError
	if errors.As(err, &httpErr) {
		body := httpErr.Body
		if body == "" {
			body = http.StatusText(httpErr.HTTPStatus)
		}

		s.logger.WarnNs(
			log.NsServer, "error while handling request", log.KV{
				"id":     errorId,
				"status": httpErr.HTTPStatus,
				"error":  httpErr.Error(),
				"url":    errorURL,
				"ip":     ip,
			},
		)

		_ = httputil.WriteText(w, httpErr.HTTPStatus, body)
		return
	}

	s.logger.ErrorNs(
		log.NsServer, "unknown error while handling request", log.KV{
			"id":    errorId,
			"error": err.Error(),
			"url":   errorURL,
			"ip":    ip,
		},
	)
	_ = httputil.WriteText(
		w, http.StatusInternalServerError, "Internal Server Error - "+errorId,
	)
}
