package httputil

// HTTPError is an error that carries the status and the plain-text body
// that should be sent to the client.
type HTTPError struct {
	error
	HTTPStatus int
	Body       string
}

// NewHTTPError creates a new HTTPError.
//
// The err is the detailed error to be logged internally, while body is the
// exact text written to the client. If no body is provided, the textual
// representation of the status code is used.
func NewHTTPError(status int, err error, body ...string) HTTPError {
	pickedBody := ""
	if len(body) > 0 {
		pickedBody = body[0]
	}

	return HTTPError{
		error:      err,
		HTTPStatus: status,
		Body:       pickedBody,
	}
}

// Unwrap returns the wrapped error.
func (e HTTPError) Unwrap() error {
	return e.error
}
