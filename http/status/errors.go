package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Parse failures. All of them are connection-scoped: the connection is dropped
// without writing any response, so the codes are informational only.
var (
	ErrBadEncoding          = NewError(BadRequest, "request is not valid UTF-8 text")
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrMissingBodyDelimiter = NewError(BadRequest, "missing CRLFCRLF after headers")
	ErrMalformedHeader      = NewError(BadRequest, "malformed header line")
)

// Process-level failures. They are wrapped around the underlying network error
// and stop the listener.
var (
	ErrBind   = NewError(InternalServerError, "cannot bind listener")
	ErrAccept = NewError(InternalServerError, "cannot accept connection")
)
