package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes the server is able to respond with. The list is intentionally
// short: every endpoint produces one of these.
const (
	OK      Code = 200 // RFC 9110, 15.3.1
	Created Code = 201 // RFC 9110, 15.3.2

	BadRequest Code = 400 // RFC 9110, 15.5.1
	NotFound   Code = 404 // RFC 9110, 15.5.5

	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

var texts = map[Code]Status{
	OK:                  "OK",
	Created:             "Created",
	BadRequest:          "Bad Request",
	NotFound:            "Not Found",
	InternalServerError: "Internal Server Error",
}

// Text returns a reason phrase for the code. Unknown codes get a generic one, so
// the status line is always well-formed.
func Text(code Code) Status {
	if text, ok := texts[code]; ok {
		return text
	}

	return "Unknown Status Code"
}

// String returns the decimal representation of the code as it appears on the wire.
func (c Code) String() string {
	return strconv.Itoa(int(c))
}
