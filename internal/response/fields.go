package response

import (
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/kv"
)

// DefaultProtocol is echoed in every status line.
const DefaultProtocol = "HTTP/1.1"

type Fields struct {
	Protocol string
	Status   status.Status
	Headers  *kv.Storage
	Body     []byte
	Code     status.Code
}

// StatusText returns the custom status text if one was set, otherwise the standard reason
// phrase of the code.
func (f *Fields) StatusText() status.Status {
	if len(f.Status) == 0 {
		return status.Text(f.Code)
	}

	return f.Status
}

func (f *Fields) Clear() {
	f.Protocol = DefaultProtocol
	f.Code = status.OK
	f.Status = ""
	f.Headers.Clear()
	f.Body = nil
}
