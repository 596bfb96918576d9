package http1

import (
	"strconv"

	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/transport"
)

// Serializer renders responses into a reusable buffer and transmits them in a single write.
type Serializer struct {
	client transport.Client
	buff   []byte
}

func NewSerializer(client transport.Client, buff []byte) *Serializer {
	return &Serializer{
		client: client,
		buff:   buff,
	}
}

// Write serializes the response and writes it to the client. It returns the number of bytes
// actually written.
func (s *Serializer) Write(response *http.Response) (int, error) {
	s.buff = AppendResponse(s.buff[:0], response)
	return s.client.Write(s.buff)
}

// Serialize returns the wire representation of the response.
func Serialize(response *http.Response) []byte {
	return AppendResponse(nil, response)
}

// AppendResponse appends the wire representation of the response to the buff. The status
// line goes first, then every header in the order they were added, each terminated by CRLF,
// then an empty line and the body verbatim. A response without headers therefore still
// contains the empty line.
func AppendResponse(buff []byte, response *http.Response) []byte {
	fields := response.Expose()

	buff = append(buff, fields.Protocol...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(fields.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, fields.StatusText()...)
	buff = append(buff, crlf...)

	for _, header := range fields.Headers.Expose() {
		buff = append(buff, header.Key...)
		buff = append(buff, headerKeyValSep...)
		buff = append(buff, header.Value...)
		buff = append(buff, crlf...)
	}

	buff = append(buff, crlf...)

	return append(buff, fields.Body...)
}
