package http1

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/utils/uf"
)

const (
	crlf            = "\r\n"
	headersBodySep  = "\r\n\r\n"
	headerKeyValSep = ": "
)

// Parser fills the request with the data of a single complete message. It is not streaming:
// the whole request must be passed at once, and anything incomplete is rejected.
type Parser struct {
	request *http.Request
}

func NewParser(request *http.Request) *Parser {
	return &Parser{
		request: request,
	}
}

// Parse parses the data into the request. All the string fields of the request point into
// the data without copying, so the data must not be modified as long as the request is in use.
func (p *Parser) Parse(data []byte) error {
	if !utf8.Valid(data) {
		return status.ErrBadEncoding
	}

	text := uf.B2S(data)

	requestLine, _, found := strings.Cut(text, crlf)
	if !found {
		return status.ErrMalformedRequestLine
	}

	if err := p.parseRequestLine(requestLine); err != nil {
		return err
	}

	// the delimiter is searched starting from the CRLF terminating the request line. By that,
	// a request without headers at all is simply the request line followed by an empty line.
	rest := text[len(requestLine):]
	end := strings.Index(rest, headersBodySep)
	if end == -1 {
		return status.ErrMissingBodyDelimiter
	}

	if end > 0 {
		if err := p.parseHeaders(rest[len(crlf):end]); err != nil {
			return err
		}
	}

	p.request.Body = rest[end+len(headersBodySep):]

	return nil
}

// parseRequestLine splits the line on single spaces. At least three tokens are required,
// anything after the third one is ignored.
func (p *Parser) parseRequestLine(line string) error {
	methodToken, rest, found := strings.Cut(line, " ")
	if !found {
		return status.ErrMalformedRequestLine
	}

	target, rest, found := strings.Cut(rest, " ")
	if !found {
		return status.ErrMalformedRequestLine
	}

	protocol, _, _ := strings.Cut(rest, " ")

	p.request.Method = methodToken
	p.request.Target = target
	p.request.Protocol = protocol

	return nil
}

func (p *Parser) parseHeaders(block string) error {
	for len(block) > 0 {
		var line string
		line, block, _ = strings.Cut(block, crlf)

		key, value, found := strings.Cut(line, headerKeyValSep)
		if !found {
			return status.ErrMalformedHeader
		}

		p.request.Headers.Add(key, value)
	}

	return nil
}
