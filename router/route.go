package router

import "strings"

// Route maps the request target onto an Endpoint. It never fails: anything unrecognized
// is NotFound.
//
// Only the first segment after the leading slash is matched, and for echo and files also
// the segment immediately following it. Further segments are ignored, so /echo/a/b echoes
// "a". A present but empty parameter segment (/echo/) still counts as present.
func Route(target string) Endpoint {
	rest, found := strings.CutPrefix(target, "/")
	if !found {
		return NotFound{}
	}

	first, rest, hasParam := strings.Cut(rest, "/")
	param, _, _ := strings.Cut(rest, "/")

	switch first {
	case "":
		return Index{}
	case "echo":
		if hasParam {
			return Echo{Segment: param}
		}
	case "user-agent":
		return UserAgent{}
	case "files":
		if hasParam {
			return File{Name: param}
		}
	}

	return NotFound{}
}
