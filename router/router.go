// Package router resolves a request target into an Endpoint: the intent of the request,
// before any response is produced.
package router

import "fmt"

// Endpoint is a closed set of variants: Index, Echo, UserAgent, File and NotFound. No
// other package can add a variant, so a type switch over these five is exhaustive.
type Endpoint interface {
	fmt.Stringer
	endpoint()
}

type (
	// Index is the root path.
	Index struct{}

	// Echo carries the path segment to be echoed back.
	Echo struct {
		Segment string
	}

	// UserAgent reports the client's User-Agent header.
	UserAgent struct{}

	// File carries the requested file name.
	File struct {
		Name string
	}

	// NotFound is any target not matching the above.
	NotFound struct{}
)

func (Index) endpoint()     {}
func (Echo) endpoint()      {}
func (UserAgent) endpoint() {}
func (File) endpoint()      {}
func (NotFound) endpoint()  {}

func (Index) String() string     { return "index" }
func (e Echo) String() string    { return "echo(" + e.Segment + ")" }
func (UserAgent) String() string { return "user-agent" }
func (f File) String() string    { return "file(" + f.Name + ")" }
func (NotFound) String() string  { return "not-found" }
