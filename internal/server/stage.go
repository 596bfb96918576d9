package server

// Stage marks how far a connection has progressed. Stages are passed strictly in order.
type Stage uint8

const (
	Accepted Stage = iota
	Reading
	Parsed
	Routed
	Handled
	Written
	Closed
)

var stageNames = [...]string{
	Accepted: "accepted",
	Reading:  "reading",
	Parsed:   "parsed",
	Routed:   "routed",
	Handled:  "handled",
	Written:  "written",
	Closed:   "closed",
}

func (s Stage) String() string {
	if int(s) >= len(stageNames) {
		return "unknown"
	}

	return stageNames[s]
}
