package editline

import "strconv"

// Status is what a key handler tells libeditline to do next. The values
// are el_status_t ordinals and must not be renumbered.
type Status int

const (
	Done     Status = iota // accept the line
	EOF                    // end of input; ReadLine reports false
	Move                   // cursor moved, redisplay it
	Dispatch               // re-dispatch the key
	Stay                   // nothing to do
	Signal                 // a signal was raised
)

var statusNames = [...]string{
	Done:     "done",
	EOF:      "eof",
	Move:     "move",
	Dispatch: "dispatch",
	Stay:     "stay",
	Signal:   "signal",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}
