package tasks

import (
	"fmt"
	"time"
)

// InvalidWindowError is returned when an analysis window's start is
// after its end.
type InvalidWindowError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid analysis window: start %s is after end %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// MalformedEventError is returned when an event in the input stream is
// missing its timestamp. It is a caller contract violation and is
// fatal to the analysis call; no events are skipped.
type MalformedEventError struct {
	Index  int
	Reason string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event at index %d: %s", e.Index, e.Reason)
}
