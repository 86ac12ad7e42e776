package tasks

import (
	"sort"
	"time"
)

// Event is a single timestamped message pulled from a channel's history.
// Events are immutable once fetched; ordering is by Timestamp with ties
// broken by arrival order.
type Event struct {
	Author    string
	Timestamp time.Time
	Text      string
}

// Task is a contiguous span of time attributed to one or more tags,
// derived from the gap between two consecutive tagged events.
type Task struct {
	Start time.Time
	End   time.Time
	Tags  []string
}

// Duration returns the length of the task interval.
func (t Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// Clone returns a copy of the task with its own tag slice, so callers
// grouping by tag cannot observe each other's mutations.
func (t Task) Clone() Task {
	tags := make([]string, len(t.Tags))
	copy(tags, t.Tags)
	return Task{Start: t.Start, End: t.End, Tags: tags}
}

// Build converts an ordered stream of events into a sequence of
// non-overlapping task intervals partitioning [windowStart, windowEnd).
//
// The first event's interval starts at windowStart; every later event's
// interval starts at its own timestamp. Each interval ends at the next
// event's timestamp, except the last, which ends at windowEnd. Events
// whose text yields no tags produce no task: their interval is dropped,
// not merged into a neighbor.
//
// Events are sorted defensively before processing; callers need not
// pre-sort. The sort is stable, so events sharing a timestamp keep
// their arrival order.
func Build(events []Event, windowStart, windowEnd time.Time) ([]Task, error) {
	if windowStart.After(windowEnd) {
		return nil, &InvalidWindowError{Start: windowStart, End: windowEnd}
	}
	for i, ev := range events {
		if ev.Timestamp.IsZero() {
			return nil, &MalformedEventError{Index: i, Reason: "missing timestamp"}
		}
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var out []Task
	n := len(sorted)
	for i, ev := range sorted {
		start := ev.Timestamp
		if i == 0 {
			start = windowStart
		}
		end := windowEnd
		if i < n-1 {
			end = sorted[i+1].Timestamp
		}
		tags := ExtractTags(ev.Text)
		if len(tags) == 0 {
			continue
		}
		out = append(out, Task{Start: start, End: end, Tags: tags})
	}
	return out, nil
}
