package analysis

import (
	"errors"
	"sort"
	"time"

	"github.com/bensmidt/switchlog/internal/tasks"
)

// Grouping controls how a multi-tagged task is counted.
type Grouping string

const (
	// GroupFirstTag counts each task once, toward its first tag.
	GroupFirstTag Grouping = "first_tag"
	// GroupAllTags counts each task fully toward every tag it carries.
	// Summed bucket durations can exceed the wall-clock analysis span;
	// that multiplicity is intentional and must not be averaged away.
	GroupAllTags Grouping = "all_tags"
)

// ErrEmptyAnalysis is returned when an analysis holds no buckets, so
// the analysis duration is undefined. Callers treat it as "nothing to
// report for this window" rather than a failure.
var ErrEmptyAnalysis = errors.New("no tagged tasks in analysis window")

// Bucket holds every task attributed to one tag.
type Bucket struct {
	Tag   string
	Tasks []tasks.Task
}

func (b *Bucket) add(t tasks.Task) {
	b.Tasks = append(b.Tasks, t)
}

// Duration is the summed duration of the bucket's tasks.
func (b *Bucket) Duration() time.Duration {
	var d time.Duration
	for _, t := range b.Tasks {
		d += t.Duration()
	}
	return d
}

// NumTasks is the number of tasks in the bucket.
func (b *Bucket) NumTasks() int {
	return len(b.Tasks)
}

// First returns the bucket's earliest task by start time.
func (b *Bucket) First() tasks.Task {
	b.sortByStart()
	return b.Tasks[0]
}

// Last returns the bucket's latest task by start time.
func (b *Bucket) Last() tasks.Task {
	b.sortByStart()
	return b.Tasks[len(b.Tasks)-1]
}

func (b *Bucket) sortByStart() {
	sort.SliceStable(b.Tasks, func(i, j int) bool {
		return b.Tasks[i].Start.Before(b.Tasks[j].Start)
	})
}

// TaskAnalysis groups a task sequence by tag. Buckets keep the order
// in which their tags were first seen while scanning the tasks; no
// alphabetical resort. Input tasks are deep-copied, so an analysis
// never shares tag slices with its caller or with other analyses.
type TaskAnalysis struct {
	buckets map[string]*Bucket
	order   []string
}

// New builds a TaskAnalysis from a task sequence under the given
// grouping. An empty task sequence is valid and produces an analysis
// with zero buckets.
func New(ts []tasks.Task, grouping Grouping) *TaskAnalysis {
	a := &TaskAnalysis{buckets: make(map[string]*Bucket)}
	for _, t := range ts {
		if len(t.Tags) == 0 {
			continue
		}
		if grouping == GroupAllTags {
			for _, tag := range t.Tags {
				a.addEntry(tag, t.Clone())
			}
		} else {
			a.addEntry(t.Tags[0], t.Clone())
		}
	}
	return a
}

func (a *TaskAnalysis) addEntry(tag string, t tasks.Task) {
	b, ok := a.buckets[tag]
	if !ok {
		b = &Bucket{Tag: tag}
		a.buckets[tag] = b
		a.order = append(a.order, tag)
	}
	b.add(t)
}

// Tags returns the bucket tags in first-encounter order.
func (a *TaskAnalysis) Tags() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Bucket returns the bucket for tag, if present.
func (a *TaskAnalysis) Bucket(tag string) (*Bucket, bool) {
	b, ok := a.buckets[tag]
	return b, ok
}

// NumBuckets returns the number of distinct tags seen.
func (a *TaskAnalysis) NumBuckets() int {
	return len(a.order)
}

// AnalysisDuration is the wall-clock span covered by the analysis:
// the latest task end minus the earliest task start across all
// buckets. Undefined when there are no buckets.
func (a *TaskAnalysis) AnalysisDuration() (time.Duration, error) {
	if len(a.order) == 0 {
		return 0, ErrEmptyAnalysis
	}
	var start, end time.Time
	for i, tag := range a.order {
		b := a.buckets[tag]
		first := b.First().Start
		last := b.Last().End
		if i == 0 || first.Before(start) {
			start = first
		}
		if i == 0 || last.After(end) {
			end = last
		}
	}
	return end.Sub(start), nil
}

// AllTasksDuration is the summed duration of every bucket. Under
// GroupAllTags a multi-tagged task contributes once per tag.
func (a *TaskAnalysis) AllTasksDuration() time.Duration {
	var d time.Duration
	for _, tag := range a.order {
		d += a.buckets[tag].Duration()
	}
	return d
}
