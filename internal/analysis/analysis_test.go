package analysis

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bensmidt/switchlog/internal/tasks"
)

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func task(startHour, startMin, endHour, endMin int, tags ...string) tasks.Task {
	return tasks.Task{Start: at(startHour, startMin), End: at(endHour, endMin), Tags: tags}
}

func TestNew_FirstTagGrouping(t *testing.T) {
	t.Parallel()

	a := New([]tasks.Task{
		task(9, 0, 10, 0, "coding"),
		task(10, 0, 10, 30, "meeting", "planning"),
		task(10, 30, 12, 0, "coding"),
	}, GroupFirstTag)

	if a.NumBuckets() != 2 {
		t.Fatalf("NumBuckets() = %d, want 2", a.NumBuckets())
	}
	if got := a.Tags(); !reflect.DeepEqual(got, []string{"coding", "meeting"}) {
		t.Errorf("Tags() = %v, want [coding meeting]", got)
	}

	coding, ok := a.Bucket("coding")
	if !ok {
		t.Fatal("Bucket(coding) missing")
	}
	if coding.Duration() != 2*time.Hour+30*time.Minute {
		t.Errorf("coding duration = %v, want 2h30m", coding.Duration())
	}

	// Multi-tagged task counts only toward its first tag.
	if _, ok := a.Bucket("planning"); ok {
		t.Error("Bucket(planning) exists under first-tag grouping")
	}

	// No multiplicity under first-tag: totals conserve the input.
	if a.AllTasksDuration() != 3*time.Hour {
		t.Errorf("AllTasksDuration() = %v, want 3h", a.AllTasksDuration())
	}
}

func TestNew_AllTagsGrouping(t *testing.T) {
	t.Parallel()

	a := New([]tasks.Task{
		task(9, 0, 10, 0, "coding", "review"),
		task(10, 0, 11, 0, "coding"),
	}, GroupAllTags)

	if a.NumBuckets() != 2 {
		t.Fatalf("NumBuckets() = %d, want 2", a.NumBuckets())
	}

	coding, _ := a.Bucket("coding")
	review, ok := a.Bucket("review")
	if !ok {
		t.Fatal("Bucket(review) missing under all-tags grouping")
	}

	// The multi-tagged hour counts fully toward both tags, not divided.
	if coding.Duration() != 2*time.Hour {
		t.Errorf("coding duration = %v, want 2h", coding.Duration())
	}
	if review.Duration() != time.Hour {
		t.Errorf("review duration = %v, want 1h", review.Duration())
	}

	// Summed bucket durations exceed the wall-clock span.
	if a.AllTasksDuration() != 3*time.Hour {
		t.Errorf("AllTasksDuration() = %v, want 3h", a.AllTasksDuration())
	}
	span, err := a.AnalysisDuration()
	if err != nil {
		t.Fatalf("AnalysisDuration() error = %v", err)
	}
	if span != 2*time.Hour {
		t.Errorf("AnalysisDuration() = %v, want 2h", span)
	}
}

func TestTags_InsertionOrder(t *testing.T) {
	t.Parallel()

	a := New([]tasks.Task{
		task(9, 0, 9, 30, "zeta"),
		task(9, 30, 10, 0, "alpha"),
		task(10, 0, 10, 30, "zeta"),
		task(10, 30, 11, 0, "mid"),
	}, GroupFirstTag)

	want := []string{"zeta", "alpha", "mid"}
	if got := a.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v (first-encounter order, no resort)", got, want)
	}
}

func TestAnalysisDuration_SpansBuckets(t *testing.T) {
	t.Parallel()

	a := New([]tasks.Task{
		task(11, 0, 12, 0, "b"),
		task(9, 0, 10, 0, "a"),
	}, GroupFirstTag)

	span, err := a.AnalysisDuration()
	if err != nil {
		t.Fatalf("AnalysisDuration() error = %v", err)
	}
	// Earliest start 09:00 to latest end 12:00, including the uncovered gap.
	if span != 3*time.Hour {
		t.Errorf("AnalysisDuration() = %v, want 3h", span)
	}
}

func TestAnalysisDuration_Empty(t *testing.T) {
	t.Parallel()

	a := New(nil, GroupFirstTag)
	if _, err := a.AnalysisDuration(); !errors.Is(err, ErrEmptyAnalysis) {
		t.Errorf("AnalysisDuration() error = %v, want ErrEmptyAnalysis", err)
	}
}

func TestNew_SkipsTaglessTasks(t *testing.T) {
	t.Parallel()

	a := New([]tasks.Task{
		task(9, 0, 10, 0),
		task(10, 0, 11, 0, "real"),
	}, GroupFirstTag)

	if a.NumBuckets() != 1 {
		t.Errorf("NumBuckets() = %d, want 1", a.NumBuckets())
	}
}

func TestNew_DeepCopiesTasks(t *testing.T) {
	t.Parallel()

	input := []tasks.Task{task(9, 0, 10, 0, "coding")}
	a := New(input, GroupFirstTag)

	input[0].Tags[0] = "mutated"

	b, _ := a.Bucket("coding")
	if b.Tasks[0].Tags[0] != "coding" {
		t.Error("analysis shares tag slices with its input")
	}
}

func TestBucket_FirstLast(t *testing.T) {
	t.Parallel()

	a := New([]tasks.Task{
		task(11, 0, 12, 0, "x"),
		task(9, 0, 10, 0, "x"),
		task(10, 0, 11, 0, "x"),
	}, GroupFirstTag)

	b, _ := a.Bucket("x")
	if !b.First().Start.Equal(at(9, 0)) {
		t.Errorf("First().Start = %v, want %v", b.First().Start, at(9, 0))
	}
	if !b.Last().End.Equal(at(12, 0)) {
		t.Errorf("Last().End = %v, want %v", b.Last().End, at(12, 0))
	}
	if b.NumTasks() != 3 {
		t.Errorf("NumTasks() = %d, want 3", b.NumTasks())
	}
}
