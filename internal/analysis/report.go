package analysis

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Row is one tag's line in a summarized report.
type Row struct {
	Tag      string        `json:"tag"`
	Duration time.Duration `json:"duration_ns"`
	NumTasks int           `json:"num_tasks"`
	Percent  float64       `json:"percent_of_total"`
}

// Report is the summarized form of a TaskAnalysis.
type Report struct {
	Rows             []Row         `json:"rows"`
	AnalysisDuration time.Duration `json:"analysis_duration_ns"`
	AllTasksDuration time.Duration `json:"all_tasks_duration_ns"`
	TotalPercent     float64       `json:"total_percent"`
}

// Summarize computes one row per bucket in insertion order plus the
// totals. Percentages are against the analysis duration, rounded
// half-up to two decimal places.
func (a *TaskAnalysis) Summarize() (*Report, error) {
	span, err := a.AnalysisDuration()
	if err != nil {
		return nil, err
	}
	rep := &Report{AnalysisDuration: span}
	for _, tag := range a.order {
		b := a.buckets[tag]
		d := b.Duration()
		rep.Rows = append(rep.Rows, Row{
			Tag:      tag,
			Duration: d,
			NumTasks: b.NumTasks(),
			Percent:  percentOf(d, span),
		})
	}
	rep.AllTasksDuration = a.AllTasksDuration()
	rep.TotalPercent = percentOf(rep.AllTasksDuration, span)
	return rep, nil
}

// Render produces the fixed-width tabular report: one row per tag in
// insertion order, then a totals row. The total percent equals 100
// only when every task carries exactly one tag and the full window is
// covered by tagged tasks.
func (a *TaskAnalysis) Render() (string, error) {
	rep, err := a.Summarize()
	if err != nil {
		return "", err
	}

	tagWidth := len("Tag")
	durWidth := len("Duration")
	for _, row := range rep.Rows {
		if len(row.Tag) > tagWidth {
			tagWidth = len(row.Tag)
		}
		if n := len(FormatDuration(row.Duration)); n > durWidth {
			durWidth = n
		}
	}
	if n := len(FormatDuration(rep.AllTasksDuration)); n > durWidth {
		durWidth = n
	}

	var sb strings.Builder
	title := fmt.Sprintf("| %s | %s | %s |",
		center("Tag", tagWidth), center("Duration", durWidth), center("% of Total", 10))
	rule := "+" + strings.Repeat("-", len(title)-2) + "+"

	sb.WriteString(rule + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(rule + "\n")
	for _, row := range rep.Rows {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			center(row.Tag, tagWidth),
			center(FormatDuration(row.Duration), durWidth),
			center(fmt.Sprintf("%.2f", row.Percent), 10)))
	}
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
		center("Total", tagWidth),
		center(FormatDuration(rep.AllTasksDuration), durWidth),
		center(fmt.Sprintf("%.2f", rep.TotalPercent), 10)))
	sb.WriteString(rule)

	return sb.String(), nil
}

// percentOf returns part/whole as a percentage rounded half-up to two
// decimal places. whole is never zero here: AnalysisDuration rejects
// the empty case and surviving tasks always have positive length.
func percentOf(part, whole time.Duration) float64 {
	if whole == 0 {
		return 0
	}
	p := float64(part) / float64(whole) * 100
	return math.Round(p*100) / 100
}

// FormatDuration renders a duration as H:MM:SS.
func FormatDuration(d time.Duration) string {
	neg := ""
	if d < 0 {
		neg = "-"
		d = -d
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%s%d:%02d:%02d", neg, h, m, s)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
