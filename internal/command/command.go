package command

import (
	"regexp"
	"strings"
)

// Kind is the command verb at the front of a logging message.
type Kind string

const (
	// KindTaskSheet ("ts:") appends a row to the weekly task log.
	KindTaskSheet Kind = "ts"
	// KindTodoDoc ("tdo:") appends a line to the daily journal.
	KindTodoDoc Kind = "tdo"
)

// Command is a parsed logging message: "ts: <task> (<category>)" or
// "tdo: <task> (<category>)".
type Command struct {
	Kind     Kind   `validate:"required,oneof=ts tdo"`
	Task     string `validate:"required,max=1000"`
	Category string `validate:"required,max=200"`
}

var (
	tsPattern  = regexp.MustCompile(`(?i)^ts:\s*(.+)\s+\((.+)\)`)
	tdoPattern = regexp.MustCompile(`(?i)^tdo:\s*(.+)\s+\((.+)\)`)
)

// Parse matches text against the command grammar. The second return
// is false when the text is not a logging command; such messages are
// ignored, not errors.
func Parse(text string) (Command, bool) {
	if m := tsPattern.FindStringSubmatch(text); m != nil {
		return Command{Kind: KindTaskSheet, Task: strings.TrimSpace(m[1]), Category: strings.TrimSpace(m[2])}, true
	}
	if m := tdoPattern.FindStringSubmatch(text); m != nil {
		return Command{Kind: KindTodoDoc, Task: strings.TrimSpace(m[1]), Category: strings.TrimSpace(m[2])}, true
	}
	return Command{}, false
}
