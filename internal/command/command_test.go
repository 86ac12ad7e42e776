package command

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		wantOK bool
		want   Command
	}{
		{
			name:   "task sheet command",
			text:   "ts: refactor the queue consumer (coding)",
			wantOK: true,
			want:   Command{Kind: KindTaskSheet, Task: "refactor the queue consumer", Category: "coding"},
		},
		{
			name:   "todo doc command",
			text:   "tdo: write weekly summary (admin)",
			wantOK: true,
			want:   Command{Kind: KindTodoDoc, Task: "write weekly summary", Category: "admin"},
		},
		{
			name:   "case insensitive verb",
			text:   "TS: shout the task (coding)",
			wantOK: true,
			want:   Command{Kind: KindTaskSheet, Task: "shout the task", Category: "coding"},
		},
		{
			name:   "no space after colon",
			text:   "ts:tight task (coding)",
			wantOK: true,
			want:   Command{Kind: KindTaskSheet, Task: "tight task", Category: "coding"},
		},
		{
			name:   "verb must lead the text",
			text:   "today ts: buried command (coding)",
			wantOK: false,
		},
		{
			name:   "missing category",
			text:   "ts: task without parens",
			wantOK: false,
		},
		{
			name:   "plain tagged message is not a command",
			text:   "[coding] switching to api work",
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Kind != tt.want.Kind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.want.Kind)
			}
			if got.Task != tt.want.Task {
				t.Errorf("Task = %q, want %q", got.Task, tt.want.Task)
			}
			if got.Category != tt.want.Category {
				t.Errorf("Category = %q, want %q", got.Category, tt.want.Category)
			}
		})
	}
}
