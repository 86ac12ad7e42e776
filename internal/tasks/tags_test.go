package tasks

import (
	"reflect"
	"testing"
)

func TestExtractTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single tag",
			text: "[coding] working on the api",
			want: []string{"coding"},
		},
		{
			name: "multiple tags",
			text: "[coding, review] pr and follow-ups",
			want: []string{"coding", "review"},
		},
		{
			name: "whitespace trimmed",
			text: "[  coding ,	review ] messy",
			want: []string{"coding", "review"},
		},
		{
			name: "only first group honored",
			text: "[coding] see [review] later",
			want: []string{"coding"},
		},
		{
			name: "brackets mid-text",
			text: "starting [meeting] now",
			want: []string{"meeting"},
		},
		{
			name: "no brackets",
			text: "just a plain message",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "empty group keeps one empty tag",
			text: "[] nothing inside",
			want: []string{""},
		},
		{
			name: "unclosed bracket",
			text: "[coding without close",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractTags(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTags(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
