package validation

import (
	"strings"
	"testing"

	"github.com/bensmidt/switchlog/internal/command"
)

func TestStruct_Command(t *testing.T) {
	t.Parallel()

	valid := command.Command{Kind: command.KindTaskSheet, Task: "write tests", Category: "coding"}
	if err := Struct(valid); err != nil {
		t.Errorf("Struct() on valid command error = %v", err)
	}

	missingTask := command.Command{Kind: command.KindTaskSheet, Category: "coding"}
	if err := Struct(missingTask); err == nil {
		t.Error("Struct() accepted a command without a task")
	}

	badKind := command.Command{Kind: "nope", Task: "x", Category: "y"}
	if err := Struct(badKind); err == nil {
		t.Error("Struct() accepted an unknown command kind")
	}

	oversized := command.Command{Kind: command.KindTodoDoc, Task: strings.Repeat("a", 1001), Category: "y"}
	if err := Struct(oversized); err == nil {
		t.Error("Struct() accepted an oversized task")
	}
}
