package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("filter", "expected key=value")

	if err.Error() != "config error in filter: expected key=value" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFlagError(t *testing.T) {
	err := NewFlagError("filter", "name", "expected key=value")

	if err.Error() != `invalid --filter "name": expected key=value` {
		t.Errorf("Error() = %q", err.Error())
	}

	var flagErr *FlagError
	if !errors.As(NewCommandError("build", err), &flagErr) {
		t.Fatal("FlagError should be reachable through CommandError")
	}
	if flagErr.Flag != "filter" || flagErr.Value != "name" {
		t.Errorf("FlagError = %+v", flagErr)
	}
}

func TestCommandError(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := NewCommandError("build", inner)

	if err.Error() != "command build failed: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("CommandError should unwrap to inner error")
	}
}
