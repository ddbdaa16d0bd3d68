package command_test

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"reminder-extractor/pkg/command"
	"reminder-extractor/pkg/log"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Run(t *testing.T) {
	requireShell(t)
	r := command.NewExecRunner(log.NewNop())

	stdout, stderr, err := r.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(string(stdout)) != "out" || strings.TrimSpace(string(stderr)) != "err" {
		t.Errorf("stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestExecRunner_Failure(t *testing.T) {
	requireShell(t)
	r := command.NewExecRunner(log.NewNop())

	_, stderr, err := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Errorf("err = %v, want exit status 3", err)
	}
	if !strings.HasPrefix(err.Error(), "sh: ") {
		t.Errorf("err = %q, want command name prefix", err)
	}
	if strings.TrimSpace(string(stderr)) != "boom" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestExecRunner_ContextTimeout(t *testing.T) {
	requireShell(t)
	r := command.NewExecRunner(log.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	if _, _, err := r.Run(ctx, "sh", "-c", "sleep 5"); err == nil {
		t.Fatal("expected error")
	}
	if time.Since(start) > 3*time.Second {
		t.Error("command was not killed on context timeout")
	}
}

func TestTruncate(t *testing.T) {
	if got := command.Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := command.Truncate("abcdefghij", 4); got != "abcd...(truncated)" {
		t.Errorf("got %q", got)
	}
}
