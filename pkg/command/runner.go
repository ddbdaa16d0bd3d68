// Package command runs external tools behind an interface so callers can be
// tested without the binaries installed.
package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"reminder-extractor/pkg/log"
)

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct {
	l log.Logger
}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner(l log.Logger) Runner {
	return execRunner{l: l}
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		r.l.Debugf(ctx, "command.Run: cmd=%s args=%q elapsed_ms=%d err=%v stderr=%s",
			name, strings.Join(args, " "), elapsed, err, Truncate(errb.String(), 2048))
		return out.Bytes(), errb.Bytes(), fmt.Errorf("%s: %w", name, err)
	}

	r.l.Debugf(ctx, "command.Run: cmd=%s elapsed_ms=%d stdout_bytes=%d", name, elapsed, out.Len())
	return out.Bytes(), errb.Bytes(), nil
}

// Truncate caps s at max bytes for log output.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
