package execute

import (
	"context"
	"io"
)

// fakeRunner records calls and plays back canned output.
type fakeRunner struct {
	calls  [][]string
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, args []string, stdout, stderr io.Writer) error {
	f.calls = append(f.calls, append([]string(nil), args...))
	if stdout != nil {
		_, _ = io.WriteString(stdout, f.stdout)
	}
	if stderr != nil {
		_, _ = io.WriteString(stderr, f.stderr)
	}
	return f.err
}
