// Package execute runs yt-dlp commands.
package execute

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	command "tiktokdl/internal/domain/command"
	"tiktokdl/internal/domain/errconsts"
	"tiktokdl/internal/utils/logging"
)

// Runner runs yt-dlp with the given arguments, writing its output streams
// to stdout and stderr.
type Runner interface {
	Run(ctx context.Context, args []string, stdout, stderr io.Writer) error
}

// ExecRunner runs the yt-dlp executable as a subprocess.
type ExecRunner struct {
	// Path to the yt-dlp executable. Defaults to "yt-dlp" on $PATH.
	Path string
}

// NewExecRunner returns a runner for the default yt-dlp executable.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Path: command.YTDLP}
}

// Run executes yt-dlp, returning when it exits or ctx is cancelled.
func (r *ExecRunner) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	bin, err := exec.LookPath(r.path())
	if err != nil {
		return fmt.Errorf(errconsts.YTDLPNotFound, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logging.D(2, "Running command: %s", cmd.String())
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf(errconsts.YTDLPFailure, err)
	}
	return nil
}

func (r *ExecRunner) path() string {
	if r.Path != "" {
		return r.Path
	}
	return command.YTDLP
}
