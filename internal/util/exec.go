package util

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"fancontrold/internal/ui"
)

// SafeCmdExecution runs the given executable with a timeout and returns
// its trimmed stdout.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if ctx.Err() == context.DeadlineExceeded {
		ui.Warning("Command timed out: %s", executable)
		return "", ctx.Err()
	}

	if err != nil {
		return "", err
	}

	strout := string(out)
	strout = strings.Trim(strout, "\n")

	return strout, nil
}
