package macros

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner spawns an external binary and captures its output. The production
// implementation shells out; tests install a fake that serves canned macro
// tables. Blocking is expected: a hung external tool blocks the run, by the
// same trust assumption the rest of the pipeline makes.
type Runner interface {
	Run(ctx context.Context, path string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// LookPath resolves a bare command name against PATH. Absolute and relative
// paths pass through untouched. Kept on the Runner so fakes can resolve
// against their canned path set.
type PathResolver interface {
	LookPath(name string) (string, error)
}

// ExecRunner runs real subprocesses.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, path string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out.String(), errb.String(), exitErr.ExitCode(), nil
		}
		return "", "", -1, err
	}
	return out.String(), errb.String(), 0, nil
}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
