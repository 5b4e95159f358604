package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"mvdan.cc/sh/v3/shell"
)

// ShellFields splits a command line with POSIX shell quoting rules.
// Environment variables are expanded; globs and command substitution are not.
func ShellFields(raw string) ([]string, error) {
	fields, err := shell.Fields(raw, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}
	return fields, nil
}

func runShell(ctx context.Context, env *Env, args []string) error {
	if env.RawArgs != "" {
		fields, err := ShellFields(env.RawArgs)
		if err != nil {
			return err
		}
		args = fields
	}
	if len(args) == 0 {
		fmt.Fprint(env.Err, "\nUsage: sh <program> [args...]\n\n")
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = env.In
	cmd.Stdout = env.Out
	cmd.Stderr = env.Err

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			printWarning(env.Err, "%s exited with status %d", args[0], exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("failed to run %s: %w", args[0], err)
	}
	return nil
}
