// Package tasks turns a parsed policy document into OS commands and runs
// them. The interesting decisions all happen upstream in the readme package;
// this layer is deliberately mechanical command dispatch.
package tasks

import (
	"context"
	"os/exec"
	"strings"
)

// Command is one intended OS mutation together with the policy reason that
// produced it, for the report and for dry-run review.
type Command struct {
	Name   string
	Args   []string
	Reason string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner executes remediation commands. The production runner shells out to
// the OS; the dry runner records what would have run.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner invokes the command and returns its combined output.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, cmd Command) (string, error) {
	out, err := exec.CommandContext(ctx, cmd.Name, cmd.Args...).CombinedOutput()
	return string(out), err
}

// DryRunner records commands without executing anything.
type DryRunner struct {
	Recorded []Command
}

func (r *DryRunner) Run(_ context.Context, cmd Command) (string, error) {
	r.Recorded = append(r.Recorded, cmd)
	return "(dry run)", nil
}

// Result pairs a command with what happened when it ran.
type Result struct {
	Command Command
	Output  string
	Err     error
}

// Execute runs every command in order, never stopping early: a failed
// hardening step must not block the remaining ones.
func Execute(ctx context.Context, r Runner, cmds []Command) []Result {
	results := make([]Result, 0, len(cmds))
	for _, cmd := range cmds {
		out, err := r.Run(ctx, cmd)
		results = append(results, Result{Command: cmd, Output: out, Err: err})
	}
	return results
}
