// Package optimizer implements the six-pass IR optimization pipeline:
// constant folding, copy propagation, dead-temp elimination,
// self-assignment removal, trivial branch simplification, and dead-code-
// after-return removal.
package optimizer

import "mylangc/internal/ir"

// Pass names the six optimizer passes, each as a distinct identifier
// rather than an anonymous pipeline stage.
type Pass string

const (
	PassConstantFolding     Pass = "constant_folding"
	PassCopyPropagation     Pass = "copy_propagation"
	PassDeadTempElimination Pass = "dead_temp_elimination"
	PassSelfAssignRemoval   Pass = "self_assignment_removal"
	PassBranchSimplify      Pass = "branch_simplification"
	PassDeadCodeAfterReturn Pass = "dead_code_after_return"
)

type passFunc func([]ir.Instruction) []ir.Instruction

var pipeline = []struct {
	id  Pass
	run passFunc
}{
	{PassConstantFolding, constantFolding},
	{PassCopyPropagation, copyPropagation},
	{PassDeadTempElimination, deadTempElimination},
	{PassSelfAssignRemoval, selfAssignmentRemoval},
	{PassBranchSimplify, branchSimplification},
	{PassDeadCodeAfterReturn, deadCodeAfterReturn},
}

// Config selects which passes run, in the fixed order above (ordering is
// significant). The zero Config runs every pass.
type Config struct {
	disabled map[Pass]bool
}

// Option configures a Config.
type Option func(*Config)

// WithoutPass disables a single named pass. Disabling a pass changes the
// observable IR and is intended for debugging, not general use: the
// pipeline's idempotence and correctness guarantees assume all six run.
func WithoutPass(p Pass) Option {
	return func(c *Config) {
		if c.disabled == nil {
			c.disabled = make(map[Pass]bool)
		}
		c.disabled[p] = true
	}
}

// Optimize runs the enabled passes over instrs in order and returns a new
// instruction list; instrs itself is left untouched.
func Optimize(instrs []ir.Instruction, opts ...Option) []ir.Instruction {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	out := make([]ir.Instruction, len(instrs))
	copy(out, instrs)

	for _, stage := range pipeline {
		if cfg.disabled[stage.id] {
			continue
		}
		out = stage.run(out)
	}
	return out
}

// Step is one pass's contribution to a Trace: the pass that ran and the
// instruction list immediately after it.
type Step struct {
	Pass   Pass
	Result []ir.Instruction
}

// Trace runs the enabled passes over instrs in order like Optimize, but
// additionally returns one Step per pass actually run, for a CLI's
// pass-by-pass verbose listing. Trace's final step's Result equals what
// Optimize would have returned for the same instrs and opts.
func Trace(instrs []ir.Instruction, opts ...Option) []Step {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	out := make([]ir.Instruction, len(instrs))
	copy(out, instrs)

	steps := make([]Step, 0, len(pipeline))
	for _, stage := range pipeline {
		if cfg.disabled[stage.id] {
			continue
		}
		out = stage.run(out)
		steps = append(steps, Step{Pass: stage.id, Result: out})
	}
	return steps
}
