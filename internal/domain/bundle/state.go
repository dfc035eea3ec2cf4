package bundle

import "fmt"

// Target selects the platform flavor passed to the packaging tool.
type Target string

// TargetWeb produces output suitable for a web-hosted environment.
const TargetWeb Target = "web"

// Request is the build configuration for one invocation.
// It is not mutated or reused across runs.
type Request struct {
	// Target is the platform selector passed to the packaging tool.
	Target Target
	// Features are the feature flags compiled into the build.
	Features []string
}

// Clone returns a copy of the request with its own feature slice.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}

	return &Request{
		Target:   r.Target,
		Features: append([]string(nil), r.Features...),
	}
}

// Phase is a state of the bundling workflow.
type Phase string

// Workflow phases. BuildFailed, MergeFailed and Done are terminal.
const (
	PhaseNotStarted  Phase = "not_started"
	PhaseBuilding    Phase = "building"
	PhaseBuildFailed Phase = "build_failed"
	PhaseMerging     Phase = "merging"
	PhaseMergeFailed Phase = "merge_failed"
	PhaseDone        Phase = "done"
)

// transitions lists the allowed successor phases for each phase.
//
//nolint:gochecknoglobals // Static transition table for the workflow.
var transitions = map[Phase][]Phase{
	PhaseNotStarted: {PhaseBuilding},
	PhaseBuilding:   {PhaseBuildFailed, PhaseMerging},
	PhaseMerging:    {PhaseMergeFailed, PhaseDone},
}

// Terminal reports whether the phase ends the run.
// Recovering from a terminal phase requires a full re-run.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseBuildFailed, PhaseMergeFailed, PhaseDone:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is an allowed successor of p.
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Run tracks the phase of a single bundling invocation.
type Run struct {
	// phase is the current workflow phase.
	phase Phase
}

// NewRun returns a run in the NotStarted phase.
func NewRun() *Run {
	return &Run{phase: PhaseNotStarted}
}

// Phase returns the current phase of the run.
func (r *Run) Phase() Phase {
	return r.phase
}

// Advance moves the run to the next phase,
// rejecting transitions the workflow does not allow.
func (r *Run) Advance(next Phase) error {
	if !r.phase.CanTransitionTo(next) {
		return fmt.Errorf("invalid transition from %q to %q", r.phase, next)
	}

	r.phase = next

	return nil
}
