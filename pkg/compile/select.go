package compile

import "octavia-hq/vela/pkg/exec"

// SelectBackend picks the execution engine for a tree. Trees the permutation
// engine cannot run go to the algebraic engine regardless of hints; otherwise
// an explicit hint wins, and the auto policy sends Tier0/Tier1 to the
// permutation engine and Tier2/Tier3 to the algebraic one.
func SelectBackend(m Metrics, tier Tier, hint BackendHint) exec.Backend {
	if m.NeedsAlgebra {
		return exec.BackendAlgebraic
	}
	switch hint {
	case HintPermutation:
		return exec.BackendPermutation
	case HintAlgebraic:
		return exec.BackendAlgebraic
	}
	if tier <= Tier1 {
		return exec.BackendPermutation
	}
	return exec.BackendAlgebraic
}
