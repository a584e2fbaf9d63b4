package scoring

import "time"

// GateState is the submission state of one (user, match-or-night) pair.
type GateState string

const (
	// StateOpen allows a new prediction.
	StateOpen GateState = "open"
	// StateLockedSubmitted means this user already has a prediction in.
	StateLockedSubmitted GateState = "locked_submitted"
	// StateLockedExpired means the cutoff or start time passed with no
	// submission from this user.
	StateLockedExpired GateState = "locked_expired"
	// StateClosedResulted means the official result is in. It dominates
	// every other state.
	StateClosedResulted GateState = "closed_resulted"
)

// Gate decides whether a prediction may currently be submitted. It is
// evaluated lazily on every request; there are no timers. A nil deadline
// means the match or night has no cutoff and stays open until a result or a
// submission locks it.
func Gate(now time.Time, deadline *time.Time, submitted, resulted bool) GateState {
	switch {
	case resulted:
		return StateClosedResulted
	case submitted:
		return StateLockedSubmitted
	case deadline != nil && !now.Before(*deadline):
		return StateLockedExpired
	default:
		return StateOpen
	}
}
