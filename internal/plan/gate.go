package plan

// DayState is the derived per-day status label. Unlike DayStatus it is
// never stored: it is recomputed from the ordered day list on every read.
type DayState string

const (
	StateCompleted DayState = "completed"
	StateActive    DayState = "active"
	StateLocked    DayState = "locked"
)

// ActiveIndex returns the index of the active day: the lowest index
// whose stored status is not completed. The second return is false when
// every day is completed (no day is active, and none is locked).
func ActiveIndex(days []DayTopic) (int, bool) {
	for i, d := range days {
		if d.Status != StatusCompleted {
			return i, true
		}
	}
	return -1, false
}

// DayStates derives the completed/active/locked label for every day.
// Exactly one day is active unless all are completed; every day after
// the active one is locked.
func DayStates(days []DayTopic) []DayState {
	states := make([]DayState, len(days))
	active, ok := ActiveIndex(days)
	for i := range days {
		switch {
		case !ok || i < active:
			states[i] = StateCompleted
		case i == active:
			states[i] = StateActive
		default:
			states[i] = StateLocked
		}
	}
	return states
}

// IsUnlocked reports whether the day at index i is open for study and
// quiz interaction. Completed days stay open for review; only days
// after the active one are closed.
func IsUnlocked(days []DayTopic, i int) bool {
	if i < 0 || i >= len(days) {
		return false
	}
	active, ok := ActiveIndex(days)
	return !ok || i <= active
}
