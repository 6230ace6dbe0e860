package combat

import (
	"time"

	"github.com/Happy-Gear/rpg-dnd-game-sub001/internal/game/dice"
)

// LogEntry is one immutable record in the engine's action history.
type LogEntry struct {
	// Action is the kind of action that produced this entry.
	Action ActionKind
	// ActorID and ActorName identify the combatant who acted.
	ActorID   string
	ActorName string
	// TargetID and TargetName identify the other combatant, when any.
	TargetID   string
	TargetName string
	// Roll is the dice roll behind the action; nil for the absorb path.
	Roll *dice.DiceRoll
	// StaminaCost is the stamina the action deducted.
	StaminaCost int
	// Info is the narrative line for the action.
	Info string
	// Timestamp is when the entry was appended.
	Timestamp time.Time
}

// append stamps and records entry. The history is append-only: entries are
// never mutated, removed, or reordered after this call.
func (e *Engine) append(entry LogEntry) {
	entry.Timestamp = time.Now()
	e.history = append(e.history, entry)
}

// HistoryLen returns the number of recorded entries.
func (e *Engine) HistoryLen() int { return len(e.history) }

// RecentHistory returns a copy of the last n entries in chronological order.
// When the history holds fewer than n entries, all of them are returned.
//
// Postcondition: len(result) == min(n, HistoryLen()); n <= 0 yields an
// empty slice. The returned slice is a copy; mutating it does not affect
// the engine's history.
func (e *Engine) RecentHistory(n int) []LogEntry {
	if n <= 0 {
		return nil
	}
	start := len(e.history) - n
	if start < 0 {
		start = 0
	}
	out := make([]LogEntry, len(e.history)-start)
	copy(out, e.history[start:])
	return out
}
