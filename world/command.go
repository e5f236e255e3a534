package world

import (
	"time"

	"github.com/katalvlaran/navgrid/agent"
	"github.com/katalvlaran/navgrid/geom"
)

// MoveCommand is the reversible record of one agent position write.
// Applying it writes After and burns the fuel quantum; undoing writes
// Before and restores the quantum.
type MoveCommand struct {
	AgentID   int
	Before    geom.Vec
	After     geom.Vec
	Quantum   float64
	Timestamp time.Time
}

// CommandLog pairs the per-tick execution queue (FIFO) with the undo
// history (LIFO). Commands reference agents by id; a command whose agent
// was removed, or whose live id no longer matches, is stale — skipped
// silently, leaving no history entry.
type CommandLog struct {
	queue   []MoveCommand
	history []MoveCommand
}

// NewCommandLog returns an empty log.
func NewCommandLog() *CommandLog { return &CommandLog{} }

// Submit appends cmd to the execution queue.
func (l *CommandLog) Submit(cmd MoveCommand) { l.queue = append(l.queue, cmd) }

// Flush drains the queue in submission order, applying each command to
// the referenced agent and pushing it onto the history. Stale commands
// — missing id, or a live component whose id does not match — are
// dropped.
func (l *CommandLog) Flush(byID map[int]agent.Component) {
	for _, cmd := range l.queue {
		comp, ok := byID[cmd.AgentID]
		if !ok || comp.ID() != cmd.AgentID {
			continue
		}
		comp.SetPosition(cmd.After)
		comp.ConsumeFuel(cmd.Quantum)
		l.history = append(l.history, cmd)
	}
	l.queue = l.queue[:0]
}

// Undo pops the most recent applied command and inverts its write.
// Returns false when the history is empty or the target is stale.
func (l *CommandLog) Undo(byID map[int]agent.Component) bool {
	n := len(l.history)
	if n == 0 {
		return false
	}
	cmd := l.history[n-1]
	l.history = l.history[:n-1]

	comp, ok := byID[cmd.AgentID]
	if !ok || comp.ID() != cmd.AgentID {
		return false
	}
	comp.SetPosition(cmd.Before)
	comp.RestoreFuel(cmd.Quantum)

	return true
}

// Clear empties both the queue and the history.
func (l *CommandLog) Clear() {
	l.queue = l.queue[:0]
	l.history = l.history[:0]
}

// QueueLen reports pending commands.
func (l *CommandLog) QueueLen() int { return len(l.queue) }

// HistoryLen reports undoable commands.
func (l *CommandLog) HistoryLen() int { return len(l.history) }
