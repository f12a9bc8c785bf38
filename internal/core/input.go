package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // R key - restart game after win or loss
	ActionQuit           // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four slide directions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the input consumed by a single tick. A tick processes at most
// one action.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates a frame holding a single action.
func NewInputFrame(a Action) InputFrame {
	return InputFrame{Action: a}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}

// Empty reports whether the frame carries no action.
func (f InputFrame) Empty() bool {
	return f.Action == ActionNone
}

// DefaultQueueSize is the capacity of the platform's key queue.
const DefaultQueueSize = 8

// InputQueue is a bounded FIFO of actions between key events and ticks.
// When full, the oldest action is dropped so a burst of keys cannot stall
// the render cadence. Not safe for concurrent use.
type InputQueue struct {
	items []Action
	limit int
}

// NewInputQueue creates a queue holding at most limit actions.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &InputQueue{limit: limit}
}

// Push appends an action. ActionNone is ignored.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	if len(q.items) == q.limit {
		q.items = q.items[1:]
	}
	q.items = append(q.items, a)
}

// Pop removes and returns the oldest action as a frame.
// Returns an empty frame when the queue is empty.
func (q *InputQueue) Pop() InputFrame {
	if len(q.items) == 0 {
		return InputFrame{}
	}
	a := q.items[0]
	q.items = q.items[1:]
	return NewInputFrame(a)
}

// Len returns the number of queued actions.
func (q *InputQueue) Len() int {
	return len(q.items)
}

// Reset drops every queued action.
func (q *InputQueue) Reset() {
	q.items = q.items[:0]
}
