package system

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventStarted EventKind = iota
	EventHit
	EventGoal
	EventWon
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventHit:
		return "hit"
	case EventGoal:
		return "goal"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event records a game transition with the state right after it.
type Event struct {
	Kind  EventKind
	Lvl   int
	Lives int
}

// EventQueue is a simple FIFO queue drained once per frame by the host.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
