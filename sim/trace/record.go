package trace

// EventKind names the engine decision a record captures.
type EventKind string

const (
	EventClaim      EventKind = "claim"      // action took a free machine at its start tick
	EventCollision  EventKind = "collision"  // action's start tick found its machine occupied
	EventCompletion EventKind = "completion" // action's end tick found its machine occupied
	EventOrphanEnd  EventKind = "orphan-end" // action's end tick found its machine free
)

// EventRecord captures a single engine decision.
type EventRecord struct {
	Tick      int
	Kind      EventKind
	ActionID  int
	Job       string
	Operation string
	Machine   string
	// Holder is the action holding the machine when the decision was made,
	// -1 when the machine was free.
	Holder int
}
