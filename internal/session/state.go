package session

// State is the session lifecycle phase.
type State int

const (
	// StateIdle means the session has not started.
	StateIdle State = iota

	// StateLoadingFirst means the first topic is resolving.
	StateLoadingFirst

	// StatePlaying means a question set is active.
	StatePlaying

	// StateWaitingForBackground means the queue drained before the
	// background prefetch delivered its sets.
	StateWaitingForBackground

	// StateEvaluating means all topics finished and reports are being
	// produced.
	StateEvaluating

	// StateDone means the session closed out.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingFirst:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateWaitingForBackground:
		return "waiting"
	case StateEvaluating:
		return "evaluating"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
