package game

// TurnPhase represents the current phase within a turn.
type TurnPhase int

const (
	AwaitingFirstPick TurnPhase = iota
	AwaitingSecondPick
	Resolving
)

// String returns the log name for a TurnPhase.
func (tp TurnPhase) String() string {
	switch tp {
	case AwaitingFirstPick:
		return "awaiting_first_pick"
	case AwaitingSecondPick:
		return "awaiting_second_pick"
	case Resolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Outcome is how a turn, and ultimately a session, ended.
type Outcome int

const (
	// InProgress means the session continues with another turn.
	InProgress Outcome = iota
	Won
	Quit
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
