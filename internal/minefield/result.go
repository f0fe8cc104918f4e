package minefield

// ActionResult is the outcome of a reveal, flag or chord action.
type ActionResult uint8

const (
	Failed ActionResult = iota
	NotValid
	Opened
	AlreadyOpen
	WasFlagged
	GameAlreadyOver
	NowFlagged
	WasMine
	FlagRemoved
	GameCleared
)

var actionResultNames = [...]string{
	Failed:          "failed",
	NotValid:        "not valid",
	Opened:          "opened",
	AlreadyOpen:     "already open",
	WasFlagged:      "was flagged",
	GameAlreadyOver: "game already over",
	NowFlagged:      "now flagged",
	WasMine:         "was mine",
	FlagRemoved:     "flag removed",
	GameCleared:     "game cleared",
}

// [ActionResult] implements [fmt.Stringer]
func (r ActionResult) String() string {
	if int(r) < len(actionResultNames) {
		return actionResultNames[r]
	}
	return "!"
}

type Outcome uint8

const (
	InProgress Outcome = iota
	Cleared
	Exploded
)

// [Outcome] implements [fmt.Stringer]
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Cleared:
		return "cleared"
	case Exploded:
		return "exploded"
	default:
		return "!"
	}
}
