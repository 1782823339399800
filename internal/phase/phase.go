package phase

// UnitPhase tracks how far a source unit has progressed through the front
// end. Phases are strictly ordered; a unit never skips ahead.
type UnitPhase int

const (
	NotStarted UnitPhase = iota
	Scanned
	Parsed
	Analyzed
)

var prerequisites = map[UnitPhase]UnitPhase{
	Scanned:  NotStarted,
	Parsed:   Scanned,
	Analyzed: Parsed,
}

func (p UnitPhase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Scanned:
		return "scanned"
	case Parsed:
		return "parsed"
	case Analyzed:
		return "analyzed"
	default:
		return "unknown"
	}
}

// CanAdvance reports whether a unit in phase current may move to next.
func CanAdvance(current, next UnitPhase) bool {
	required, ok := prerequisites[next]
	if !ok {
		return false
	}
	return current == required
}
