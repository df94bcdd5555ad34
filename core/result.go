package core

// NameSource identifies which stage produced a color name
type NameSource int

const (
	NameFromHeuristic NameSource = iota // local HSV naming fallback
	NameFromService                     // accepted external lookup
)

// String returns a short provenance tag for display
func (s NameSource) String() string {
	switch s {
	case NameFromService:
		return "service"
	default:
		return "heuristic"
	}
}

// Result pairs a derived color with its resolved name and provenance
type Result struct {
	Color  RGB
	Name   string
	Source NameSource
}
