package obj

// Direction is a single tile step.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Intent is the input collected for one frame. Every field is an
// edge-triggered press.
type Intent struct {
	Move    Direction
	Confirm bool
	Pause   bool
	Copy    bool
	Quit    bool
}
