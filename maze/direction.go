package maze

// Direction is a cardinal move between grid-adjacent cells
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// DirectionCount is the number of outcomes a Source must choose between
const DirectionCount = 4

var directionNames = [DirectionCount]string{"right", "left", "up", "down"}

func (d Direction) String() string {
	if d >= DirectionCount {
		return "invalid"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the row and column change of one step in d
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	default:
		return 1, 0
	}
}
