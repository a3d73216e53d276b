package game

// Board geometry: 20 cells, cells 0-5 are private to Player One, 6-13 are
// shared and 14-19 are private to Player Two.
const (
	NumCells  = 20
	NumPieces = 7
	PathLen   = 14
	MaxRoll   = 4
)

// Position of a piece along its owner's path.
// 0 is the start, 1..14 are path squares and 15 means the piece has exited.
type Position = uint8

const (
	Start Position = 0
	Exit  Position = PathLen + 1
)

// Shared squares are the same cells for both players at the same positions.
const (
	firstShared Position = 5
	lastShared  Position = 12
)

// Central rosette on the shared lane.
const CentralRosette Position = 8

var paths = [2][PathLen]uint8{
	{3, 2, 1, 0, 6, 7, 8, 9, 10, 11, 12, 13, 5, 4},
	{17, 16, 15, 14, 6, 7, 8, 9, 10, 11, 12, 13, 19, 18},
}

// Rosettes grant an extra turn. Safe cells cannot be captured on; they are the
// rosettes plus the fourth square of each private lane.
const (
	rosetteCells uint32 = 1<<4 | 1<<9 | 1<<18
	safeCells    uint32 = rosetteCells | 1<<0 | 1<<14
)

// Path returns a copy of the cell sequence walked by player.
func Path(player Player) [PathLen]uint8 {
	return paths[player]
}

// Cell maps a path position to its board cell. ok is false for the start and
// exit positions, which are off the board.
func Cell(player Player, pos Position) (cell uint8, ok bool) {
	if pos == Start || pos >= Exit {
		return 0, false
	}
	return paths[player][pos-1], true
}

func IsShared(pos Position) bool {
	return pos >= firstShared && pos <= lastShared
}

// IsRosette reports whether landing on pos grants an extra turn.
func IsRosette(pos Position) bool {
	if pos == Start || pos >= Exit {
		return false
	}
	return rosetteCells&(1<<paths[0][pos-1]) != 0
}

// IsSafe reports whether a piece on pos cannot be captured.
func IsSafe(pos Position) bool {
	if pos == Start || pos >= Exit {
		return false
	}
	return safeCells&(1<<paths[0][pos-1]) != 0
}

// IsRosetteCell reports whether the board cell is a rosette.
func IsRosetteCell(cell uint8) bool {
	return cell < NumCells && rosetteCells&(1<<cell) != 0
}

// IsSafeCell reports whether a piece on the board cell cannot be captured.
func IsSafeCell(cell uint8) bool {
	return cell < NumCells && safeCells&(1<<cell) != 0
}
