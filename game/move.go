package game

import "fmt"

// Move advances one of the mover's pieces from From to To using Roll.
// A pass has Piece -1 and keeps the roll that forced it.
type Move struct {
	Piece int8
	Roll  uint8
	From  Position
	To    Position
}

// Pass returns the move played when nothing can advance, including on a roll of 0.
func Pass(roll int) Move {
	return Move{Piece: -1, Roll: uint8(roll)}
}

func (m Move) IsPass() bool {
	return m.Piece < 0
}

func (m Move) String() string {
	if m.IsPass() {
		return fmt.Sprintf("pass(%d)", m.Roll)
	}
	return fmt.Sprintf("piece %d: %s->%s", m.Piece, label(m.From), label(m.To))
}

func label(pos Position) string {
	switch pos {
	case Start:
		return "start"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("%d", pos)
	}
}

// Effects records what happened when a move was applied.
type Effects struct {
	Capture       bool
	CapturedPiece int8 // -1 unless Capture
	ExtraTurn     bool
	Exited        bool
	Won           bool
}
