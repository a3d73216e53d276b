package game

import (
	"fmt"
	"strings"
)

// State is the full game position. It is a small comparable value: copying it
// is an assignment, so search branches never share mutable data.
type State struct {
	pieces [2][NumPieces]Position
	turn   Player
}

// NewState returns the starting position: every piece at start, Player One to move.
func NewState() State {
	return State{turn: One}
}

// Setup builds an arbitrary position. It rejects positions out of range,
// two pieces of one player on the same square, and two pieces on one shared
// cell.
func Setup(turn Player, one, two [NumPieces]Position) (State, error) {
	if turn > Two {
		return State{}, fmt.Errorf("%w: unknown player %d", ErrInvalidState, turn)
	}
	s := State{pieces: [2][NumPieces]Position{one, two}, turn: turn}
	if err := s.check(); err != nil {
		return State{}, err
	}
	return s, nil
}

func (s State) check() error {
	var occupied [NumCells]int8
	for player := One; player <= Two; player++ {
		for piece, pos := range s.pieces[player] {
			if pos > Exit {
				return fmt.Errorf("%w: %s piece %d at position %d", ErrInvalidState, player, piece, pos)
			}
			cell, ok := Cell(player, pos)
			if !ok {
				continue
			}
			if occupied[cell] != 0 {
				return fmt.Errorf("%w: cell %d occupied twice", ErrInvalidState, cell)
			}
			occupied[cell] = int8(player) + 1
		}
	}
	return nil
}

// Turn returns the player to move.
func (s State) Turn() Player {
	return s.turn
}

func (s State) Position(player Player, piece int) Position {
	return s.pieces[player][piece]
}

// Positions returns a copy of a player's piece positions.
func (s State) Positions(player Player) [NumPieces]Position {
	return s.pieces[player]
}

func (s State) Exited(player Player) int {
	return s.count(player, func(pos Position) bool { return pos == Exit })
}

func (s State) AtStart(player Player) int {
	return s.count(player, func(pos Position) bool { return pos == Start })
}

func (s State) OnBoard(player Player) int {
	return s.count(player, func(pos Position) bool { return pos != Start && pos != Exit })
}

func (s State) count(player Player, match func(Position) bool) int {
	n := 0
	for _, pos := range s.pieces[player] {
		if match(pos) {
			n++
		}
	}
	return n
}

// Winner returns the player with every piece exited, if any.
func (s State) Winner() (Player, bool) {
	for player := One; player <= Two; player++ {
		if s.Exited(player) == NumPieces {
			return player, true
		}
	}
	return 0, false
}

// IsOver reports whether a player has won.
func (s State) IsOver() bool {
	_, over := s.Winner()
	return over
}

// Occupant returns the piece standing on a board cell.
func (s State) Occupant(cell uint8) (player Player, piece int, ok bool) {
	for player := One; player <= Two; player++ {
		for piece, pos := range s.pieces[player] {
			if c, on := Cell(player, pos); on && c == cell {
				return player, piece, true
			}
		}
	}
	return 0, -1, false
}

// Progress sums the positions of a player's pieces; an exited piece counts 15.
func (s State) Progress(player Player) int {
	total := 0
	for _, pos := range s.pieces[player] {
		total += int(pos)
	}
	return total
}

func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn=%s", s.turn)
	for player := One; player <= Two; player++ {
		fmt.Fprintf(&b, " %s=[", player)
		for piece, pos := range s.pieces[player] {
			if piece > 0 {
				b.WriteByte(' ')
			}
			switch pos {
			case Start:
				b.WriteByte('S')
			case Exit:
				b.WriteByte('X')
			default:
				fmt.Fprintf(&b, "%d", pos)
			}
		}
		b.WriteByte(']')
	}
	return b.String()
}
