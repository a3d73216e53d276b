package game

import "fmt"

// LegalMoves returns the moves available to the player to move with roll, in
// piece-index order. Pieces at start are interchangeable, so only the first of
// them can enter. When nothing can advance the only move is a pass; once the
// game is won, or for a roll the dice cannot show, there are no moves at all.
func (s State) LegalMoves(roll int) []Move {
	if s.IsOver() {
		return nil
	}
	return s.AppendLegalMoves(make([]Move, 0, NumPieces), roll)
}

// AppendLegalMoves is LegalMoves writing into dst, for callers that reuse a buffer.
func (s State) AppendLegalMoves(dst []Move, roll int) []Move {
	if s.IsOver() || !ValidRoll(roll) {
		return dst
	}
	n := len(dst)
	if roll > 0 {
		entered := false
		for piece, pos := range s.pieces[s.turn] {
			if pos == Exit {
				continue
			}
			if pos == Start {
				if entered {
					continue
				}
				entered = true
			}
			to := pos + Position(roll)
			if s.canLand(s.turn, to) {
				dst = append(dst, Move{Piece: int8(piece), Roll: uint8(roll), From: pos, To: to})
			}
		}
	}
	if len(dst) == n {
		dst = append(dst, Pass(roll))
	}
	return dst
}

// canLand reports whether a piece of player may finish on to. Exiting needs
// the exact roll, so anything past the exit is rejected.
func (s State) canLand(player Player, to Position) bool {
	if to == Exit {
		return true
	}
	if to > Exit {
		return false
	}
	for _, pos := range s.pieces[player] {
		if pos == to {
			return false
		}
	}
	if !IsShared(to) {
		return true
	}
	// Shared squares have the same position on both paths.
	for _, pos := range s.pieces[player.Other()] {
		if pos == to {
			return !IsSafe(to)
		}
	}
	return true
}

// IsLegal reports whether m is in the legal set for its roll.
func (s State) IsLegal(m Move) bool {
	for _, legal := range s.LegalMoves(int(m.Roll)) {
		if legal == m {
			return true
		}
	}
	return false
}

// Apply validates m against the legal moves and returns the resulting state.
// The receiver is never modified.
func (s State) Apply(m Move) (State, Effects, error) {
	if s.IsOver() {
		return s, Effects{CapturedPiece: -1}, ErrGameOver
	}
	if !ValidRoll(int(m.Roll)) {
		return s, Effects{CapturedPiece: -1}, fmt.Errorf("%w: %w: %d", ErrIllegalMove, ErrInvalidRoll, m.Roll)
	}
	if !s.IsLegal(m) {
		return s, Effects{CapturedPiece: -1}, fmt.Errorf("%w: %s for %s in %s", ErrIllegalMove, m, s.turn, s)
	}
	next, effects := s.Play(m)
	return next, effects, nil
}

// Play applies m without validation. m must come from LegalMoves on s.
func (s State) Play(m Move) (State, Effects) {
	effects := Effects{CapturedPiece: -1}
	if m.IsPass() {
		s.turn = s.turn.Other()
		return s, effects
	}

	player := s.turn
	s.pieces[player][m.Piece] = m.To
	switch {
	case m.To == Exit:
		effects.Exited = true
		effects.Won = s.Exited(player) == NumPieces
	case IsShared(m.To):
		opponent := player.Other()
		for piece, pos := range s.pieces[opponent] {
			if pos == m.To {
				s.pieces[opponent][piece] = Start
				effects.Capture = true
				effects.CapturedPiece = int8(piece)
				break
			}
		}
	}

	effects.ExtraTurn = IsRosette(m.To)
	if !effects.ExtraTurn {
		s.turn = s.turn.Other()
	}
	return s, effects
}
