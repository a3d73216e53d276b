package game

// Weights tunes the heuristic move score. Every term is exposed so callers
// can retune the smart player instead of relying on fixed constants.
type Weights struct {
	Enter           float64 // bringing a new piece onto the board
	Advance         float64 // per square of the landing position
	Rosette         float64 // landing on a rosette (extra turn)
	Safe            float64 // landing on a safe square
	LeaveSafe       float64 // penalty for leaving a safe square
	Exposure        float64 // penalty per opponent piece able to hit the landing square
	Escape          float64 // bonus per opponent piece threatening the square being left
	Exit            float64 // bearing a piece off
	Win             float64 // bearing off the last piece
	Capture         float64 // sending an opponent piece back to start
	CaptureProgress float64 // per square of progress the captured piece loses
}

func DefaultWeights() Weights {
	return Weights{
		Enter:           50,
		Advance:         10,
		Rosette:         200,
		Safe:            20,
		LeaveSafe:       40,
		Exposure:        30,
		Escape:          25,
		Exit:            1000,
		Win:             10000,
		Capture:         150,
		CaptureProgress: 5,
	}
}

// Score rates move m for the player to move in s. Higher is better; a pass scores 0.
func (w Weights) Score(s State, m Move) float64 {
	if m.IsPass() {
		return 0
	}
	player := s.Turn()
	next, effects := s.Play(m)

	score := 0.0
	if m.From == Start {
		score += w.Enter
	}
	if effects.Exited {
		score += w.Exit
		if effects.Won {
			score += w.Win
		}
	} else {
		score += w.Advance * float64(m.To)
	}
	if effects.ExtraTurn {
		score += w.Rosette
	}
	if IsSafe(m.To) {
		score += w.Safe
	}
	if IsSafe(m.From) {
		score -= w.LeaveSafe
	}
	if effects.Capture {
		// The captured piece stood on the same shared position.
		score += w.Capture + w.CaptureProgress*float64(m.To)
	}
	score -= w.Exposure * float64(threats(next, player, m.To))
	score += w.Escape * float64(threats(s, player, m.From))
	return score
}

// Best returns the highest scoring move, the earliest one on ties.
func (w Weights) Best(s State, moves []Move) Move {
	if len(moves) == 0 {
		return Pass(0)
	}
	best := moves[0]
	bestScore := w.Score(s, best)
	for _, m := range moves[1:] {
		if score := w.Score(s, m); score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

// threats counts opponent pieces that could land on a piece of player at pos
// with a single roll.
func threats(s State, player Player, pos Position) int {
	if !IsShared(pos) || IsSafe(pos) {
		return 0
	}
	n := 0
	for _, q := range s.pieces[player.Other()] {
		if q != Start && q < pos && pos-q <= MaxRoll {
			n++
		}
	}
	return n
}

const maxProgress = NumPieces * int(Exit)

// EvaluateProgress scores the race from the perspective of the player to move:
// 1 for a won game, 0 for a lost one, otherwise the share of total progress.
func EvaluateProgress(s State) float64 {
	player := s.Turn()
	if winner, over := s.Winner(); over {
		if winner == player {
			return 1
		}
		return 0
	}
	mine := s.Progress(player)
	theirs := s.Progress(player.Other())
	return float64(mine+maxProgress-theirs) / float64(2*maxProgress)
}
