package agent

import "ur/game"

// RandomAgent picks a legal move uniformly at random.
type RandomAgent struct {
	src game.Source
}

// NewRandom returns an agent drawing from src. src is not safe for
// concurrent use, so neither is the agent.
func NewRandom(src game.Source) *RandomAgent {
	return &RandomAgent{src: src}
}

func (r *RandomAgent) Choose(state game.State, roll int) (game.Move, error) {
	moves, err := legalMoves(state, roll)
	if err != nil {
		return game.Move{}, err
	}
	return moves[r.src.Intn(len(moves))], nil
}
