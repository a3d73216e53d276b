package agent

import "ur/game"

// SmartAgent plays the legal move with the highest heuristic score. It is
// deterministic: ties go to the first move in generation order.
type SmartAgent struct {
	weights game.Weights
}

func NewSmart(weights game.Weights) *SmartAgent {
	return &SmartAgent{weights: weights}
}

func (s *SmartAgent) Choose(state game.State, roll int) (game.Move, error) {
	moves, err := legalMoves(state, roll)
	if err != nil {
		return game.Move{}, err
	}
	return s.weights.Best(state, moves), nil
}
