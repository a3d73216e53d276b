package searcher

import "math"

// DefaultExploration is c in the UCB1 bound, sqrt(2) for rewards in [0, 1].
const DefaultExploration = math.Sqrt2

// Win is the reward a finished playout gives its winner. Every other node on
// the path is credited with Win minus that from its own player's view.
const Win = 1.0

// ucb1 ranks the children of one node and holds c^2 ln N for that node.
type ucb1 float64

func newUCB1(cSquared float64, parentVisits int64) ucb1 {
	return ucb1(cSquared * math.Log(float64(max(parentVisits, 1))))
}

// bound is rewards/visits + sqrt(c^2 ln N / visits). Unvisited children rank first.
func (u ucb1) bound(rewards float64, visits int64) float64 {
	if visits <= 0 {
		return math.Inf(1)
	}
	n := float64(visits)
	return rewards/n + math.Sqrt(float64(u)/n)
}
