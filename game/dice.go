package game

import "math/bits"

// Roll throws four binary dice and returns the number of marked tips.
func Roll(src Source) int {
	return bits.OnesCount64(src.Uint64() & 0xF)
}

// ValidRoll reports whether roll can come up on four binary dice.
func ValidRoll(roll int) bool {
	return roll >= 0 && roll <= MaxRoll
}

var rollWeights = [MaxRoll + 1]float64{1, 4, 6, 4, 1}

// RollProbability returns the chance of throwing roll with four binary dice.
func RollProbability(roll int) float64 {
	if roll < 0 || roll > MaxRoll {
		return 0
	}
	return rollWeights[roll] / 16
}
