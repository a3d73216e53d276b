package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

type Player uint8

const (
	One Player = iota
	Two
)

func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", p+1)
}

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrInvalidState = errors.New("invalid state")
	ErrInvalidRoll  = errors.New("roll out of range")
)

// Source supplies all randomness used by the engine. Callers own it, so a
// seeded source makes dice rolls and random choices reproducible.
// A Source is not safe for concurrent use.
type Source interface {
	Uint64() uint64
	Intn(n int) int
	Float64() float64
}

// NewSource returns a PCG-backed source seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Evaluates the state to a score between 0 and 1 indicating how favorable
// the position is for the player to move.
type Evaluate func(State) float64
