package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, turn Player, one, two [NumPieces]Position) State {
	t.Helper()
	s, err := Setup(turn, one, two)
	require.NoError(t, err)
	return s
}

func TestLegalMoves(t *testing.T) {
	t.Run("entering on an empty board", func(t *testing.T) {
		s := NewState()

		got := s.LegalMoves(4)

		require.Equal(t, []Move{{Piece: 0, Roll: 4, From: Start, To: 4}}, got,
			"Only the first waiting piece should enter")
	})

	t.Run("rolling zero", func(t *testing.T) {
		s := NewState()

		got := s.LegalMoves(0)

		require.Equal(t, []Move{Pass(0)}, got, "A roll of 0 should only allow a pass")
	})

	t.Run("enumerating in piece order", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{Start, 6, Start, 1, Exit, Start, Start},
			[NumPieces]Position{})

		got := s.LegalMoves(2)

		require.Equal(t, []Move{
			{Piece: 0, Roll: 2, From: Start, To: 2},
			{Piece: 1, Roll: 2, From: 6, To: 8},
			{Piece: 3, Roll: 2, From: 1, To: 3},
		}, got, "Moves should follow piece order and skip exited and duplicate start pieces")
		require.Equal(t, got, s.LegalMoves(2), "Enumeration should be stable")
	})

	t.Run("blocking own pieces", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{3, 5, Exit, Exit, Exit, Exit, Exit},
			[NumPieces]Position{})

		got := s.LegalMoves(2)

		require.Equal(t, []Move{{Piece: 1, Roll: 2, From: 5, To: 7}}, got,
			"A piece should not land on another piece of its owner")
	})

	t.Run("requiring an exact roll to exit", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{13, Exit, Exit, Exit, Exit, Exit, Exit},
			[NumPieces]Position{})

		require.Equal(t, []Move{{Piece: 0, Roll: 2, From: 13, To: Exit}}, s.LegalMoves(2),
			"The exact roll should exit")
		require.Equal(t, []Move{Pass(3)}, s.LegalMoves(3), "Overshooting should not be legal")
		require.Equal(t, []Move{Pass(4)}, s.LegalMoves(4), "Overshooting should not be legal")
	})

	t.Run("never overshooting the exit", func(t *testing.T) {
		for pos := Position(1); pos <= PathLen; pos++ {
			s := setup(t, One,
				[NumPieces]Position{pos, Exit, Exit, Exit, Exit, Exit, Exit},
				[NumPieces]Position{})
			for roll := 1; roll <= MaxRoll; roll++ {
				for _, m := range s.LegalMoves(roll) {
					if m.IsPass() {
						continue
					}
					require.LessOrEqual(t, m.To, Exit, "Target should never pass the exit")
					require.Equal(t, int(m.To-m.From), roll, "Moves should advance by the roll")
				}
			}
		}
	})

	t.Run("blocking captures on the central rosette", func(t *testing.T) {
		s := setup(t, Two,
			[NumPieces]Position{CentralRosette},
			[NumPieces]Position{5})

		got := s.LegalMoves(3)

		require.NotContains(t, got, Move{Piece: 0, Roll: 3, From: 5, To: CentralRosette},
			"A piece on a rosette should be safe")
	})

	t.Run("sharing no cells on private squares", func(t *testing.T) {
		s := setup(t, Two,
			[NumPieces]Position{3},
			[NumPieces]Position{1})

		got := s.LegalMoves(2)

		require.Contains(t, got, Move{Piece: 0, Roll: 2, From: 1, To: 3},
			"Private squares of different players are different cells")
	})

	t.Run("passing when nothing can move", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{5, Exit, Exit, Exit, Exit, Exit, Exit},
			[NumPieces]Position{CentralRosette})

		require.Equal(t, []Move{Pass(3)}, s.LegalMoves(3), "Blocked pieces should force a pass")
	})

	t.Run("generating nothing once the game is won", func(t *testing.T) {
		all := [NumPieces]Position{Exit, Exit, Exit, Exit, Exit, Exit, Exit}
		for _, turn := range []Player{One, Two} {
			s := setup(t, turn, all, [NumPieces]Position{})

			winner, over := s.Winner()

			require.True(t, over, "Game should be over")
			require.Equal(t, One, winner, "Player with every piece exited should win")
			for roll := 0; roll <= MaxRoll; roll++ {
				require.Empty(t, s.LegalMoves(roll), "No moves should be generated after a win")
			}
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("entering on a safe square passes the turn", func(t *testing.T) {
		s := NewState()
		m := s.LegalMoves(4)[0]

		got, effects, err := s.Apply(m)

		require.NoError(t, err)
		require.True(t, IsSafe(4))
		require.False(t, IsRosette(4), "Position 4 should be safe but not a rosette")
		require.False(t, effects.ExtraTurn)
		require.Equal(t, Two, got.Turn())
		require.Equal(t, Position(4), got.Position(One, 0))
		require.Equal(t, Start, s.Position(One, 0), "Original state should not change")
	})

	t.Run("landing on a rosette keeps the turn", func(t *testing.T) {
		for _, to := range []Position{CentralRosette, PathLen} {
			s := setup(t, One, [NumPieces]Position{to - 2}, [NumPieces]Position{})

			got, effects, err := s.Apply(Move{Piece: 0, Roll: 2, From: to - 2, To: to})

			require.NoError(t, err)
			require.True(t, effects.ExtraTurn, "Landing on a rosette should grant an extra turn")
			require.Equal(t, One, got.Turn(), "Turn should not change after an extra turn")
		}
	})

	t.Run("passing the turn on a plain square", func(t *testing.T) {
		s := NewState()

		got, effects, err := s.Apply(s.LegalMoves(2)[0])

		require.NoError(t, err)
		require.False(t, effects.ExtraTurn)
		require.Equal(t, Two, got.Turn(), "Turn should pass to the opponent")
	})

	t.Run("passing flips the turn", func(t *testing.T) {
		s := NewState()

		got, effects, err := s.Apply(Pass(0))

		require.NoError(t, err)
		require.Equal(t, Effects{CapturedPiece: -1}, effects, "A pass should have no effects")
		require.Equal(t, Two, got.Turn(), "A pass should flip the turn")
	})

	t.Run("capturing an unprotected piece", func(t *testing.T) {
		s := setup(t, Two,
			[NumPieces]Position{Start, 6},
			[NumPieces]Position{3})
		m := Move{Piece: 0, Roll: 3, From: 3, To: 6}
		require.Contains(t, s.LegalMoves(3), m)

		got, effects, err := s.Apply(m)

		require.NoError(t, err)
		require.True(t, effects.Capture, "Landing on an opponent should capture")
		require.Equal(t, int8(1), effects.CapturedPiece, "Captured piece should be reported")
		require.Equal(t, Start, got.Position(One, 1), "Captured piece should return to start")
		require.Equal(t, Position(6), got.Position(Two, 0))
		require.Equal(t, One, got.Turn())
	})

	t.Run("rejecting a capture on a rosette", func(t *testing.T) {
		s := setup(t, Two,
			[NumPieces]Position{CentralRosette},
			[NumPieces]Position{5})

		_, _, err := s.Apply(Move{Piece: 0, Roll: 3, From: 5, To: CentralRosette})

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting a move outside the legal set", func(t *testing.T) {
		s := NewState()

		_, _, err := s.Apply(Move{Piece: 1, Roll: 2, From: Start, To: 2})
		require.ErrorIs(t, err, ErrIllegalMove, "Only the first waiting piece may enter")

		_, _, err = s.Apply(Pass(2))
		require.ErrorIs(t, err, ErrIllegalMove, "Passing should not be legal when a piece can move")
	})

	t.Run("exiting the last piece wins", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{Exit, Exit, Exit, Exit, Exit, Exit, 11},
			[NumPieces]Position{})

		got, effects, err := s.Apply(Move{Piece: 6, Roll: 4, From: 11, To: Exit})

		require.NoError(t, err)
		require.True(t, effects.Exited)
		require.True(t, effects.Won)
		winner, over := got.Winner()
		require.True(t, over)
		require.Equal(t, One, winner)
	})

	t.Run("rejecting moves after the game is over", func(t *testing.T) {
		s := setup(t, Two,
			[NumPieces]Position{Exit, Exit, Exit, Exit, Exit, Exit, Exit},
			[NumPieces]Position{})

		_, _, err := s.Apply(Pass(0))

		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestImpossibleRolls(t *testing.T) {
	t.Run("generating no moves", func(t *testing.T) {
		for _, roll := range []int{-1, 5, 9} {
			require.Empty(t, NewState().LegalMoves(roll), "Roll %d cannot come up", roll)
		}
	})

	t.Run("rejecting passes with an impossible roll", func(t *testing.T) {
		s := NewState()
		for _, roll := range []int{-1, 5, 9} {
			got, _, err := s.Apply(Pass(roll))

			require.ErrorIs(t, err, ErrIllegalMove)
			require.ErrorIs(t, err, ErrInvalidRoll)
			require.Equal(t, s, got, "State should not change")
		}
	})

	t.Run("rejecting a move with an impossible roll", func(t *testing.T) {
		s := setup(t, One, [NumPieces]Position{3}, [NumPieces]Position{})

		_, _, err := s.Apply(Move{Piece: 0, Roll: 5, From: 3, To: 8})

		require.ErrorIs(t, err, ErrInvalidRoll)
	})
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	src := NewSource(7)
	for game := 0; game < 200; game++ {
		s := NewState()
		for ply := 0; !s.IsOver(); ply++ {
			require.Less(t, ply, 5000, "Game should terminate")
			roll := Roll(src)
			moves := s.LegalMoves(roll)
			require.NotEmpty(t, moves)
			m := moves[src.Intn(len(moves))]

			next, effects, err := s.Apply(m)
			require.NoError(t, err)
			require.NoError(t, next.check(), "Every reachable state should be valid")

			for _, player := range []Player{One, Two} {
				require.Equal(t, NumPieces,
					next.AtStart(player)+next.OnBoard(player)+next.Exited(player),
					"Piece count should be conserved")
			}
			if effects.ExtraTurn {
				require.Equal(t, s.Turn(), next.Turn(), "Rosettes should keep the turn")
				require.True(t, IsRosette(m.To))
			} else {
				require.Equal(t, s.Turn().Other(), next.Turn(), "Turn should flip")
			}
			s = next
		}
	}
}
