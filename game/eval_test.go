package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightsBest(t *testing.T) {
	w := DefaultWeights()

	t.Run("preferring a capture", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{3, 1},
			[NumPieces]Position{Start, 5})

		got := w.Best(s, s.LegalMoves(2))

		require.Equal(t, Move{Piece: 0, Roll: 2, From: 3, To: 5}, got,
			"Capturing should beat plain advancement")
	})

	t.Run("preferring the winning exit", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{Exit, Exit, Exit, Exit, Exit, Exit, 12},
			[NumPieces]Position{9})

		got := w.Best(s, s.LegalMoves(3))

		require.Equal(t, Exit, got.To)
	})

	t.Run("preferring a rosette", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{6, 2, Exit, Exit, Exit, Exit, Exit},
			[NumPieces]Position{})

		got := w.Best(s, s.LegalMoves(2))

		require.Equal(t, Move{Piece: 0, Roll: 2, From: 6, To: CentralRosette}, got)
	})

	t.Run("breaking ties by generation order", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{1, 2, Exit, Exit, Exit, Exit, Exit},
			[NumPieces]Position{})
		flat := Weights{}

		got := flat.Best(s, s.LegalMoves(1))

		require.Equal(t, s.LegalMoves(1)[0], got, "Equal scores should keep the first move")
	})

	t.Run("scoring a capture by the lost progress", func(t *testing.T) {
		near := setup(t, One, [NumPieces]Position{3}, [NumPieces]Position{Start, 5})
		far := setup(t, One, [NumPieces]Position{8}, [NumPieces]Position{Start, 10})

		nearScore := Weights{CaptureProgress: 1}.Score(near, Move{Piece: 0, Roll: 2, From: 3, To: 5})
		farScore := Weights{CaptureProgress: 1}.Score(far, Move{Piece: 0, Roll: 2, From: 8, To: 10})

		require.Greater(t, farScore, nearScore)
	})

	t.Run("penalizing exposure", func(t *testing.T) {
		s := setup(t, One,
			[NumPieces]Position{3, Exit, Exit, Exit, Exit, Exit, Exit},
			[NumPieces]Position{3})
		exposure := Weights{Exposure: 1}

		got := exposure.Score(s, Move{Piece: 0, Roll: 3, From: 3, To: 6})

		require.Equal(t, -1.0, got, "One opponent piece three squares behind should threaten")
	})

	t.Run("scoring a pass as zero", func(t *testing.T) {
		require.Zero(t, w.Score(NewState(), Pass(0)))
	})
}

func TestEvaluateProgress(t *testing.T) {
	t.Run("balancing the starting position", func(t *testing.T) {
		require.InDelta(t, 0.5, EvaluateProgress(NewState()), 1e-12)
	})

	t.Run("scoring won and lost games", func(t *testing.T) {
		all := [NumPieces]Position{Exit, Exit, Exit, Exit, Exit, Exit, Exit}
		won := setup(t, One, all, [NumPieces]Position{})
		lost := setup(t, Two, all, [NumPieces]Position{})

		require.Equal(t, 1.0, EvaluateProgress(won))
		require.Equal(t, 0.0, EvaluateProgress(lost))
	})

	t.Run("favoring the player ahead", func(t *testing.T) {
		s := setup(t, One, [NumPieces]Position{10, 12}, [NumPieces]Position{2})

		require.Greater(t, EvaluateProgress(s), 0.5)
	})
}
