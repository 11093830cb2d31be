package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotation(t *testing.T) {
	require.Equal(t, "A1", Notation(0, 3))
	require.Equal(t, "B2", Notation(4, 3))
	require.Equal(t, "C3", Notation(8, 3))
	require.Equal(t, "D1", Notation(3, 4))
}

func TestParseNotation(t *testing.T) {
	valid := map[string]int{"a1": 0, "B2": 4, " c3\n": 8, "A3": 6}
	for in, want := range valid {
		t.Run(in, func(t *testing.T) {
			got, err := ParseNotation(in, 3)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}

	invalid := []string{"", "1a", "d1", "a4", "a0", "a", "b2x", "aa1"}
	for _, in := range invalid {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := ParseNotation(in, 3)
			require.ErrorIs(t, err, ErrBadNotation)
		})
	}
}

func TestMoveLog(t *testing.T) {
	log := NewMoveLog(3)
	require.Equal(t, 0, log.Len())
	log.Append(4, X)
	log.Append(0, O)
	log.Append(8, X)

	require.Equal(t, 3, log.Len())
	require.Equal(t, "Moves: B2 -> A1 -> C3", log.String())
	require.Equal(t, Record{Move: 0, Mark: O}, log.Records()[1])
}
