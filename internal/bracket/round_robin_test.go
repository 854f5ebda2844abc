package bracket

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinEveryPairOnce(t *testing.T) {
	for n := 2; n <= 9; n++ {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			matches, err := Generate(RoundRobin, makeParticipants(n), nil)
			require.NoError(t, err)
			require.NoError(t, Validate(matches))

			assert.Len(t, matches, n*(n-1)/2)

			pairs := make(map[[2]string]bool)
			for i, m := range matches {
				assert.Equal(t, 1, m.Round)
				assert.Equal(t, i+1, m.MatchNum)
				assert.Equal(t, Winners, m.BracketType)
				assert.True(t, m.IsTerminal())

				require.NotNil(t, m.Participant1ID)
				require.NotNil(t, m.Participant2ID)
				assert.NotEqual(t, *m.Participant1ID, *m.Participant2ID)

				key := historyKey(*m.Participant1ID, *m.Participant2ID)
				assert.False(t, pairs[key], "pair %v played twice", key)
				pairs[key] = true
			}
		})
	}
}

func TestRoundRobinFourEntries(t *testing.T) {
	matches, err := Generate(RoundRobin, makeParticipants(4), nil)
	require.NoError(t, err)

	expected := [][2]string{
		{"p1", "p2"}, {"p1", "p3"}, {"p1", "p4"},
		{"p2", "p3"}, {"p2", "p4"},
		{"p3", "p4"},
	}

	require.Len(t, matches, len(expected))
	for i, pair := range expected {
		assert.Equal(t, fmt.Sprintf("RR-R1-M%d", i+1), matches[i].TempID)
		assert.Equal(t, pair[0], *matches[i].Participant1ID)
		assert.Equal(t, pair[1], *matches[i].Participant2ID)
	}
}
