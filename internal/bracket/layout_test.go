package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	matches, err := Generate(DoubleElimination, makeParticipants(8), nil)
	require.NoError(t, err)

	// Reverse to make sure ordering comes from the layout, not the input
	reversed := make([]Match, len(matches))
	for i, m := range matches {
		reversed[len(matches)-1-i] = m
	}

	layout := NewLayout(reversed)

	require.Len(t, layout.Winners, 3)
	require.Len(t, layout.Losers, 4)
	require.Len(t, layout.Finals, 1)

	for i, round := range layout.Winners {
		assert.Equal(t, i+1, round.Number)
		for j, m := range round.Matches {
			assert.Equal(t, j+1, m.MatchNum)
			assert.Equal(t, Winners, m.BracketType)
		}
	}
	assert.Len(t, layout.Losers[0].Matches, 2)
	assert.Len(t, layout.Losers[3].Matches, 1)
	assert.Equal(t, "GF-R1-M1", layout.Finals[0].Matches[0].TempID)
}

func TestNewLayoutSingleElimHasNoLosers(t *testing.T) {
	matches, err := Generate(SingleElimination, makeParticipants(4), nil)
	require.NoError(t, err)

	layout := NewLayout(matches)
	assert.Len(t, layout.Winners, 2)
	assert.Nil(t, layout.Losers)
	assert.Nil(t, layout.Finals)
}
