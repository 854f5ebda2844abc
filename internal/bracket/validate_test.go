package bracket

import (
	"testing"

	"github.com/AdamBeresnev/bracket-forge/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatchesBrokenBrackets(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func([]Match) []Match
	}{
		{
			name: "Dangling next match",
			mutate: func(ms []Match) []Match {
				ms[0].NextMatchTempID = utils.Ptr("W-R9-M1")
				return ms
			},
		},
		{
			name: "Dangling loser drop",
			mutate: func(ms []Match) []Match {
				ms[0].LoserNextTempID = utils.Ptr("L-R9-M1")
				return ms
			},
		},
		{
			name: "Self link",
			mutate: func(ms []Match) []Match {
				ms[0].NextMatchTempID = utils.Ptr(ms[0].TempID)
				return ms
			},
		},
		{
			name: "Duplicate temp id",
			mutate: func(ms []Match) []Match {
				ms[1].TempID = ms[0].TempID
				return ms
			},
		},
		{
			name: "Gap in match numbers",
			mutate: func(ms []Match) []Match {
				ms[1].MatchNum = 5
				return ms
			},
		},
		{
			name: "Skipped round",
			mutate: func(ms []Match) []Match {
				for i := range ms {
					if ms[i].BracketType == Losers && ms[i].Round == 1 {
						ms[i].Round = 0
					}
				}
				return ms
			},
		},
		{
			name: "Two grand finals",
			mutate: func(ms []Match) []Match {
				extra := ms[len(ms)-1]
				extra.TempID = "GF-R1-M2"
				extra.MatchNum = 2
				return append(ms, extra)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			matches, err := Generate(DoubleElimination, makeParticipants(8), nil)
			require.NoError(t, err)
			require.NoError(t, Validate(matches))

			assert.ErrorIs(t, Validate(tc.mutate(matches)), ErrStructure)
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	assert.NoError(t, Validate(nil))
}
