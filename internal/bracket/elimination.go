package bracket

import "github.com/AdamBeresnev/bracket-forge/internal/utils"

func generateSingleElim(ordered []Participant, seeding Seeding) []Match {
	return winnersBracket(ordered, calcBracketSize(len(ordered)), seeding, nil)
}

// winnersBracket lays out a plain knockout tree. Match m of round r feeds match m/2 of
// round r+1. If grandFinal is set the last round feeds it instead of terminating.
func winnersBracket(ordered []Participant, bracketSize int, seeding Seeding, grandFinal *string) []Match {
	totalRounds := roundsFor(bracketSize)
	matches := make([]Match, 0, bracketSize-1)

	for r := 1; r <= totalRounds; r++ {
		matchesInRound := bracketSize >> r

		for i := 0; i < matchesInRound; i++ {
			m := Match{
				Round:       r,
				MatchNum:    i + 1,
				TempID:      tempID(winnersPrefix, r, i+1),
				BracketType: Winners,
			}

			if r < totalRounds {
				m.NextMatchTempID = utils.Ptr(tempID(winnersPrefix, r+1, i/2+1))
				m.NextSlot = utils.Ptr(i%2 + 1)
			} else if grandFinal != nil {
				m.NextMatchTempID = utils.Ptr(*grandFinal)
				m.NextSlot = utils.Ptr(1)
			}

			matches = append(matches, m)
		}
	}

	// Round 1 is always the head of the slice
	for i, pair := range generateRound1Pairs(bracketSize, seeding) {
		matches[i].Participant1ID = participantAt(ordered, pair[0])
		matches[i].Participant2ID = participantAt(ordered, pair[1])
	}

	return matches
}

func generateDoubleElim(ordered []Participant, seeding Seeding) []Match {
	bracketSize := calcBracketSize(len(ordered))
	grandFinal := tempID(grandFinalPrefix, 1, 1)

	matches := winnersBracket(ordered, bracketSize, seeding, &grandFinal)
	losers := losersBracket(bracketSize, grandFinal)
	if len(losers) > 0 {
		dropLosers(matches)
	}

	matches = append(matches, losers...)
	matches = append(matches, Match{
		Round:       1,
		MatchNum:    1,
		TempID:      grandFinal,
		BracketType: Grand,
	})
	return matches
}

// losersRoundSize halves every second round. Odd rounds only play survivors against
// each other, even rounds also take in the losers dropping down from the winners side,
// so the count stays the same across each pair.
func losersRoundSize(bracketSize, round int) int {
	return (bracketSize / 4) >> ((round - 1) / 2)
}

func losersRoundCount(bracketSize int) int {
	winnersRounds := roundsFor(bracketSize)
	if winnersRounds < 1 {
		return 0
	}
	return 2 * (winnersRounds - 1)
}

func losersBracket(bracketSize int, grandFinal string) []Match {
	totalRounds := losersRoundCount(bracketSize)
	var matches []Match

	for r := 1; r <= totalRounds; r++ {
		matchesInRound := losersRoundSize(bracketSize, r)

		for i := 0; i < matchesInRound; i++ {
			m := Match{
				Round:       r,
				MatchNum:    i + 1,
				TempID:      tempID(losersPrefix, r, i+1),
				BracketType: Losers,
			}

			switch {
			case r == totalRounds:
				m.NextMatchTempID = utils.Ptr(grandFinal)
				m.NextSlot = utils.Ptr(2)
			case losersRoundSize(bracketSize, r+1) == matchesInRound:
				// Slot 2 is kept for whoever drops down from the winners side
				m.NextMatchTempID = utils.Ptr(tempID(losersPrefix, r+1, i+1))
				m.NextSlot = utils.Ptr(1)
			default:
				m.NextMatchTempID = utils.Ptr(tempID(losersPrefix, r+1, i/2+1))
				m.NextSlot = utils.Ptr(i%2 + 1)
			}

			matches = append(matches, m)
		}
	}

	return matches
}

// dropLosers links every winners bracket match to the losers bracket match its loser
// plays next. Round 1 losers pair up among themselves, later rounds meet a survivor.
func dropLosers(winners []Match) {
	for i := range winners {
		m := &winners[i]
		if m.Round == 1 {
			m.LoserNextTempID = utils.Ptr(tempID(losersPrefix, 1, (m.MatchNum-1)/2+1))
			m.LoserNextSlot = utils.Ptr((m.MatchNum-1)%2 + 1)
			continue
		}
		m.LoserNextTempID = utils.Ptr(tempID(losersPrefix, 2*(m.Round-1), m.MatchNum))
		m.LoserNextSlot = utils.Ptr(2)
	}
}
