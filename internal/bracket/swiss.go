package bracket

import (
	"fmt"
	"sort"

	"github.com/AdamBeresnev/bracket-forge/internal/utils"
)

// generateSwiss only reserves the shape of a Swiss event. Real pairings depend on the
// standings after each round, see PairSwissRound.
func generateSwiss(participantCount, numRounds int) []Match {
	perRound := participantCount / 2
	matches := make([]Match, 0, perRound*numRounds)

	for r := 1; r <= numRounds; r++ {
		for i := 1; i <= perRound; i++ {
			matches = append(matches, Match{
				Round:       r,
				MatchNum:    i,
				TempID:      tempID(swissPrefix, r, i),
				BracketType: Winners,
			})
		}
	}

	return matches
}

type Standing struct {
	ParticipantID string  `json:"participant_id"`
	Seed          int     `json:"seed"`
	Points        float64 `json:"points"`
	HadBye        bool    `json:"had_bye"`
}

type Pairing struct {
	Participant1ID string `json:"participant_1_id"`
	Participant2ID string `json:"participant_2_id"`
}

// History records who already played whom, regardless of side.
type History map[[2]string]struct{}

func historyKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func (h History) Add(a, b string) {
	h[historyKey(a, b)] = struct{}{}
}

func (h History) Played(a, b string) bool {
	_, ok := h[historyKey(a, b)]
	return ok
}

// PairSwissRound pairs the next Swiss round from current standings. Participants are
// ranked by points, then seed, and each one is matched with the closest ranked opponent
// it has not met yet. With an odd count the lowest ranked participant without a bye sits
// out and is returned as the bye. If no rematch-free pairing exists, or the search gives
// up after swissSearchBudget steps, the ranking is paired top down and rematches are
// accepted.
func PairSwissRound(standings []Standing, history History) ([]Pairing, *string, error) {
	if len(standings) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 participants, got %d", ErrInvalidInput, len(standings))
	}
	if len(standings) > MaxParticipants {
		return nil, nil, fmt.Errorf("%w: at most %d participants, got %d", ErrInvalidInput, MaxParticipants, len(standings))
	}

	seen := make(map[string]struct{}, len(standings))
	for _, s := range standings {
		if s.ParticipantID == "" {
			return nil, nil, fmt.Errorf("%w: standing without participant id", ErrInvalidInput)
		}
		if _, ok := seen[s.ParticipantID]; ok {
			return nil, nil, fmt.Errorf("%w: duplicate participant %q", ErrInvalidInput, s.ParticipantID)
		}
		seen[s.ParticipantID] = struct{}{}
	}

	ranked := make([]Standing, len(standings))
	copy(ranked, standings)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].Seed < ranked[j].Seed
	})

	var bye *string
	if len(ranked)%2 == 1 {
		idx := len(ranked) - 1
		for i := len(ranked) - 1; i >= 0; i-- {
			if !ranked[i].HadBye {
				idx = i
				break
			}
		}
		bye = utils.Ptr(ranked[idx].ParticipantID)
		ranked = append(ranked[:idx:idx], ranked[idx+1:]...)
	}

	budget := swissSearchBudget
	if pairings, ok := pairWithoutRematches(ranked, history, &budget); ok {
		return pairings, bye, nil
	}
	return pairInOrder(ranked), bye, nil
}

const swissSearchBudget = 100_000

// Backtracks, so worst case is exponential. Each tried pairing spends one unit of budget.
func pairWithoutRematches(ranked []Standing, history History, budget *int) ([]Pairing, bool) {
	if len(ranked) == 0 {
		return []Pairing{}, true
	}

	top := ranked[0]
	for i := 1; i < len(ranked); i++ {
		if history.Played(top.ParticipantID, ranked[i].ParticipantID) {
			continue
		}
		if *budget <= 0 {
			return nil, false
		}
		*budget--

		rest := make([]Standing, 0, len(ranked)-2)
		rest = append(rest, ranked[1:i]...)
		rest = append(rest, ranked[i+1:]...)

		if pairs, ok := pairWithoutRematches(rest, history, budget); ok {
			pairing := Pairing{Participant1ID: top.ParticipantID, Participant2ID: ranked[i].ParticipantID}
			return append([]Pairing{pairing}, pairs...), true
		}
	}

	return nil, false
}

func pairInOrder(ranked []Standing) []Pairing {
	pairings := make([]Pairing, 0, len(ranked)/2)
	for i := 0; i+1 < len(ranked); i += 2 {
		pairings = append(pairings, Pairing{
			Participant1ID: ranked[i].ParticipantID,
			Participant2ID: ranked[i+1].ParticipantID,
		})
	}
	return pairings
}
