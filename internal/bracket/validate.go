package bracket

import (
	"fmt"
	"sort"
)

// Validate checks the structural guarantees of a generated bracket: unique tempIDs, no
// links to matches outside the slice, rounds and match numbers counting up from 1
// without gaps within each bracket type, and at most one grand final.
// A failure means the generator is broken, not that the input was bad.
func Validate(matches []Match) error {
	ids := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := ids[m.TempID]; ok {
			return fmt.Errorf("%w: duplicate temp id %q", ErrStructure, m.TempID)
		}
		ids[m.TempID] = struct{}{}
	}

	grandFinals := 0
	positions := make(map[BracketType]map[int][]int)

	for _, m := range matches {
		if m.Round < 1 || m.MatchNum < 1 {
			return fmt.Errorf("%w: %s has round %d match %d", ErrStructure, m.TempID, m.Round, m.MatchNum)
		}
		if err := checkLink(ids, m.TempID, m.NextMatchTempID); err != nil {
			return err
		}
		if err := checkLink(ids, m.TempID, m.LoserNextTempID); err != nil {
			return err
		}
		if m.BracketType == Grand {
			grandFinals++
		}

		rounds, ok := positions[m.BracketType]
		if !ok {
			rounds = make(map[int][]int)
			positions[m.BracketType] = rounds
		}
		rounds[m.Round] = append(rounds[m.Round], m.MatchNum)
	}

	if grandFinals > 1 {
		return fmt.Errorf("%w: %d grand finals", ErrStructure, grandFinals)
	}

	for bt, rounds := range positions {
		roundNums := make([]int, 0, len(rounds))
		for r := range rounds {
			roundNums = append(roundNums, r)
		}
		sort.Ints(roundNums)

		for i, r := range roundNums {
			if r != i+1 {
				return fmt.Errorf("%w: %s bracket skips round %d", ErrStructure, bt, i+1)
			}
			nums := rounds[r]
			sort.Ints(nums)
			for j, n := range nums {
				if n != j+1 {
					return fmt.Errorf("%w: %s round %d has gap at match %d", ErrStructure, bt, r, j+1)
				}
			}
		}
	}

	return nil
}

func checkLink(ids map[string]struct{}, from string, to *string) error {
	if to == nil {
		return nil
	}
	if *to == from {
		return fmt.Errorf("%w: %s links to itself", ErrStructure, from)
	}
	if _, ok := ids[*to]; !ok {
		return fmt.Errorf("%w: %s links to missing match %q", ErrStructure, from, *to)
	}
	return nil
}
