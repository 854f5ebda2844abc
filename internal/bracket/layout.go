package bracket

import "sort"

type Round struct {
	Number  int     `json:"number"`
	Matches []Match `json:"matches"`
}

// Layout groups a generated bracket by side and round for display.
type Layout struct {
	Winners []Round `json:"winners"`
	Losers  []Round `json:"losers,omitempty"`
	Finals  []Round `json:"finals,omitempty"`
}

func NewLayout(matches []Match) Layout {
	winners := make(map[int][]Match)
	losers := make(map[int][]Match)
	finals := make(map[int][]Match)

	for _, m := range matches {
		switch m.BracketType {
		case Winners:
			winners[m.Round] = append(winners[m.Round], m)
		case Losers:
			losers[m.Round] = append(losers[m.Round], m)
		case Grand:
			finals[m.Round] = append(finals[m.Round], m)
		}
	}

	return Layout{
		Winners: sortRounds(winners),
		Losers:  sortRounds(losers),
		Finals:  sortRounds(finals),
	}
}

func sortRounds(rounds map[int][]Match) []Round {
	if len(rounds) == 0 {
		return nil
	}

	nums := make([]int, 0, len(rounds))
	for r := range rounds {
		nums = append(nums, r)
	}
	sort.Ints(nums)

	out := make([]Round, 0, len(nums))
	for _, r := range nums {
		ms := rounds[r]
		sort.Slice(ms, func(i, j int) bool {
			return ms[i].MatchNum < ms[j].MatchNum
		})
		out = append(out, Round{Number: r, Matches: ms})
	}
	return out
}
