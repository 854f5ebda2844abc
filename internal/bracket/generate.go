package bracket

import (
	"fmt"
	"math"
	"sort"

	"github.com/AdamBeresnev/bracket-forge/internal/utils"
)

const (
	winnersPrefix    = "W"
	losersPrefix     = "L"
	grandFinalPrefix = "GF"
	roundRobinPrefix = "RR"
	swissPrefix      = "SW"
)

// Generate builds every match of a bracket for the given format. The output is fully
// determined by the inputs: the same participants, format and options always yield the
// same tempIDs and linkage. Participants are placed by seed, lowest first; ties keep
// input order.
//
// Elimination brackets are padded to the next power of two. The padding is never turned
// into bye matches, the missing slots just stay empty in round 1.
func Generate(format Format, participants []Participant, opts *Options) ([]Match, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Seeding == "" {
		o.Seeding = SeedingSequential
	}
	if o.Seeding != SeedingSequential && o.Seeding != SeedingStandard {
		return nil, fmt.Errorf("%w: unknown seeding %q", ErrInvalidInput, o.Seeding)
	}

	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 participants, got %d", ErrInvalidInput, len(participants))
	}
	if len(participants) > MaxParticipants {
		return nil, fmt.Errorf("%w: at most %d participants, got %d", ErrInvalidInput, MaxParticipants, len(participants))
	}

	ordered, err := orderBySeed(participants)
	if err != nil {
		return nil, err
	}

	switch format {
	case SingleElimination:
		return generateSingleElim(ordered, o.Seeding), nil
	case DoubleElimination:
		return generateDoubleElim(ordered, o.Seeding), nil
	case RoundRobin:
		if len(ordered) > MaxRoundRobinParticipants {
			return nil, fmt.Errorf("%w: round robin takes at most %d participants, got %d", ErrInvalidInput, MaxRoundRobinParticipants, len(ordered))
		}
		return generateRoundRobin(ordered), nil
	default:
		if o.NumRounds <= 0 {
			return nil, fmt.Errorf("%w: swiss needs a positive round count, got %d", ErrInvalidInput, o.NumRounds)
		}
		if o.NumRounds > MaxSwissRounds {
			return nil, fmt.Errorf("%w: swiss takes at most %d rounds, got %d", ErrInvalidInput, MaxSwissRounds, o.NumRounds)
		}
		return generateSwiss(len(ordered), o.NumRounds), nil
	}
}

func orderBySeed(participants []Participant) ([]Participant, error) {
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if p.ID == "" {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate participant %q", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	ordered := make([]Participant, len(participants))
	copy(ordered, participants)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Seed < ordered[j].Seed
	})
	return ordered, nil
}

// Gets the nearest power of 2 while rounding up, so with input 5 it returns 8 and so on
func calcBracketSize(count int) int {
	if count <= 0 {
		return 0
	}

	// Log2 -> Ceil -> 2^^log2 to round up
	log2 := math.Ceil(math.Log2(float64(count)))
	return int(math.Pow(2, log2))
}

func roundsFor(bracketSize int) int {
	if bracketSize <= 1 {
		return 0
	}
	return int(math.Log2(float64(bracketSize)))
}

func tempID(prefix string, round, match int) string {
	return fmt.Sprintf("%s-R%d-M%d", prefix, round, match)
}

// participantAt returns the id of the participant at 0-based rank idx, nil for padding.
func participantAt(ordered []Participant, idx int) *string {
	if idx < 0 || idx >= len(ordered) || ordered[idx].ID == "" {
		return nil
	}
	return utils.Ptr(ordered[idx].ID)
}
