package bracket

import (
	"fmt"
	"strings"
)

type Format string

const (
	SingleElimination Format = "single_elimination"
	DoubleElimination Format = "double_elimination"
	RoundRobin        Format = "round_robin"
	Swiss             Format = "swiss"
)

func (f Format) Valid() bool {
	switch f {
	case SingleElimination, DoubleElimination, RoundRobin, Swiss:
		return true
	}
	return false
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Seeding decides which seeds share a round 1 match in elimination brackets.
type Seeding string

const (
	// Seeds in order: 1v2, 3v4, ...
	SeedingSequential Seeding = "sequential"
	// Folded so that 1 and 2 can only meet in the final: 1v8, 4v5, 2v7, 3v6, ...
	SeedingStandard Seeding = "standard"
)

func ParseSeeding(s string) (Seeding, error) {
	switch Seeding(strings.ToLower(strings.TrimSpace(s))) {
	case "", SeedingSequential:
		return SeedingSequential, nil
	case SeedingStandard:
		return SeedingStandard, nil
	}
	return "", fmt.Errorf("%w: unknown seeding %q", ErrInvalidInput, s)
}

const DefaultSwissRounds = 5

// Upper bounds on what a single Generate or PairSwissRound call accepts.
// Round robin grows quadratically so it gets its own, lower cap.
const (
	MaxParticipants           = 1024
	MaxRoundRobinParticipants = 128
	MaxSwissRounds            = 32
)

type Options struct {
	// Swiss only
	NumRounds int     `json:"num_rounds"`
	Seeding   Seeding `json:"seeding"`
}

func DefaultOptions() Options {
	return Options{NumRounds: DefaultSwissRounds, Seeding: SeedingSequential}
}
