package bracket

type BracketType string

const (
	Winners BracketType = "winners"
	Losers  BracketType = "losers"
	Grand   BracketType = "grand"
)

// Match describes one slot in a generated bracket. TempIDs are only unique within a
// single Generate call; callers resolve them into stored ids themselves.
type Match struct {
	Round       int         `json:"round"`
	MatchNum    int         `json:"match_num"`
	TempID      string      `json:"temp_id"`
	BracketType BracketType `json:"bracket_type"`

	// Where the winner goes, nil for terminal matches
	NextMatchTempID *string `json:"next_match_temp_id"`
	NextSlot        *int    `json:"next_slot,omitempty"`

	// Double elimination only: where the loser of a winners bracket match drops to
	LoserNextTempID *string `json:"loser_next_temp_id,omitempty"`
	LoserNextSlot   *int    `json:"loser_next_slot,omitempty"`

	// Only known up front for round 1 of elimination brackets and for round robin.
	// A nil id in round 1 is a bye.
	Participant1ID *string `json:"participant_1_id,omitempty"`
	Participant2ID *string `json:"participant_2_id,omitempty"`
}

func (m *Match) IsTerminal() bool {
	return m.NextMatchTempID == nil
}
