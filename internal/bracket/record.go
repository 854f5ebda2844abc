package bracket

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const MatchPending MatchStatus = "pending"

// MatchMetadata keeps the generation-time linkage next to the stored row until
// something resolves it into real match ids.
type MatchMetadata struct {
	TempID          string  `json:"temp_id"`
	NextMatchTempID *string `json:"next_match_temp_id,omitempty"`
	NextSlot        *int    `json:"next_slot,omitempty"`
	LoserNextTempID *string `json:"loser_next_temp_id,omitempty"`
	LoserNextSlot   *int    `json:"loser_next_slot,omitempty"`
}

func (m MatchMetadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *MatchMetadata) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = MatchMetadata{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
}

type MatchRecord struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TournamentID uuid.UUID `db:"tournament_id" json:"tournament_id"`
	StageID      uuid.UUID `db:"stage_id" json:"stage_id"`

	// Position in the generated sequence, used to rebuild the bracket in order
	SortOrder   int         `db:"sort_order" json:"sort_order"`
	BracketType BracketType `db:"bracket_type" json:"bracket_type"`
	RoundNumber int         `db:"round_number" json:"round_number"`
	MatchOrder  int         `db:"match_order" json:"match_order"`

	Participant1ID *uuid.UUID `db:"participant_1_id" json:"participant_1_id"`
	Participant2ID *uuid.UUID `db:"participant_2_id" json:"participant_2_id"`

	Status   MatchStatus   `db:"status" json:"status"`
	Metadata MatchMetadata `db:"metadata" json:"metadata"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewMatchRecord turns a generated descriptor into a row for the given stage.
func NewMatchRecord(stage *Stage, order int, m Match) (MatchRecord, error) {
	p1, err := parseParticipantID(m.Participant1ID)
	if err != nil {
		return MatchRecord{}, err
	}
	p2, err := parseParticipantID(m.Participant2ID)
	if err != nil {
		return MatchRecord{}, err
	}

	return MatchRecord{
		ID:             uuid.New(),
		TournamentID:   stage.TournamentID,
		StageID:        stage.ID,
		SortOrder:      order,
		BracketType:    m.BracketType,
		RoundNumber:    m.Round,
		MatchOrder:     m.MatchNum,
		Participant1ID: p1,
		Participant2ID: p2,
		Status:         MatchPending,
		Metadata: MatchMetadata{
			TempID:          m.TempID,
			NextMatchTempID: m.NextMatchTempID,
			NextSlot:        m.NextSlot,
			LoserNextTempID: m.LoserNextTempID,
			LoserNextSlot:   m.LoserNextSlot,
		},
	}, nil
}

func parseParticipantID(id *string) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return nil, fmt.Errorf("participant id %q: %w", *id, err)
	}
	return &parsed, nil
}
