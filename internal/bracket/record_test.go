package bracket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchRecord(t *testing.T) {
	p1 := uuid.New()
	participants := []Participant{
		{ID: p1.String(), Seed: 1},
		{ID: uuid.NewString(), Seed: 2},
		{ID: uuid.NewString(), Seed: 3},
	}
	matches, err := Generate(DoubleElimination, participants, nil)
	require.NoError(t, err)

	stage := &Stage{ID: uuid.New(), TournamentID: uuid.New(), Format: DoubleElimination}

	record, err := NewMatchRecord(stage, 0, matches[0])
	require.NoError(t, err)

	assert.Equal(t, stage.ID, record.StageID)
	assert.Equal(t, stage.TournamentID, record.TournamentID)
	assert.Equal(t, MatchPending, record.Status)
	assert.Equal(t, Winners, record.BracketType)
	assert.Equal(t, 1, record.RoundNumber)
	assert.Equal(t, 1, record.MatchOrder)
	require.NotNil(t, record.Participant1ID)
	assert.Equal(t, p1, *record.Participant1ID)

	assert.Equal(t, "W-R1-M1", record.Metadata.TempID)
	assert.Equal(t, "W-R2-M1", *record.Metadata.NextMatchTempID)
	assert.Equal(t, "L-R1-M1", *record.Metadata.LoserNextTempID)

	// Seed 3 meets the padding slot
	bye, err := NewMatchRecord(stage, 1, matches[1])
	require.NoError(t, err)
	assert.NotNil(t, bye.Participant1ID)
	assert.Nil(t, bye.Participant2ID)
}

func TestNewMatchRecordRejectsNonUUIDParticipant(t *testing.T) {
	matches, err := Generate(SingleElimination, makeParticipants(2), nil)
	require.NoError(t, err)

	_, err = NewMatchRecord(&Stage{ID: uuid.New()}, 0, matches[0])
	assert.Error(t, err)
}

func TestMatchMetadataScan(t *testing.T) {
	var m MatchMetadata
	require.NoError(t, m.Scan([]byte(`{"temp_id":"L-R2-M1","next_match_temp_id":"GF-R1-M1","next_slot":2}`)))

	assert.Equal(t, "L-R2-M1", m.TempID)
	assert.Equal(t, "GF-R1-M1", *m.NextMatchTempID)
	assert.Equal(t, 2, *m.NextSlot)
	assert.Nil(t, m.LoserNextTempID)

	assert.Error(t, m.Scan(42))
}
