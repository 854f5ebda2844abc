package bracket

import "github.com/google/uuid"

// Participant is the generator's view of an entrant: an opaque id and a seed (1 = top).
type Participant struct {
	ID   string `json:"id"`
	Seed int    `json:"seed"`
}

type Entry struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TournamentID uuid.UUID `db:"tournament_id" json:"tournament_id"`
	Name         string    `db:"name" json:"name"`
	Seed         int       `db:"seed" json:"seed"`
}

func (e Entry) Participant() Participant {
	return Participant{ID: e.ID.String(), Seed: e.Seed}
}
