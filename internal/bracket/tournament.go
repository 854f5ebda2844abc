package bracket

import (
	"time"

	"github.com/google/uuid"
)

type TournamentStatus string

const (
	TournamentDraft  TournamentStatus = "draft"
	TournamentActive TournamentStatus = "active"
)

type Tournament struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	Name      string           `db:"name" json:"name"`
	Status    TournamentStatus `db:"status" json:"status"`
	Format    Format           `db:"format" json:"format"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// Stage is one generated bracket of a tournament.
type Stage struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TournamentID uuid.UUID `db:"tournament_id" json:"tournament_id"`
	Format       Format    `db:"format" json:"format"`
	MatchCount   int       `db:"match_count" json:"match_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
