package store

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/bracket-forge/internal/bracket"
	"github.com/jmoiron/sqlx"
)

type TournamentStore struct {
	db *sqlx.DB
}

const (
	createTournamentQuery = `INSERT INTO tournaments (id, name, status, format)
		VALUES (:id, :name, :status, :format)`
	createEntriesQuery = `INSERT INTO entries (id, tournament_id, name, seed)
		VALUES (:id, :tournament_id, :name, :seed)`
	createStageQuery = `INSERT INTO stages (id, tournament_id, format, match_count)
		VALUES (:id, :tournament_id, :format, :match_count)`
	createMatchesQuery = `INSERT INTO matches (id, tournament_id, stage_id, sort_order, bracket_type, round_number, match_order, participant_1_id, participant_2_id, status, metadata)
		VALUES (:id, :tournament_id, :stage_id, :sort_order, :bracket_type, :round_number, :match_order, :participant_1_id, :participant_2_id, :status, :metadata)`

	getTournamentQuery          = "SELECT * FROM tournaments WHERE id = ?"
	listTournamentsQuery        = "SELECT * FROM tournaments ORDER BY created_at DESC, name ASC"
	getEntriesQuery             = "SELECT * FROM entries WHERE tournament_id = ? ORDER BY seed ASC"
	getStagesQuery              = "SELECT * FROM stages WHERE tournament_id = ? ORDER BY created_at ASC"
	getMatchesQuery             = "SELECT * FROM matches WHERE tournament_id = ? ORDER BY stage_id, sort_order ASC"
	updateTournamentStatusQuery = "UPDATE tournaments SET status = ? WHERE id = ?"
)

// Rows per multi-row INSERT. A match row binds 11 values, so this stays well below the
// bound variable limits of SQLite (32766) and Postgres (65535).
const insertBatchSize = 500

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.QueryerContext
	Rebind(string) string
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) CreateTournament(ctx context.Context, tx *sqlx.Tx, tournament *bracket.Tournament) error {
	_, err := tx.NamedExecContext(ctx, createTournamentQuery, tournament)
	return err
}

func (s *TournamentStore) CreateEntries(ctx context.Context, tx *sqlx.Tx, entries []bracket.Entry) error {
	return insertBatched(ctx, tx, createEntriesQuery, entries)
}

func (s *TournamentStore) CreateStage(ctx context.Context, tx *sqlx.Tx, stage *bracket.Stage) error {
	_, err := tx.NamedExecContext(ctx, createStageQuery, stage)
	return err
}

func (s *TournamentStore) CreateMatches(ctx context.Context, tx *sqlx.Tx, matches []bracket.MatchRecord) error {
	return insertBatched(ctx, tx, createMatchesQuery, matches)
}

func (s *TournamentStore) UpdateTournamentStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status bracket.TournamentStatus) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(updateTournamentStatusQuery), status, id)
	return err
}

func (s *TournamentStore) GetTournament(ctx context.Context, id string) (*bracket.Tournament, error) {
	return getTournament(ctx, s.db, id)
}

func (s *TournamentStore) GetTournamentTx(ctx context.Context, tx *sqlx.Tx, id string) (*bracket.Tournament, error) {
	return getTournament(ctx, tx, id)
}

func (s *TournamentStore) ListTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	var tournaments []bracket.Tournament
	err := sqlx.SelectContext(ctx, s.db, &tournaments, listTournamentsQuery)
	return tournaments, err
}

func (s *TournamentStore) GetEntries(ctx context.Context, tournamentID string) ([]bracket.Entry, error) {
	return getEntries(ctx, s.db, tournamentID)
}

func (s *TournamentStore) GetEntriesTx(ctx context.Context, tx *sqlx.Tx, tournamentID string) ([]bracket.Entry, error) {
	return getEntries(ctx, tx, tournamentID)
}

func (s *TournamentStore) GetStages(ctx context.Context, tournamentID string) ([]bracket.Stage, error) {
	var stages []bracket.Stage
	err := sqlx.SelectContext(ctx, s.db, &stages, s.db.Rebind(getStagesQuery), tournamentID)
	return stages, err
}

func (s *TournamentStore) GetMatches(ctx context.Context, tournamentID string) ([]bracket.MatchRecord, error) {
	var matches []bracket.MatchRecord
	err := sqlx.SelectContext(ctx, s.db, &matches, s.db.Rebind(getMatchesQuery), tournamentID)
	return matches, err
}

func getTournament(ctx context.Context, q queryer, id string) (*bracket.Tournament, error) {
	var tournament bracket.Tournament
	if err := sqlx.GetContext(ctx, q, &tournament, q.Rebind(getTournamentQuery), id); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func getEntries(ctx context.Context, q queryer, tournamentID string) ([]bracket.Entry, error) {
	var entries []bracket.Entry
	err := sqlx.SelectContext(ctx, q, &entries, q.Rebind(getEntriesQuery), tournamentID)
	return entries, err
}

func insertBatched[T any](ctx context.Context, tx *sqlx.Tx, query string, rows []T) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start, end-1, err)
		}
	}
	return nil
}
