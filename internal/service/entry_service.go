package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AdamBeresnev/bracket-forge/internal/bracket"
	"github.com/AdamBeresnev/bracket-forge/internal/logging"
	"github.com/AdamBeresnev/bracket-forge/internal/store"
	"github.com/AdamBeresnev/bracket-forge/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EntryService struct {
	db     *sqlx.DB
	store  *store.TournamentStore
	logger *slog.Logger
}

func NewEntryService(db *sqlx.DB, store *store.TournamentStore) *EntryService {
	return &EntryService{db: db, store: store, logger: logging.Component("entry_service")}
}

// AddEntries appends one entry per non-blank line of input to a draft tournament.
// Seeds continue after the highest existing seed.
func (s *EntryService) AddEntries(ctx context.Context, tournamentID uuid.UUID, input string) ([]bracket.Entry, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	tournament, err := s.store.GetTournamentTx(ctx, tx, tournamentID.String())
	if err != nil {
		return nil, err
	}
	if tournament.Status != bracket.TournamentDraft {
		return nil, fmt.Errorf("%w: status is %s", ErrAlreadyStarted, tournament.Status)
	}

	existing, err := s.store.GetEntriesTx(ctx, tx, tournamentID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	maxSeed := 0
	for _, e := range existing {
		maxSeed = max(maxSeed, e.Seed)
	}

	var entries []bracket.Entry
	for _, line := range strings.Split(input, "\n") {
		name := utils.StringOrNil(line)
		if name == nil {
			continue
		}
		entries = append(entries, bracket.Entry{
			ID:           uuid.New(),
			TournamentID: tournamentID,
			Name:         *name,
			Seed:         maxSeed + len(entries) + 1,
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entry names in input", ErrEmptyName)
	}

	if err := s.store.CreateEntries(ctx, tx, entries); err != nil {
		return nil, fmt.Errorf("failed to create entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("entries added", "tournament_id", tournamentID, "count", len(entries), "first_seed", maxSeed+1)
	return entries, nil
}
