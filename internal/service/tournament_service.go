package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AdamBeresnev/bracket-forge/internal/bracket"
	"github.com/AdamBeresnev/bracket-forge/internal/logging"
	"github.com/AdamBeresnev/bracket-forge/internal/store"
	"github.com/AdamBeresnev/bracket-forge/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyName             = errors.New("tournament name is required")
	ErrNotEnoughParticipants = errors.New("not enough participants")
	ErrAlreadyStarted        = errors.New("tournament already started")
)

type TournamentService struct {
	db     *sqlx.DB
	store  *store.TournamentStore
	logger *slog.Logger
}

func NewTournamentService(db *sqlx.DB, store *store.TournamentStore) *TournamentService {
	return &TournamentService{db: db, store: store, logger: logging.Component("tournament_service")}
}

type ParticipantInput struct {
	Name string `json:"name"`
}

type TournamentData struct {
	Tournament *bracket.Tournament   `json:"tournament"`
	Entries    []bracket.Entry       `json:"entries"`
	Stages     []bracket.Stage       `json:"stages"`
	Matches    []bracket.MatchRecord `json:"matches"`
}

func (s *TournamentService) GetTournamentData(ctx context.Context, id string) (*TournamentData, error) {
	data := &TournamentData{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tournament, err := s.store.GetTournament(gCtx, id)
		data.Tournament = tournament
		return err
	})
	g.Go(func() error {
		entries, err := s.store.GetEntries(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get entries: %w", err)
		}
		data.Entries = entries
		return nil
	})
	g.Go(func() error {
		stages, err := s.store.GetStages(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get stages: %w", err)
		}
		data.Stages = stages
		return nil
	})
	g.Go(func() error {
		matches, err := s.store.GetMatches(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get matches: %w", err)
		}
		data.Matches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	return s.store.ListTournaments(ctx)
}

// CreateTournament stores a draft tournament. Participants are seeded in input order,
// blank names are skipped.
func (s *TournamentService) CreateTournament(ctx context.Context, name string, format bracket.Format, inputs []ParticipantInput) (uuid.UUID, error) {
	trimmed := utils.StringOrNil(name)
	if trimmed == nil {
		return uuid.Nil, ErrEmptyName
	}
	if !format.Valid() {
		return uuid.Nil, fmt.Errorf("%w: %q", bracket.ErrUnknownFormat, format)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	tournamentID := uuid.New()
	tournament := bracket.Tournament{
		ID:     tournamentID,
		Name:   *trimmed,
		Status: bracket.TournamentDraft,
		Format: format,
	}

	if err := s.store.CreateTournament(ctx, tx, &tournament); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	var entries []bracket.Entry
	for _, input := range inputs {
		entryName := utils.StringOrNil(input.Name)
		if entryName == nil {
			continue
		}
		entries = append(entries, bracket.Entry{
			ID:           uuid.New(),
			TournamentID: tournamentID,
			Name:         *entryName,
			Seed:         len(entries) + 1,
		})
	}

	if err := s.store.CreateEntries(ctx, tx, entries); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("tournament created", "tournament_id", tournamentID, "format", format, "entries", len(entries))
	return tournamentID, nil
}

// StartTournament generates the bracket for a draft tournament, stores one match row per
// generated match and marks the tournament active, all in one transaction.
// A nil opts uses bracket.DefaultOptions.
func (s *TournamentService) StartTournament(ctx context.Context, id uuid.UUID, opts *bracket.Options) (*bracket.Stage, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	tournament, err := s.store.GetTournamentTx(ctx, tx, id.String())
	if err != nil {
		return nil, err
	}
	if tournament.Status != bracket.TournamentDraft {
		return nil, fmt.Errorf("%w: status is %s", ErrAlreadyStarted, tournament.Status)
	}

	entries, err := s.store.GetEntriesTx(ctx, tx, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	if len(entries) < 2 {
		return nil, fmt.Errorf("%w: need at least 2, have %d", ErrNotEnoughParticipants, len(entries))
	}

	participants := make([]bracket.Participant, len(entries))
	for i, e := range entries {
		participants[i] = e.Participant()
	}

	matches, err := bracket.Generate(tournament.Format, participants, opts)
	if err != nil {
		return nil, err
	}
	if err := bracket.Validate(matches); err != nil {
		s.logger.Error("generated bracket failed validation", "tournament_id", id, "format", tournament.Format, "error", err)
		return nil, err
	}

	stage := &bracket.Stage{
		ID:           uuid.New(),
		TournamentID: id,
		Format:       tournament.Format,
		MatchCount:   len(matches),
	}

	records := make([]bracket.MatchRecord, 0, len(matches))
	for i, m := range matches {
		record, err := bracket.NewMatchRecord(stage, i, m)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := s.store.CreateStage(ctx, tx, stage); err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}
	if err := s.store.CreateMatches(ctx, tx, records); err != nil {
		return nil, fmt.Errorf("failed to create matches: %w", err)
	}
	if err := s.store.UpdateTournamentStatusTx(ctx, tx, id.String(), bracket.TournamentActive); err != nil {
		return nil, fmt.Errorf("failed to update tournament status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("tournament started",
		"tournament_id", id,
		"stage_id", stage.ID,
		"format", tournament.Format,
		"entries", len(entries),
		"matches", len(matches),
	)
	return stage, nil
}
