package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/AdamBeresnev/bracket-forge/internal/bracket"
	"github.com/AdamBeresnev/bracket-forge/internal/httputil"
	"github.com/AdamBeresnev/bracket-forge/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type optionsRequest struct {
	NumRounds *int   `json:"num_rounds"`
	Seeding   string `json:"seeding"`
}

func (o optionsRequest) options(defaultRounds int) (*bracket.Options, error) {
	seeding, err := bracket.ParseSeeding(o.Seeding)
	if err != nil {
		return nil, err
	}
	rounds := defaultRounds
	if o.NumRounds != nil {
		rounds = *o.NumRounds
	}
	return &bracket.Options{NumRounds: rounds, Seeding: seeding}, nil
}

type previewRequest struct {
	optionsRequest
	Format       string                `json:"format"`
	Participants []bracket.Participant `json:"participants"`
	// Shortcut for count-only previews, seeds 1..n without ids
	ParticipantCount int `json:"participant_count"`
}

type previewResponse struct {
	Format  bracket.Format  `json:"format"`
	Matches []bracket.Match `json:"matches"`
	Layout  bracket.Layout  `json:"layout"`
}

type swissPairingRequest struct {
	Standings []bracket.Standing `json:"standings"`
	History   [][2]string        `json:"history"`
}

type swissPairingResponse struct {
	Pairings []bracket.Pairing `json:"pairings"`
	Bye      *string           `json:"bye"`
}

type createTournamentRequest struct {
	Name         string                     `json:"name"`
	Format       string                     `json:"format"`
	Participants []service.ParticipantInput `json:"participants"`
}

func newRouter(tournaments *service.TournamentService, entries *service.EntryService, swissDefaultRounds int) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Post("/brackets/preview", func(w http.ResponseWriter, r *http.Request) {
		var req previewRequest
		if err := httputil.ReadJSON(w, r, &req); err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}

		format, err := bracket.ParseFormat(req.Format)
		if err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}
		opts, err := req.options(swissDefaultRounds)
		if err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}

		if req.ParticipantCount > bracket.MaxParticipants {
			httputil.BadRequest(w, fmt.Sprintf("participant_count must be at most %d", bracket.MaxParticipants), nil)
			return
		}

		participants := req.Participants
		if len(participants) == 0 && req.ParticipantCount > 0 {
			participants = make([]bracket.Participant, req.ParticipantCount)
			for i := range participants {
				participants[i].Seed = i + 1
			}
		}

		matches, err := bracket.Generate(format, participants, opts)
		if err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, previewResponse{
			Format:  format,
			Matches: matches,
			Layout:  bracket.NewLayout(matches),
		})
	})

	r.Post("/brackets/swiss/pairings", func(w http.ResponseWriter, r *http.Request) {
		var req swissPairingRequest
		if err := httputil.ReadJSON(w, r, &req); err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}

		history := bracket.History{}
		for _, pair := range req.History {
			history.Add(pair[0], pair[1])
		}

		pairings, bye, err := bracket.PairSwissRound(req.Standings, history)
		if err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, swissPairingResponse{Pairings: pairings, Bye: bye})
	})

	r.Get("/tournaments", func(w http.ResponseWriter, r *http.Request) {
		list, err := tournaments.ListTournaments(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to list tournaments", err)
			return
		}
		if list == nil {
			list = []bracket.Tournament{}
		}
		httputil.WriteJSON(w, http.StatusOK, list)
	})

	r.Post("/tournaments", func(w http.ResponseWriter, r *http.Request) {
		var req createTournamentRequest
		if err := httputil.ReadJSON(w, r, &req); err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}

		format, err := bracket.ParseFormat(req.Format)
		if err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}

		id, err := tournaments.CreateTournament(r.Context(), req.Name, format, req.Participants)
		if err != nil {
			writeServiceError(w, "Failed to create tournament", err)
			return
		}
		httputil.WriteJSON(w, http.StatusCreated, map[string]uuid.UUID{"id": id})
	})

	r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		data, err := tournaments.GetTournamentData(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, "Failed to get tournament", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, data)
	})

	r.Post("/tournaments/{id}/entries", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid tournament ID", err)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			httputil.BadRequest(w, "Failed to read body", err)
			return
		}

		added, err := entries.AddEntries(r.Context(), id, string(body))
		if err != nil {
			writeServiceError(w, "Failed to add entries", err)
			return
		}
		httputil.WriteJSON(w, http.StatusCreated, added)
	})

	r.Post("/tournaments/{id}/start", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid tournament ID", err)
			return
		}

		var req optionsRequest
		if r.ContentLength != 0 {
			if err := httputil.ReadJSON(w, r, &req); err != nil {
				httputil.BadRequest(w, err.Error(), err)
				return
			}
		}
		opts, err := req.options(swissDefaultRounds)
		if err != nil {
			httputil.BadRequest(w, err.Error(), err)
			return
		}

		stage, err := tournaments.StartTournament(r.Context(), id, opts)
		if err != nil {
			writeServiceError(w, "Failed to start tournament", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, stage)
	})

	return r
}

func writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		httputil.NotFound(w, "Tournament not found", err)
	case errors.Is(err, service.ErrAlreadyStarted):
		httputil.Conflict(w, err.Error(), err)
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrNotEnoughParticipants),
		errors.Is(err, bracket.ErrInvalidInput),
		errors.Is(err, bracket.ErrUnknownFormat):
		httputil.BadRequest(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}
