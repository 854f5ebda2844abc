package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/AdamBeresnev/bracket-forge/internal/config"
	"github.com/AdamBeresnev/bracket-forge/internal/db"
	"github.com/AdamBeresnev/bracket-forge/internal/logging"
	"github.com/AdamBeresnev/bracket-forge/internal/service"
	"github.com/AdamBeresnev/bracket-forge/internal/store"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.Log)

	database, err := db.InitDB(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB, cfg.Database.Driver, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	tournamentStore := store.NewTournamentStore(database)
	tournaments := service.NewTournamentService(database, tournamentStore)
	entries := service.NewEntryService(database, tournamentStore)
	router := newRouter(tournaments, entries, cfg.SwissDefaultRounds)

	slog.Info("server starting", "addr", cfg.Addr, "db_driver", cfg.Database.Driver)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}
