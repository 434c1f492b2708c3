package root

import (
	"github.com/vytor/powerdrill/internal/db"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/repository"
	"github.com/vytor/powerdrill/internal/repository/sqlite"
	"github.com/vytor/powerdrill/internal/services"
)

func openDB() (*db.DB, func(), error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		logger.Debug("closing database connection")
		_ = database.Close()
	}
	return database, cleanup, nil
}

func openScores() (repository.HighScoreRepository, services.ScoreService, func(), error) {
	database, cleanup, err := openDB()
	if err != nil {
		return nil, nil, nil, err
	}
	repo := sqlite.NewHighScoreRepository(database)
	return repo, services.NewScoreService(repo), cleanup, nil
}
