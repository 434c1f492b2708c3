package api

import (
	"time"

	"github.com/vytor/powerdrill/internal/db"
	"github.com/vytor/powerdrill/internal/services"
)

// Server serves the read-only scoreboard over HTTP.
type Server struct {
	DB             *db.DB
	ScoreService   services.ScoreService
	RequestTimeout time.Duration
}

func NewServer(database *db.DB, scores services.ScoreService) *Server {
	return &Server{
		DB:             database,
		ScoreService:   scores,
		RequestTimeout: 10 * time.Second,
	}
}
