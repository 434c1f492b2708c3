package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/powerdrill/internal/db"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/repository"
	"github.com/vytor/powerdrill/internal/repository/sqlite"
	"github.com/vytor/powerdrill/internal/testutil"
)

type HighScoreRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.HighScoreRepository
}

func (s *HighScoreRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewHighScoreRepository(s.db)
}

func (s *HighScoreRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *HighScoreRepositorySuite) TestList_Empty() {
	entries, err := s.repo.List(context.Background(), models.VariantSquare)
	s.Require().NoError(err)
	s.Assert().Empty(entries)
	s.Assert().NotNil(entries)
}

func (s *HighScoreRepositorySuite) TestReplaceAndList_PreservesOrder() {
	ctx := context.Background()
	day := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	entries := []models.HighScoreEntry{
		testutil.Entry(9, models.DifficultyHard, day),
		testutil.Entry(4, models.DifficultyEasy, day.AddDate(0, 0, 1)),
		testutil.Entry(4, models.DifficultyMedium, day.AddDate(0, 0, 2)),
	}
	s.Require().NoError(s.repo.Replace(ctx, models.VariantSquare, entries))

	got, err := s.repo.List(ctx, models.VariantSquare)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Assert().Equal(9, got[0].Score)
	s.Assert().Equal(models.DifficultyEasy, got[1].Difficulty)
	s.Assert().Equal(models.DifficultyMedium, got[2].Difficulty)
	s.Assert().Equal(models.ModeDirect, got[0].Mode)
	s.Assert().True(day.Equal(got[0].RecordedAt))
}

func (s *HighScoreRepositorySuite) TestReplace_OverwritesPreviousList() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.repo.Replace(ctx, models.VariantCube, []models.HighScoreEntry{
		testutil.Entry(1, models.DifficultyEasy, now),
		testutil.Entry(2, models.DifficultyEasy, now),
	}))
	s.Require().NoError(s.repo.Replace(ctx, models.VariantCube, []models.HighScoreEntry{
		testutil.Entry(7, models.DifficultyHard, now),
	}))

	got, err := s.repo.List(ctx, models.VariantCube)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal(7, got[0].Score)
}

func (s *HighScoreRepositorySuite) TestVariantsAreIsolated() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.repo.Replace(ctx, models.VariantSquare, []models.HighScoreEntry{testutil.Entry(3, models.DifficultyEasy, now)}))
	s.Require().NoError(s.repo.Replace(ctx, models.VariantCube, []models.HighScoreEntry{testutil.Entry(5, models.DifficultyEasy, now)}))

	s.Require().NoError(s.repo.Clear(ctx, models.VariantSquare))

	square, err := s.repo.List(ctx, models.VariantSquare)
	s.Require().NoError(err)
	s.Assert().Empty(square)

	cube, err := s.repo.List(ctx, models.VariantCube)
	s.Require().NoError(err)
	s.Assert().Len(cube, 1)
}

func TestHighScoreRepositorySuite(t *testing.T) {
	suite.Run(t, new(HighScoreRepositorySuite))
}
