package drill_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/powerdrill/internal/drill"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/repository/sqlite"
	"github.com/vytor/powerdrill/internal/testutil"
	"github.com/vytor/powerdrill/internal/testutil/mocks"
)

var day = time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

func TestRank_SortsAndTruncates(t *testing.T) {
	var list []models.HighScoreEntry
	for _, score := range []int{3, 9, 1, 7, 5, 8} {
		list = drill.Rank(list, testutil.Entry(score, models.DifficultyEasy, day))
	}

	require.Len(t, list, drill.MaxHighScores)
	scores := make([]int, len(list))
	for i, e := range list {
		scores[i] = e.Score
	}
	assert.Equal(t, []int{9, 8, 7, 5, 3}, scores)
}

func TestRank_TiesKeepInsertionOrder(t *testing.T) {
	older := testutil.Entry(4, models.DifficultyEasy, day)
	newer := testutil.Entry(4, models.DifficultyHard, day.AddDate(0, 0, 1))

	list := drill.Rank([]models.HighScoreEntry{older}, newer)

	assert.Equal(t, models.DifficultyEasy, list[0].Difficulty)
	assert.Equal(t, models.DifficultyHard, list[1].Difficulty)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	list := []models.HighScoreEntry{testutil.Entry(1, models.DifficultyEasy, day)}
	_ = drill.Rank(list, testutil.Entry(10, models.DifficultyEasy, day))
	assert.Equal(t, 1, list[0].Score)
}

func TestRank_RandomSequencesStayBoundedAndSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var list []models.HighScoreEntry
	for i := 0; i < 300; i++ {
		list = drill.Rank(list, testutil.Entry(rng.Intn(40), models.DifficultyMedium, day))
		require.LessOrEqual(t, len(list), drill.MaxHighScores)
		for j := 1; j < len(list); j++ {
			require.GreaterOrEqual(t, list[j-1].Score, list[j].Score)
		}
	}
}

func TestScoreBoard_LoadRecordAndPersist(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	defer testutil.MustClose(t, database)
	repo := sqlite.NewHighScoreRepository(database)

	require.NoError(t, repo.Replace(ctx, models.VariantSquare, []models.HighScoreEntry{
		testutil.Entry(6, models.DifficultyEasy, day),
	}))

	board := drill.NewScoreBoard(repo)
	require.NoError(t, board.Load(ctx))
	assert.Len(t, board.Top(models.VariantSquare), 1)
	assert.Empty(t, board.Top(models.VariantCube))

	top, err := board.Record(ctx, models.VariantSquare, testutil.Entry(8, models.DifficultyHard, day))
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 8, top[0].Score)

	// A fresh board sees what the first one wrote.
	reloaded := drill.NewScoreBoard(repo)
	require.NoError(t, reloaded.Load(ctx))
	got := reloaded.Top(models.VariantSquare)
	require.Len(t, got, 2)
	assert.Equal(t, 8, got[0].Score)
	assert.Equal(t, models.DifficultyHard, got[0].Difficulty)
	assert.True(t, day.Equal(got[0].RecordedAt))
}

func TestScoreBoard_CustomNeverRecorded(t *testing.T) {
	repo := new(mocks.MockHighScoreRepository)
	board := drill.NewScoreBoard(repo)

	top, err := board.Record(context.Background(), models.VariantCube, testutil.Entry(99, models.DifficultyCustom, day))

	require.NoError(t, err)
	assert.Empty(t, top)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func TestScoreBoard_SaveFailureKeepsPreviousList(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockHighScoreRepository)
	repo.On("List", mock.Anything, models.VariantSquare).Return([]models.HighScoreEntry{testutil.Entry(2, models.DifficultyEasy, day)}, nil)
	repo.On("List", mock.Anything, models.VariantCube).Return([]models.HighScoreEntry{}, nil)
	repo.On("Replace", mock.Anything, models.VariantSquare, mock.Anything).Return(errors.New("disk full"))

	board := drill.NewScoreBoard(repo)
	require.NoError(t, board.Load(ctx))

	top, err := board.Record(ctx, models.VariantSquare, testutil.Entry(5, models.DifficultyEasy, day))

	assert.Error(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].Score)
	repo.AssertExpectations(t)
}

func TestScoreBoard_LoadError(t *testing.T) {
	repo := new(mocks.MockHighScoreRepository)
	repo.On("List", mock.Anything, models.VariantSquare).Return(nil, errors.New("locked"))

	err := drill.NewScoreBoard(repo).Load(context.Background())
	assert.EqualError(t, err, "locked")
}
