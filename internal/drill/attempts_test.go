package drill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/powerdrill/internal/drill"
	"github.com/vytor/powerdrill/internal/models"
)

func TestAttemptLog_FinalizeEmpty(t *testing.T) {
	var log drill.AttemptLog
	got := log.Finalize()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAttemptLog_FinalizeKeepsSlowestPerPrompt(t *testing.T) {
	var log drill.AttemptLog
	log.Append(models.AttemptRecord{PromptText: "7²", AnswerValue: 49, TimeSeconds: 1.2})
	log.Append(models.AttemptRecord{PromptText: "12²", AnswerValue: 144, TimeSeconds: 3.5})
	log.Append(models.AttemptRecord{PromptText: "7²", AnswerValue: 49, TimeSeconds: 4.75})
	log.Append(models.AttemptRecord{PromptText: "3²", AnswerValue: 9, TimeSeconds: 0.8})
	log.Append(models.AttemptRecord{PromptText: "7²", AnswerValue: 49, TimeSeconds: 2})

	got := log.Finalize()

	assert.Equal(t, []models.AttemptRecord{
		{PromptText: "7²", AnswerValue: 49, TimeSeconds: 4.75},
		{PromptText: "12²", AnswerValue: 144, TimeSeconds: 3.5},
		{PromptText: "3²", AnswerValue: 9, TimeSeconds: 0.8},
	}, got)
	assert.Equal(t, 5, log.Len(), "finalize does not consume the log")
}

func TestAttemptLog_TiesKeepFirstSeenOrder(t *testing.T) {
	var log drill.AttemptLog
	log.Append(models.AttemptRecord{PromptText: "b", TimeSeconds: 1})
	log.Append(models.AttemptRecord{PromptText: "a", TimeSeconds: 1})
	log.Append(models.AttemptRecord{PromptText: "c", TimeSeconds: 1})

	got := log.Finalize()

	assert.Equal(t, "b", got[0].PromptText)
	assert.Equal(t, "a", got[1].PromptText)
	assert.Equal(t, "c", got[2].PromptText)
}

func TestAttemptLog_Reset(t *testing.T) {
	var log drill.AttemptLog
	log.Append(models.AttemptRecord{PromptText: "2²"})
	log.Reset()
	assert.Zero(t, log.Len())
}
