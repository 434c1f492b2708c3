package drill

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/vytor/powerdrill/internal/models"
)

// State is the lifecycle position of a game.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome describes what a keystroke did to a running session.
type Outcome int

const (
	// OutcomeIgnored: no running session, or the solved question is still on
	// screen waiting for its successor.
	OutcomeIgnored Outcome = iota
	// OutcomeInvalid: the key was not a digit; nothing changed.
	OutcomeInvalid
	// OutcomePending: the buffer grew but does not equal the answer.
	OutcomePending
	// OutcomeCorrect: the buffer matched and the score went up.
	OutcomeCorrect
)

// Settings fixes what a session drills.
type Settings struct {
	Variant         models.Variant
	Mode            models.Mode
	Difficulty      models.Difficulty
	Range           models.Range
	DurationMinutes int
}

// Summary is what an ended session hands back.
type Summary struct {
	Settings Settings
	Score    int
	Attempts []models.AttemptRecord
	EndedAt  time.Time
}

// View is the live state a renderer needs.
type View struct {
	State         State
	Settings      Settings
	Prompt        string
	Input         string
	Score         int
	TimeRemaining int
	Solved        bool
}

// Clock formats the remaining time as mm:ss.
func (v View) Clock() string { return FormatClock(v.TimeRemaining) }

func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Session is one timed play-through. Every transition happens through its
// methods; input on a session that is not running is a no-op.
//
//	Running --tick (remaining > 0)--> Running
//	Running --tick (remaining <= 0)--> Ended
//	Running --digit, no match--------> Running (buffer kept)
//	Running --digit, match-----------> Running (solved, awaiting next question)
//	Running --end--------------------> Ended
//	Ended   --anything---------------> Ended
type Session struct {
	settings  Settings
	state     State
	score     int
	remaining int
	question  models.Question
	input     string

	lastBase    int
	hasLastBase bool
	solved      bool

	attempts        AttemptLog
	questionStarted time.Time

	gen     *Generator
	now     func() time.Time
	summary *Summary
}

func startSession(settings Settings, gen *Generator, now func() time.Time) *Session {
	s := &Session{
		settings:  settings,
		state:     StateRunning,
		remaining: settings.DurationMinutes * 60,
		gen:       gen,
		now:       now,
	}
	s.nextQuestion()
	return s
}

func (s *Session) nextQuestion() {
	var exclude *int
	if s.hasLastBase {
		exclude = &s.lastBase
	}
	s.question = s.gen.Generate(s.settings.Variant, s.settings.Mode, s.settings.Range, exclude)
	s.lastBase = s.question.Base
	s.hasLastBase = true
	s.solved = false
	s.input = ""
	s.questionStarted = s.now()
}

func (s *Session) State() State { return s.state }

func (s *Session) Settings() Settings { return s.settings }

func (s *Session) Question() models.Question { return s.question }

func (s *Session) Score() int { return s.score }

func (s *Session) Remaining() int { return s.remaining }

func (s *Session) Input() string { return s.input }

// Tick counts one second down and reports whether the session just ended.
func (s *Session) Tick() bool {
	if s.state != StateRunning {
		return false
	}
	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.end()
		return true
	}
	return false
}

// AppendDigit adds r to the buffer and checks it against the answer.
func (s *Session) AppendDigit(r rune) Outcome {
	if s.state != StateRunning || s.solved {
		return OutcomeIgnored
	}
	if r < '0' || r > '9' {
		return OutcomeInvalid
	}
	s.input += string(r)
	return s.submitCheck()
}

func (s *Session) Backspace() {
	if s.state != StateRunning || s.input == "" {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

func (s *Session) ClearInput() {
	if s.state != StateRunning {
		return
	}
	s.input = ""
}

func (s *Session) submitCheck() Outcome {
	val, err := strconv.Atoi(s.input)
	if err != nil || val != s.question.AnswerValue {
		return OutcomePending
	}

	taken := s.now().Sub(s.questionStarted).Seconds()
	if taken < 0 {
		taken = 0
	}
	s.attempts.Append(models.AttemptRecord{
		PromptText:  s.question.PromptText,
		AnswerValue: s.question.AnswerValue,
		TimeSeconds: math.Round(taken*100) / 100,
	})
	s.score++
	s.input = ""
	s.solved = true
	return OutcomeCorrect
}

// Advance replaces a solved question once the feedback pause is over.
// It does nothing unless the current question was just solved.
func (s *Session) Advance() bool {
	if s.state != StateRunning || !s.solved {
		return false
	}
	s.nextQuestion()
	return true
}

// End stops the session. Only the first call produces a new summary; later
// calls return the same one with first=false.
func (s *Session) End() (summary Summary, first bool) {
	if s.state == StateRunning {
		s.end()
		return *s.summary, true
	}
	if s.summary != nil {
		return *s.summary, false
	}
	return Summary{}, false
}

func (s *Session) end() {
	s.state = StateEnded
	s.input = ""
	s.summary = &Summary{
		Settings: s.settings,
		Score:    s.score,
		Attempts: s.attempts.Finalize(),
		EndedAt:  s.now(),
	}
}

func (s *Session) View() View {
	return View{
		State:         s.state,
		Settings:      s.settings,
		Prompt:        s.question.PromptText,
		Input:         s.input,
		Score:         s.score,
		TimeRemaining: s.remaining,
		Solved:        s.solved,
	}
}
