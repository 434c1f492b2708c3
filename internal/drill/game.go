package drill

import (
	"context"
	"time"

	"github.com/vytor/powerdrill/internal/errors"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/repository"
)

const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 60

	// MinCustomGap is the smallest allowed max-min of a custom range.
	MinCustomGap   = 5
	MaxCustomBound = 1000
)

// Result is the outcome of an ended session.
type Result struct {
	Summary
	// Recorded is false for custom difficulty sessions.
	Recorded  bool
	TopScores []models.HighScoreEntry
}

// Game owns at most one session at a time together with its tick source,
// the scoreboard and the custom range store. It is not safe for concurrent
// use; callers deliver events one at a time.
type Game struct {
	gen    *Generator
	board  *ScoreBoard
	ranges repository.CustomRangeRepository
	ticks  TickSource
	now    func() time.Time
	log    *logger.Logger

	session   *Session
	result    *Result
	listeners []func(from, to State)
}

// Option configures a Game.
type Option func(*Game)

func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

func WithGenerator(gen *Generator) Option {
	return func(g *Game) { g.gen = gen }
}

func WithLogger(l *logger.Logger) Option {
	return func(g *Game) { g.log = l }
}

func NewGame(board *ScoreBoard, ranges repository.CustomRangeRepository, opts ...Option) *Game {
	g := &Game{
		board:  board,
		ranges: ranges,
		now:    time.Now,
		log:    logger.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.gen == nil {
		g.gen = NewGenerator(nil)
	}
	g.log = g.log.WithPrefix("game")
	return g
}

// OnStateChange registers fn to be called after every state transition.
func (g *Game) OnStateChange(fn func(from, to State)) {
	g.listeners = append(g.listeners, fn)
}

func (g *Game) State() State {
	if g.session == nil {
		return StateIdle
	}
	return g.session.State()
}

func (g *Game) transition(from State) {
	to := g.State()
	if from == to {
		return
	}
	g.log.Debug("state %s -> %s", from, to)
	for _, fn := range g.listeners {
		fn(from, to)
	}
}

// Start begins a new session and arms a fresh tick source, returning its
// generation. A session still running is abandoned without scoring.
func (g *Game) Start(ctx context.Context, variant models.Variant, mode models.Mode, difficulty models.Difficulty, durationMinutes int) (uint64, error) {
	log := logger.FromContext(ctx).WithPrefix("game")
	log.Debug("starting game: variant=%s, mode=%s, difficulty=%s, minutes=%d", variant, mode, difficulty, durationMinutes)

	if !variant.Valid() {
		return 0, errors.NewValidationError("variant", "must be 'square' or 'cube'")
	}
	if mode != models.ModeDirect && mode != models.ModeInverse {
		return 0, errors.NewValidationError("mode", "must be 'direct' or 'inverse'")
	}
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return 0, errors.NewValidationError("duration", "must be between 1 and 60 minutes")
	}

	r, err := g.resolveRange(ctx, variant, difficulty)
	if err != nil {
		return 0, err
	}

	from := g.State()
	if from == StateRunning {
		log.Info("abandoning running session for a new one")
	}
	g.session = startSession(Settings{
		Variant:         variant,
		Mode:            mode,
		Difficulty:      difficulty,
		Range:           r,
		DurationMinutes: durationMinutes,
	}, g.gen, g.now)
	g.result = nil
	generation := g.ticks.Arm()
	log.Info("game started: variant=%s, difficulty=%s, range=%s", variant, difficulty, r)
	g.transition(from)
	return generation, nil
}

func (g *Game) resolveRange(ctx context.Context, variant models.Variant, difficulty models.Difficulty) (models.Range, error) {
	if r, ok := models.PresetRange(variant, difficulty); ok {
		return r, nil
	}
	if !difficulty.IsCustom() {
		return models.Range{}, errors.NewValidationError("difficulty", "must be 'easy', 'medium', 'hard' or 'custom'")
	}
	cr, err := g.ranges.Get(ctx, variant)
	if err != nil {
		return models.Range{}, errors.NewInternalError(err)
	}
	if cr == nil {
		return models.Range{}, errors.NewInvalidRangeError(string(variant))
	}
	return *cr, nil
}

// TickGeneration identifies the currently armed tick source.
func (g *Game) TickGeneration() uint64 { return g.ticks.Generation() }

// Tick delivers one second of countdown from the source armed as generation.
// Stale generations are dropped. A non-nil result means the session ended.
func (g *Game) Tick(ctx context.Context, generation uint64) (*Result, error) {
	if !g.ticks.Accept(generation) || g.session == nil {
		return nil, nil
	}
	if !g.session.Tick() {
		return nil, nil
	}
	summary, _ := g.session.End()
	return g.finish(ctx, summary)
}

func (g *Game) AppendDigit(r rune) Outcome {
	if g.session == nil {
		return OutcomeIgnored
	}
	return g.session.AppendDigit(r)
}

func (g *Game) Backspace() {
	if g.session != nil {
		g.session.Backspace()
	}
}

func (g *Game) ClearInput() {
	if g.session != nil {
		g.session.ClearInput()
	}
}

// NextQuestion shows the successor of a solved question.
func (g *Game) NextQuestion() bool {
	if g.session == nil {
		return false
	}
	return g.session.Advance()
}

// End finishes the running session. Calling it again returns the same result
// without recording anything twice. With no session it returns nil.
func (g *Game) End(ctx context.Context) (*Result, error) {
	if g.session == nil {
		return nil, nil
	}
	summary, first := g.session.End()
	if !first {
		return g.result, nil
	}
	return g.finish(ctx, summary)
}

func (g *Game) finish(ctx context.Context, summary Summary) (*Result, error) {
	log := logger.FromContext(ctx).WithPrefix("game")
	g.ticks.Disarm()

	s := summary.Settings
	res := &Result{Summary: summary, TopScores: g.board.Top(s.Variant)}
	var err error
	if !s.Difficulty.IsCustom() {
		res.TopScores, err = g.board.Record(ctx, s.Variant, models.HighScoreEntry{
			Score:           summary.Score,
			Mode:            s.Mode,
			Difficulty:      s.Difficulty,
			DurationMinutes: s.DurationMinutes,
			RecordedAt:      summary.EndedAt,
		})
		res.Recorded = err == nil
	}
	g.result = res
	log.Info("game ended: variant=%s, score=%d, attempts=%d, recorded=%t", s.Variant, summary.Score, len(summary.Attempts), res.Recorded)
	g.transition(StateRunning)
	if err != nil {
		return res, errors.NewInternalError(err)
	}
	return res, nil
}

// Exit abandons a running session, or dismisses an ended one, and returns
// to idle. Nothing is recorded.
func (g *Game) Exit() {
	if g.session == nil {
		return
	}
	from := g.State()
	if from == StateRunning {
		g.log.Info("game abandoned: score=%d", g.session.Score())
	}
	g.ticks.Disarm()
	g.session = nil
	g.result = nil
	g.transition(from)
}

// View returns the live session state, or an idle view.
func (g *Game) View() View {
	if g.session == nil {
		return View{State: StateIdle}
	}
	return g.session.View()
}

// LastResult is the result of the session that ended most recently.
func (g *Game) LastResult() *Result { return g.result }

func (g *Game) TopScores(variant models.Variant) []models.HighScoreEntry {
	return g.board.Top(variant)
}

// ValidateCustomRange checks player supplied bounds.
func ValidateCustomRange(minVal, maxVal int) error {
	switch {
	case minVal >= maxVal:
		return errors.NewInvalidCustomRangeError("minimum must be less than maximum")
	case maxVal-minVal < MinCustomGap:
		return errors.NewInvalidCustomRangeError("maximum must be at least 5 more than minimum")
	case minVal < 0:
		return errors.NewInvalidCustomRangeError("minimum cannot be negative")
	case maxVal > MaxCustomBound:
		return errors.NewInvalidCustomRangeError("maximum cannot exceed 1000")
	}
	return nil
}

// SaveCustomRange validates and stores a range for variant. A rejected range
// leaves any previously saved one in place.
func (g *Game) SaveCustomRange(ctx context.Context, variant models.Variant, minVal, maxVal int) (models.CustomRange, error) {
	log := logger.FromContext(ctx).WithPrefix("game")
	if !variant.Valid() {
		return models.CustomRange{}, errors.NewValidationError("variant", "must be 'square' or 'cube'")
	}
	if err := ValidateCustomRange(minVal, maxVal); err != nil {
		log.Debug("custom range rejected: min=%d, max=%d: %v", minVal, maxVal, err)
		return models.CustomRange{}, err
	}
	cr := models.CustomRange{Min: minVal, Max: maxVal}
	if err := g.ranges.Save(ctx, variant, cr); err != nil {
		log.Error("failed to save custom range: %v", err)
		return models.CustomRange{}, errors.NewInternalError(err)
	}
	log.Info("custom range saved: variant=%s, range=%s", variant, cr)
	return cr, nil
}

func (g *Game) CustomRange(ctx context.Context, variant models.Variant) (*models.CustomRange, error) {
	return g.ranges.Get(ctx, variant)
}
