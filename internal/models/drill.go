package models

import (
	"fmt"
	"strings"
	"time"
)

// Variant selects which power is drilled.
type Variant string

const (
	VariantSquare Variant = "square"
	VariantCube   Variant = "cube"
)

// Variants lists every variant in display order.
var Variants = []Variant{VariantSquare, VariantCube}

// Exponent returns 2 for squares and 3 for cubes.
func (v Variant) Exponent() int {
	if v == VariantCube {
		return 3
	}
	return 2
}

// PowerGlyph is the superscript shown after the base in direct mode.
func (v Variant) PowerGlyph() string {
	if v == VariantCube {
		return "³"
	}
	return "²"
}

// RootGlyph is the radical shown before the power in inverse mode.
func (v Variant) RootGlyph() string {
	if v == VariantCube {
		return "∛"
	}
	return "√"
}

func (v Variant) Label() string { return capitalize(string(v)) }

func (v Variant) Valid() bool {
	return v == VariantSquare || v == VariantCube
}

// ParseVariant accepts "square" or "cube" in any case.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown variant %q", s)
	}
	return v, nil
}

// Mode selects the direction of the question.
type Mode string

const (
	ModeDirect  Mode = "direct"
	ModeInverse Mode = "inverse"
)

var Modes = []Mode{ModeDirect, ModeInverse}

func (m Mode) Label() string { return capitalize(string(m)) }

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m != ModeDirect && m != ModeInverse {
		return "", fmt.Errorf("unknown mode %q", s)
	}
	return m, nil
}

// Difficulty is one of the preset ranges or a player supplied custom range.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyCustom Difficulty = "custom"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom}

func (d Difficulty) Label() string { return capitalize(string(d)) }

func (d Difficulty) IsCustom() bool { return d == DifficultyCustom }

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

var presetMax = map[Variant]map[Difficulty]int{
	VariantSquare: {DifficultyEasy: 30, DifficultyMedium: 50, DifficultyHard: 100},
	VariantCube:   {DifficultyEasy: 20, DifficultyMedium: 30, DifficultyHard: 50},
}

// PresetRange returns [1, max] for a preset difficulty. ok is false for custom.
func PresetRange(v Variant, d Difficulty) (Range, bool) {
	hi, ok := presetMax[v][d]
	if !ok {
		return Range{}, false
	}
	return Range{Min: 1, Max: hi}, true
}

// Range is an inclusive interval of bases.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(n int) bool { return n >= r.Min && n <= r.Max }

// Width is the number of distinct bases in the range.
func (r Range) Width() int { return r.Max - r.Min + 1 }

func (r Range) String() string { return fmt.Sprintf("%d–%d", r.Min, r.Max) }

// CustomRange is the session-scoped range a player configures per variant.
type CustomRange = Range

// Question is immutable once generated.
type Question struct {
	Base            int    `json:"base"`
	ExponentDisplay string `json:"exponent_display"`
	AnswerValue     int    `json:"answer_value"`
	PromptText      string `json:"prompt_text"`
}

// AttemptRecord is a solved question and how long it took.
type AttemptRecord struct {
	PromptText  string  `json:"prompt_text"`
	AnswerValue int     `json:"answer_value"`
	TimeSeconds float64 `json:"time_seconds"`
}

// HighScoreEntry is one row of a variant's top-5 list.
type HighScoreEntry struct {
	Score           int        `json:"score"`
	Mode            Mode       `json:"mode"`
	Difficulty      Difficulty `json:"difficulty"`
	DurationMinutes int        `json:"duration_minutes"`
	RecordedAt      time.Time  `json:"recorded_at"`
}

// DisplayDateLayout renders dates as "Mar 07, '25".
const DisplayDateLayout = "Jan 02, '06"

func (e HighScoreEntry) DisplayDate() string {
	return e.RecordedAt.Format(DisplayDateLayout)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
