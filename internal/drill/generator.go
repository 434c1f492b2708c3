package drill

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/vytor/powerdrill/internal/models"
)

// Generator draws questions uniformly from a range.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator backed by src. A nil src seeds from the clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

// Generate builds a question whose base lies in r and differs from exclude.
// A single-value range cannot honor the exclusion, so it is ignored there.
func (g *Generator) Generate(variant models.Variant, mode models.Mode, r models.Range, exclude *int) models.Question {
	base := g.draw(r)
	if exclude != nil && r.Width() > 1 {
		for base == *exclude {
			base = g.draw(r)
		}
	}

	power := Pow(base, variant.Exponent())
	if mode == models.ModeInverse {
		return models.Question{
			Base:            base,
			ExponentDisplay: variant.RootGlyph(),
			AnswerValue:     base,
			PromptText:      variant.RootGlyph() + strconv.Itoa(power),
		}
	}
	return models.Question{
		Base:            base,
		ExponentDisplay: variant.PowerGlyph(),
		AnswerValue:     power,
		PromptText:      strconv.Itoa(base) + variant.PowerGlyph(),
	}
}

func (g *Generator) draw(r models.Range) int {
	if r.Width() <= 1 {
		return r.Min
	}
	return r.Min + g.rng.Intn(r.Width())
}

// Pow raises base to a small non-negative exponent.
func Pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
