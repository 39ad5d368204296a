package spike

import (
	"math/rand/v2"
	"strings"
)

// Generator produces random adjective-color-animal slugs.
// No uniqueness check is made against existing entries.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src.
// A nil src uses the runtime's global random source.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		return &Generator{}
	}
	return &Generator{rng: rand.New(src)}
}

// Slug returns a new slug such as "brisk-teal-heron".
func (g *Generator) Slug() string {
	return strings.Join([]string{
		g.pick(Adjectives),
		g.pick(Colors),
		g.pick(Animals),
	}, "-")
}

func (g *Generator) pick(words []string) string {
	if g == nil || g.rng == nil {
		return words[rand.IntN(len(words))]
	}
	return words[g.rng.IntN(len(words))]
}
