package demo

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ytget/masonry/internal/model"
)

var words = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit
sed do eiusmod tempor incididunt ut labore et dolore magna aliqua ut enim ad
minim veniam quis nostrud exercitation ullamco laboris nisi aliquip ex ea
commodo consequat`)

// Generator produces random cards. It is deterministic for a given seed.
type Generator struct {
	rng    *rand.Rand
	images []string
	count  int
}

// NewGenerator creates a generator. images may be empty.
func NewGenerator(seed int64, images []string) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), images: images}
}

// Next returns a new card
func (g *Generator) Next() Card {
	g.count++
	card := Card{
		ID:    NewCardID(),
		Title: fmt.Sprintf("Card %d", g.count),
		Text:  g.sentence(4 + g.rng.Intn(40)),
		Tag:   string(g.sizeClass()),
	}
	if len(g.images) > 0 && g.rng.Intn(3) == 0 {
		card.Image = g.images[g.rng.Intn(len(g.images))]
	}
	return card
}

// Generate returns n new cards
func (g *Generator) Generate(n int) []Card {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, g.Next())
	}
	return cards
}

// sizeClass picks mostly single column cards with the occasional wide one
func (g *Generator) sizeClass() model.SizeClass {
	switch r := g.rng.Intn(20); {
	case r < 14:
		return model.SizeClassNormal
	case r < 18:
		return model.SizeClassDoubleWide
	case r < 19:
		return model.SizeClassTripleWide
	default:
		return model.SizeClassQuadrupleWide
	}
}

func (g *Generator) sentence(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[g.rng.Intn(len(words))]
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
