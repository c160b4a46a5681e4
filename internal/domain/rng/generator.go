// Package rng provides the seeded multiply-with-carry generator every
// stochastic decision in the simulation draws from.
package rng

import (
	"math"

	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

// Default lane seeds, used when a zero seed is supplied.
const (
	DefaultSeedX uint32 = 521288629
	DefaultSeedY uint32 = 362436069
)

// Generator is a two-lane multiply-with-carry PRNG. X and Y are exported so
// the state can be persisted with the game and resumed exactly.
type Generator struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// New creates a generator. A zero lane seed selects the default for that lane.
func New(seedX, seedY uint32) *Generator {
	g := &Generator{}
	g.Seed(seedX, seedY)
	return g
}

// FromSeed validates signed seeds coming from configuration or the command
// line before creating a generator.
func FromSeed(seedX, seedY int64) (*Generator, error) {
	if seedX < 0 || seedX > math.MaxUint32 || seedY < 0 || seedY > math.MaxUint32 {
		return nil, shared.ErrInvalidSeed
	}
	return New(uint32(seedX), uint32(seedY)), nil
}

// Seed resets the lanes
func (g *Generator) Seed(seedX, seedY uint32) {
	g.X = seedX
	if g.X == 0 {
		g.X = DefaultSeedX
	}
	g.Y = seedY
	if g.Y == 0 {
		g.Y = DefaultSeedY
	}
}

// Next32 advances both lanes and returns the next 32-bit value
func (g *Generator) Next32() uint32 {
	g.X = 18000*(g.X&0xFFFF) + (g.X >> 16)
	g.Y = 30903*(g.Y&0xFFFF) + (g.Y >> 16)
	return (g.X << 16) + (g.Y & 0xFFFF)
}

// Below returns a value in [0, n). It returns 0 without advancing the
// generator when n <= 0.
func (g *Generator) Below(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Next32() % uint32(n))
}

// State returns a copy of the lanes
func (g *Generator) State() (uint32, uint32) {
	return g.X, g.Y
}

// Clone returns an independent generator at the same position
func (g *Generator) Clone() *Generator {
	c := *g
	return &c
}

var _ shared.Random = (*Generator)(nil)
