// Package dice is the single source of randomness for the game. Every draw
// goes through an rpg-toolkit Roller so tests can force exact faces.
package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"
)

// Dice draws uniform integers and dice sums from a Roller.
type Dice struct {
	roller toolkit.Roller
}

// New wraps r. A nil roller falls back to the toolkit's crypto roller.
func New(r toolkit.Roller) *Dice {
	if r == nil {
		r = toolkit.DefaultRoller
	}
	return &Dice{roller: r}
}

// NewSeeded returns Dice backed by a reproducible SeededRoller.
func NewSeeded(seed int64) *Dice {
	return New(NewSeededRoller(seed))
}

// Range returns a uniform integer in [lo, hi], both inclusive.
// An empty or single-value range returns lo without drawing.
func (d *Dice) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.face(hi-lo+1) - 1
}

// Roll returns the sum of n dice with the given number of sides.
func (d *Dice) Roll(n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for range n {
		total += d.face(sides)
	}
	return total
}

// Coin is a fair boolean draw.
func (d *Dice) Coin() bool {
	return d.face(2) == 1
}

// Pick returns a uniform index into a collection of n elements.
func (d *Dice) Pick(n int) int {
	return d.Range(0, n-1)
}

// face rolls one die. Roller failures and out-of-range faces degrade to the
// nearest valid face.
func (d *Dice) face(size int) int {
	if size <= 1 {
		return 1
	}
	v, err := d.roller.Roll(size)
	switch {
	case err != nil, v < 1:
		return 1
	case v > size:
		return size
	}
	return v
}
