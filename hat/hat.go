package hat

import (
	"fmt"
	"math/rand"
	"sort"
)

// Hat is a bag of colored balls. It is not safe for concurrent use.
type Hat struct {
	contents []string
	rng      *rand.Rand
}

// New fills a hat with count balls of every color in balls. Colors with a
// zero count are allowed as long as the hat ends up non-empty.
func New(balls map[string]int, opts ...Option) (*Hat, error) {
	colors := make([]string, 0, len(balls))
	total := 0
	for color, count := range balls {
		if count < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeCount, color, count)
		}
		colors = append(colors, color)
		total += count
	}
	if total == 0 {
		return nil, ErrEmptyHat
	}
	sort.Strings(colors)

	contents := make([]string, 0, total)
	for _, color := range colors {
		for i := 0; i < balls[color]; i++ {
			contents = append(contents, color)
		}
	}
	return &Hat{contents: contents, rng: newConfig(opts, nil).rng}, nil
}

// Len is the number of balls left in the hat.
func (h *Hat) Len() int { return len(h.contents) }

// Count is the number of balls of color left in the hat.
func (h *Hat) Count(color string) int {
	n := 0
	for _, c := range h.contents {
		if c == color {
			n++
		}
	}
	return n
}

// Contents returns a copy of the balls left in the hat.
func (h *Hat) Contents() []string {
	out := make([]string, len(h.contents))
	copy(out, h.contents)
	return out
}

// Clone returns an independent copy of the remaining balls that draws from
// the same generator.
func (h *Hat) Clone() *Hat {
	return &Hat{contents: h.Contents(), rng: h.rng}
}

// Draw removes n balls at random and returns their colors in draw order.
// When n is at least Len, every ball is returned and the hat is left empty.
func (h *Hat) Draw(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDraw, n)
	}
	if n >= len(h.contents) {
		drawn := h.contents
		h.contents = nil
		return drawn, nil
	}
	return h.draw(n, h.rng), nil
}

// draw removes n < Len balls chosen with r, keeping the rest in order.
func (h *Hat) draw(n int, r *rand.Rand) []string {
	picked := sampleIndices(len(h.contents), n, r)
	drawn := make([]string, n)
	taken := make([]bool, len(h.contents))
	for i, idx := range picked {
		drawn[i] = h.contents[idx]
		taken[idx] = true
	}

	kept := h.contents[:0]
	for i, c := range h.contents {
		if !taken[i] {
			kept = append(kept, c)
		}
	}
	h.contents = kept
	return drawn
}

// Experiment estimates the probability that drawing numDrawn balls from h
// yields at least expected[color] balls of every listed color. Each trial
// draws from a fresh copy, so h itself is never modified.
//
// The hat's own generator is used unless opts supply one.
//
// Complexity: O(trials · Len).
func Experiment(h *Hat, expected map[string]int, numDrawn, trials int, opts ...Option) (float64, error) {
	if h == nil {
		return 0, ErrNilHat
	}
	if trials < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrNoTrials, trials)
	}
	if numDrawn < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDraw, numDrawn)
	}
	for color, count := range expected {
		if count < 0 {
			return 0, fmt.Errorf("%w: expected %s=%d", ErrNegativeCount, color, count)
		}
	}
	r := newConfig(opts, h.rng).rng

	successes := 0
	got := make(map[string]int, len(expected))
	for t := 0; t < trials; t++ {
		trial := h.Clone()
		var drawn []string
		if numDrawn >= trial.Len() {
			drawn = trial.contents
		} else {
			drawn = trial.draw(numDrawn, r)
		}

		clear(got)
		for _, c := range drawn {
			got[c]++
		}
		if satisfies(got, expected) {
			successes++
		}
	}
	return float64(successes) / float64(trials), nil
}

func satisfies(got, expected map[string]int) bool {
	for color, want := range expected {
		if got[color] < want {
			return false
		}
	}
	return true
}
