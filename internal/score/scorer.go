package score

import (
	"math"

	"everyrhythm/internal/game"
)

// Base point values per judgement tier, before the combo multiplier.
const (
	PointsPerfect = 1000
	PointsGood    = 500
	PointsMiss    = 0
)

func Points(tier game.Tier) int {
	switch tier {
	case game.TierPerfect:
		return PointsPerfect
	case game.TierGood:
		return PointsGood
	}
	return PointsMiss
}

// Tally is the canonical per-tier judgement count for a session.
type Tally struct {
	Perfect int
	Good    int
	Miss    int
}

// Judged is the total number of judgements folded in.
func (t Tally) Judged() int {
	return t.Perfect + t.Good + t.Miss
}

// Hits is the number of judgements that scored.
func (t Tally) Hits() int {
	return t.Perfect + t.Good
}

func (t *Tally) count(tier game.Tier) {
	switch tier {
	case game.TierPerfect:
		t.Perfect++
	case game.TierGood:
		t.Good++
	default:
		t.Miss++
	}
}

// multiplier is the combo multiplier in effect at a combo count.
func multiplier(combo int) float64 {
	switch {
	case combo < 10:
		return 1.0
	case combo < 20:
		return 1.1
	}
	return 1.2
}

// Accumulator folds judgement tiers into running score, combo and
// tally state. The zero value is ready to use.
type Accumulator struct {
	score    int
	combo    int
	maxCombo int
	tally    Tally
}

// Apply folds one judgement into the accumulator and returns the
// score delta it produced, the combo it left behind and the
// multiplier that was used. A hit bumps the combo before the
// multiplier is read, so the hit that reaches a threshold already
// earns the higher rate. A miss resets the combo and scores zero at
// a reported 1.0.
func (a *Accumulator) Apply(tier game.Tier) (delta, combo int, mult float64) {
	a.tally.count(tier)
	if tier == game.TierMiss {
		a.combo = 0
		return 0, 0, 1.0
	}
	a.combo++
	if a.combo > a.maxCombo {
		a.maxCombo = a.combo
	}
	mult = multiplier(a.combo)
	delta = int(math.Floor(float64(Points(tier)) * mult))
	a.score += delta
	return delta, a.combo, mult
}

func (a *Accumulator) Score() int {
	return a.score
}

func (a *Accumulator) Combo() int {
	return a.combo
}

// MaxCombo is the highest combo reached since the last reset. It
// never decreases during a session.
func (a *Accumulator) MaxCombo() int {
	return a.maxCombo
}

func (a *Accumulator) Tally() Tally {
	return a.tally
}

// Multiplier is the combo multiplier currently in effect.
func (a *Accumulator) Multiplier() float64 {
	return multiplier(a.combo)
}

func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
