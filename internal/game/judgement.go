package game

import (
	"math"
)

// Tier is a timing quality bucket.
type Tier uint8

const (
	TierPerfect Tier = iota
	TierGood
	TierMiss
)

func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierGood:
		return "good"
	}
	return "miss"
}

// Windows holds the inclusive half-widths of the timing windows, in
// milliseconds. The zero value judges everything a miss; use
// DefaultWindows for the standard 25/50 setup.
type Windows struct {
	Perfect float64
	Good    float64
}

func DefaultWindows() Windows {
	return Windows{Perfect: 25.0, Good: 50.0}
}

// Classify buckets a timing offset by its absolute value. An offset
// exactly on a window edge takes the better tier.
func (w Windows) Classify(offset float64) Tier {
	offset = math.Abs(offset)
	switch {
	case offset <= w.Perfect:
		return TierPerfect
	case offset <= w.Good:
		return TierGood
	}
	return TierMiss
}

// Judgement is the outcome of judging one note. Misses carry zero
// points and a 1.0 multiplier.
type Judgement struct {
	Tier       Tier
	Offset     float64 // Signed input offset in milliseconds, late is positive
	Points     int     // Score delta, multiplier already applied
	Multiplier float64 // The combo multiplier that produced Points
}
