package game

import (
	"math"
)

// NoteStatus is the judgement lifecycle of a note.
type NoteStatus uint8

const (
	StatusActive NoteStatus = iota
	StatusHit
	StatusMissed
)

func (s NoteStatus) String() string {
	switch s {
	case StatusHit:
		return "hit"
	case StatusMissed:
		return "missed"
	}
	return "active"
}

type Note struct {
	HitTime float64 // The time the note should be hit, in milliseconds
	Lane    int     // The chart column

	// This is state
	Status NoteStatus
	Judged bool
}

func NewNote(hitTime float64, lane int) Note {
	return Note{HitTime: hitTime, Lane: lane, Status: StatusActive}
}

// TimingOffset is the signed distance between an input and the note's
// target time. Positive means the input was late.
func (n *Note) TimingOffset(input float64) float64 {
	return input - n.HitTime
}

// IsWithin reports whether an input falls inside the given window
// half-width. Both bounds are inclusive.
func (n *Note) IsWithin(input, window float64) bool {
	return math.Abs(n.TimingOffset(input)) <= window
}

// MarkHit finalizes the note as hit. Judged notes stay as they are,
// so repeated marks are no-ops.
func (n *Note) MarkHit() {
	if n.Judged {
		return
	}
	n.Status = StatusHit
	n.Judged = true
}

// MarkMissed finalizes the note as missed. No-op once judged.
func (n *Note) MarkMissed() {
	if n.Judged {
		return
	}
	n.Status = StatusMissed
	n.Judged = true
}
