package game

import (
	"testing"
)

var offsetTests = map[float64]float64{
	990.0:  -10.0,
	1000.0: 0.0,
	1012.5: 12.5,
	1100.0: 100.0,
}

func TestTimingOffset(t *testing.T) {
	note := NewNote(1000.0, 0)
	for input, expected := range offsetTests {
		offset := note.TimingOffset(input)
		if offset != expected {
			t.Log("input   ", input)
			t.Log("offset  ", offset)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

var withinTests = map[float64]bool{
	949.999: false,
	950.0:   true,
	1000.0:  true,
	1050.0:  true,
	1050.01: false,
}

func TestIsWithin(t *testing.T) {
	note := NewNote(1000.0, 0)
	for input, expected := range withinTests {
		if note.IsWithin(input, 50.0) != expected {
			t.Log("input   ", input)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestMarkHitFinal(t *testing.T) {
	note := NewNote(1000.0, 0)
	note.MarkHit()
	note.MarkMissed()
	if note.Status != StatusHit || !note.Judged {
		t.Log("status", note.Status)
		t.Fail()
	}
}

func TestMarkMissedFinal(t *testing.T) {
	note := NewNote(1000.0, 0)
	note.MarkMissed()
	note.MarkHit()
	if note.Status != StatusMissed || !note.Judged {
		t.Log("status", note.Status)
		t.Fail()
	}
}
