package game

import (
	"testing"
)

var classifyTests = map[float64]Tier{
	0.0:    TierPerfect,
	-25.0:  TierPerfect,
	25.0:   TierPerfect,
	25.001: TierGood,
	-50.0:  TierGood,
	50.0:   TierGood,
	50.001: TierMiss,
	-300.0: TierMiss,
}

func TestClassify(t *testing.T) {
	windows := DefaultWindows()
	for offset, expected := range classifyTests {
		tier := windows.Classify(offset)
		if tier != expected {
			t.Log("offset  ", offset)
			t.Log("tier    ", tier)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestClassifyCustom(t *testing.T) {
	windows := Windows{Perfect: 10.0, Good: 20.0}
	for offset, expected := range map[float64]Tier{
		10.0: TierPerfect,
		15.0: TierGood,
		20.0: TierGood,
		20.5: TierMiss,
	} {
		tier := windows.Classify(offset)
		if tier != expected {
			t.Log("offset  ", offset)
			t.Log("tier    ", tier)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}
