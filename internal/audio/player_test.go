package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type gainTest struct {
	Volume float64
	Silent bool
}

var gainTests = map[float64]gainTest{
	1.0:  {0.0, false},
	0.5:  {-1.0, false},
	0.25: {-2.0, false},
	0.0:  {0.0, true},
	-1.0: {0.0, true},
	2.0:  {0.0, false},
}

func TestGain(t *testing.T) {
	for level, expected := range gainTests {
		volume, silent := gain(level)
		if volume != expected.Volume || silent != expected.Silent {
			t.Log("level   ", level)
			t.Log("volume  ", volume, silent)
			t.Log("expected", expected.Volume, expected.Silent)
			t.Fail()
		}
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.aiff")
	if err := os.WriteFile(file, []byte("not audio"), 0o644); nil != err {
		t.Fatal("unable to write file", err)
	}
	_, err := Open(file)
	if nil == err || !strings.Contains(err.Error(), "unsupported audio format") {
		t.Log("err", err)
		t.Fail()
	}
}

func TestOpenUndecodable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(file, []byte("not audio at all"), 0o644); nil != err {
		t.Fatal("unable to write file", err)
	}
	if _, err := Open(file); nil == err {
		t.Log("expected a decode error")
		t.Fail()
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.ogg")); nil == err {
		t.Log("expected an error for a missing file")
		t.Fail()
	}
}
