package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBeatFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); nil != err {
		t.Fatal("unable to write beat file", err)
	}
	return p
}

func TestParseJSON(t *testing.T) {
	parser := DefaultParser{}
	file := writeBeatFile(t, "stir-fry.json",
		`{"title": "Stir Fry", "tempo": 128.0, "beats": [0.5, 1.0, 1.5]}`)
	bm, err := parser.Parse(file)
	if nil != err {
		t.Fatal("unable to parse", err)
	}
	if bm.Title != "Stir Fry" || bm.Tempo != 128.0 {
		t.Log("title", bm.Title)
		t.Log("tempo", bm.Tempo)
		t.Fail()
	}
	if len(bm.Beats) != 3 || bm.Beats[0] != 0.5 || bm.Beats[2] != 1.5 {
		t.Log("beats", bm.Beats)
		t.Fail()
	}
}

func TestParseJSONDefaultsTitle(t *testing.T) {
	parser := DefaultParser{}
	file := writeBeatFile(t, "pancake.json", `{"beats": []}`)
	bm, err := parser.Parse(file)
	if nil != err {
		t.Fatal("unable to parse", err)
	}
	if bm.Title != "pancake" {
		t.Log("title", bm.Title)
		t.Fail()
	}
	if len(bm.Beats) != 0 {
		t.Log("beats", bm.Beats)
		t.Fail()
	}
}

func TestParseText(t *testing.T) {
	parser := DefaultParser{}
	file := writeBeatFile(t, "omelette.beats", "# detected beats\n0.5\n1.0\n\n2.25\n")
	bm, err := parser.Parse(file)
	if nil != err {
		t.Fatal("unable to parse", err)
	}
	if bm.Title != "omelette" {
		t.Log("title", bm.Title)
		t.Fail()
	}
	if len(bm.Beats) != 3 || bm.Beats[0] != 0.5 || bm.Beats[1] != 1.0 || bm.Beats[2] != 2.25 {
		t.Log("beats", bm.Beats)
		t.Fail()
	}
}

func TestParseTextEmpty(t *testing.T) {
	parser := DefaultParser{}
	file := writeBeatFile(t, "silence.beats", "# nothing detected\n")
	bm, err := parser.Parse(file)
	if nil != err {
		t.Fatal("unable to parse", err)
	}
	if len(bm.Beats) != 0 {
		t.Log("beats", bm.Beats)
		t.Fail()
	}
}

var malformedTests = map[string]string{
	"bad-line.beats": "0.5\nnot-a-number\n1.0\n",
	"bad.json":       `{"beats": [`,
}

func TestParseMalformed(t *testing.T) {
	parser := DefaultParser{}
	for name, content := range malformedTests {
		file := writeBeatFile(t, name, content)
		if _, err := parser.Parse(file); nil == err {
			t.Log("file", name)
			t.Log("expected a parse error")
			t.Fail()
		}
	}
}

func TestParseMissingFile(t *testing.T) {
	parser := DefaultParser{}
	if _, err := parser.Parse(filepath.Join(t.TempDir(), "absent.beats")); nil == err {
		t.Log("expected an error for a missing file")
		t.Fail()
	}
}
