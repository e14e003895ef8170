package main

import (
	"os"
	"path/filepath"
	"testing"

	"everyrhythm/internal/config"
	"everyrhythm/internal/game"
	"everyrhythm/internal/input"
)

func writeSongDir(t *testing.T, withAudio bool) string {
	t.Helper()
	dir := t.TempDir()
	if withAudio {
		if err := os.WriteFile(filepath.Join(dir, "song.mp3"), []byte("not audio"), 0o644); nil != err {
			t.Fatal("unable to write audio file", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "song.beats"), []byte("1.0\n2.0\n"), 0o644); nil != err {
		t.Fatal("unable to write beat file", err)
	}
	return dir
}

func TestInitWithoutPlayableAudio(t *testing.T) {
	dir := writeSongDir(t, true)
	*config.Directory = dir
	*config.Database = filepath.Join(dir, "replays.db")

	p := &Program{}
	if err := p.Init(); nil != err {
		t.Fatal("unable to init", err)
	}
	defer p.Deinit()

	// The undecodable song only matters once playback is prepared.
	if err := p.Open(); nil == err {
		t.Log("expected a decode error")
		t.Fail()
	}
}

func TestInitWithoutAudioFile(t *testing.T) {
	dir := writeSongDir(t, false)
	*config.Directory = dir
	*config.Database = filepath.Join(dir, "replays.db")

	p := &Program{}
	if err := p.Init(); nil != err {
		t.Fatal("unable to init", err)
	}
	defer p.Deinit()

	if err := p.Open(); nil == err {
		t.Log("expected a missing audio error")
		t.Fail()
	}
}

func TestCountdownDrain(t *testing.T) {
	events := make(chan input.Event, 8)
	p := &Program{events: events}

	events <- input.Event{Kind: input.KindHit}
	events <- input.Event{Kind: input.KindPause}
	if !p.drainCountdown() {
		t.Log("expected the countdown to continue")
		t.Fail()
	}
	if n := len(events); n != 0 {
		t.Log("events left queued", n)
		t.Fail()
	}

	events <- input.Event{Kind: input.KindQuit}
	if p.drainCountdown() {
		t.Log("expected quit to stop the countdown")
		t.Fail()
	}
}

func TestRecordSkipsUnstartedSession(t *testing.T) {
	p := &Program{beatMap: &game.BeatMap{Beats: []float64{1.0}}}
	if err := p.journal.Init(filepath.Join(t.TempDir(), "replays.db")); nil != err {
		t.Fatal("unable to open journal", err)
	}
	defer p.journal.Deinit()

	p.inputs = []float64{1000.0}
	p.record(false)
	if n := len(p.journal.History(p.beatMap.Beats)); n != 0 {
		t.Log("replays", n)
		t.Fail()
	}

	p.record(true)
	if n := len(p.journal.History(p.beatMap.Beats)); n != 1 {
		t.Log("replays", n)
		t.Fail()
	}
}
