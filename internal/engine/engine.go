package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"everyrhythm/internal/game"
	"everyrhythm/internal/score"
)

// State is the session lifecycle.
type State uint8

const (
	StateIdle State = iota
	StatePlaying
	StateEnded
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	}
	return "idle"
}

// Player is the playback collaborator the engine drives. A failed
// Start aborts the session transition.
type Player interface {
	Start() error
	Stop()
	Pause()
	Resume()
}

// Presentation visibility window in milliseconds around the current
// playback time.
const (
	visiblePast  = 100.0
	visibleAhead = 2000.0
)

// Fallback pattern used when a session starts with no detected beats:
// ten notes, one second apart, starting one second in. An unanalyzed
// song stays playable instead of failing the session.
const (
	fallbackNotes     = 10
	fallbackSpacingMs = 1000.0
)

// Engine owns all note and scoring state for a session. Notes are
// held sorted by hit time and only mutated here.
type Engine struct {
	windows game.Windows
	player  Player

	state   State
	paused  bool
	notes   []game.Note
	acc     score.Accumulator
	last    game.Judgement
	hasLast bool
}

func New(windows game.Windows, player Player) *Engine {
	return &Engine{windows: windows, player: player}
}

func (e *Engine) State() State {
	return e.state
}

// StartSession begins a session over beat timestamps given in
// seconds. The list may arrive in any order and is sorted before
// notes are created. When the player refuses to start the engine
// stays in its current state.
func (e *Engine) StartSession(beats []float64) error {
	if nil != e.player {
		if err := e.player.Start(); nil != err {
			return fmt.Errorf("unable to start playback: %w", err)
		}
	}

	e.notes = buildNotes(beats)
	e.acc.Reset()
	e.hasLast = false
	e.state = StatePlaying
	e.paused = false
	log.Info("session started", "notes", len(e.notes))
	return nil
}

func buildNotes(beats []float64) []game.Note {
	if len(beats) == 0 {
		log.Warn("no beats detected, using fallback pattern",
			"notes", fallbackNotes, "spacing", fallbackSpacingMs)
		notes := make([]game.Note, fallbackNotes)
		for i := range notes {
			notes[i] = game.NewNote(float64(i+1)*fallbackSpacingMs, 0)
		}
		return notes
	}

	sorted := make([]float64, len(beats))
	copy(sorted, beats)
	sort.Float64s(sorted)
	notes := make([]game.Note, len(sorted))
	for i, beat := range sorted {
		notes[i] = game.NewNote(beat*1000.0, 0)
	}
	return notes
}

// ProcessInput judges a press at the given playback time in
// milliseconds. The nearest unjudged note inside the good window is
// hit; of two equally distant notes the earlier one wins. Returns
// nil when nothing was in reach.
func (e *Engine) ProcessInput(input float64) *game.Judgement {
	var closest *game.Note
	distance := math.MaxFloat64
	offset := 0.0

	for i := range e.notes {
		note := &e.notes[i]
		if note.Judged {
			continue
		}
		dd := note.TimingOffset(input)
		d := math.Abs(dd)
		if d < distance {
			distance = d
			offset = dd
			closest = note
		} else if nil != closest {
			// already found the closest, notes only get further away
			break
		}
	}

	if nil == closest || distance > e.windows.Good {
		return nil
	}

	closest.MarkHit()
	tier := e.windows.Classify(offset)
	delta, _, mult := e.acc.Apply(tier)
	j := game.Judgement{Tier: tier, Offset: offset, Points: delta, Multiplier: mult}
	e.last, e.hasLast = j, true
	log.Debug("input judged", "tier", tier, "offset", offset, "points", delta)
	return &j
}

// SweepMissed marks every unjudged note whose good window has fully
// passed. Must run once per tick while playing; it is quiet while
// paused or idle. Judgements come back in note order.
func (e *Engine) SweepMissed(now float64) []game.Judgement {
	if e.state != StatePlaying || e.paused {
		return nil
	}

	var missed []game.Judgement
	for i := range e.notes {
		note := &e.notes[i]
		if note.Judged {
			continue
		}
		offset := note.TimingOffset(now)
		if offset <= e.windows.Good {
			// sorted, so every later note is still in reach
			break
		}
		note.MarkMissed()
		_, _, mult := e.acc.Apply(game.TierMiss)
		j := game.Judgement{Tier: game.TierMiss, Offset: offset, Points: 0, Multiplier: mult}
		e.last, e.hasLast = j, true
		missed = append(missed, j)
	}
	return missed
}

// Pause freezes the session. Sweeps stay quiet until Resume and the
// player clock stops with it.
func (e *Engine) Pause() {
	if e.state != StatePlaying || e.paused {
		return
	}
	e.paused = true
	if nil != e.player {
		e.player.Pause()
	}
}

func (e *Engine) Resume() {
	if e.state != StatePlaying || !e.paused {
		return
	}
	e.paused = false
	if nil != e.player {
		e.player.Resume()
	}
}

// Summary is the final report for a session.
type Summary struct {
	Score    int
	Total    int
	Perfect  int
	Good     int
	Miss     int
	Accuracy float64
	MaxCombo int
}

// EndSession stops playback and reports the session totals. Without
// an active session the summary is zero. A paused session still
// counts as active and summarizes normally.
func (e *Engine) EndSession() Summary {
	if e.state != StatePlaying {
		return Summary{}
	}
	if nil != e.player {
		e.player.Stop()
	}
	e.state = StateEnded
	e.paused = false

	tally := e.acc.Tally()
	accuracy := 0.0
	if len(e.notes) > 0 {
		accuracy = float64(tally.Hits()) / float64(len(e.notes)) * 100.0
	}
	s := Summary{
		Score:    e.acc.Score(),
		Total:    len(e.notes),
		Perfect:  tally.Perfect,
		Good:     tally.Good,
		Miss:     tally.Miss,
		Accuracy: accuracy,
		MaxCombo: e.acc.MaxCombo(),
	}
	log.Info("session ended",
		"score", s.Score, "accuracy", s.Accuracy, "maxCombo", s.MaxCombo)
	return s
}

// Snapshot is a read-only view for rendering. Notes are value
// copies; the engine keeps the only live note state.
type Snapshot struct {
	Notes      []game.Note
	Score      int
	Combo      int
	Multiplier float64
	Last       *game.Judgement
	Playing    bool
	Paused     bool
}

// Snapshot reports the state visible around the given playback time:
// unjudged notes from 100ms behind to 2000ms ahead.
func (e *Engine) Snapshot(now float64) Snapshot {
	snap := Snapshot{
		Score:      e.acc.Score(),
		Combo:      e.acc.Combo(),
		Multiplier: e.acc.Multiplier(),
		Playing:    e.state == StatePlaying,
		Paused:     e.paused,
	}
	if e.hasLast {
		last := e.last
		snap.Last = &last
	}
	for _, note := range e.notes {
		if note.Judged {
			continue
		}
		rel := note.HitTime - now
		if rel > visibleAhead {
			break
		}
		if rel < -visiblePast {
			continue
		}
		snap.Notes = append(snap.Notes, note)
	}
	return snap
}

// AddNote injects a single note, keeping the list sorted by hit
// time. Among equal hit times the earlier insertion stays first.
func (e *Engine) AddNote(n game.Note) {
	i := sort.Search(len(e.notes), func(i int) bool {
		return e.notes[i].HitTime > n.HitTime
	})
	e.notes = append(e.notes, game.Note{})
	copy(e.notes[i+1:], e.notes[i:])
	e.notes[i] = n
}

// Clear drops all notes and scoring state. The session flag is left
// alone so a running session continues over an empty chart.
func (e *Engine) Clear() {
	e.notes = nil
	e.acc.Reset()
	e.hasLast = false
}

// Remaining is the number of notes not yet judged.
func (e *Engine) Remaining() int {
	count := 0
	for _, n := range e.notes {
		if !n.Judged {
			count++
		}
	}
	return count
}

// LastNoteTime is the hit time of the final note in milliseconds,
// zero with no notes.
func (e *Engine) LastNoteTime() float64 {
	if len(e.notes) == 0 {
		return 0
	}
	return e.notes[len(e.notes)-1].HitTime
}

// Replay runs a recorded input history against a beat list and
// returns the summary that session produces. Identical histories
// always reproduce identical summaries.
func Replay(windows game.Windows, beats []float64, inputs []float64) Summary {
	e := New(windows, nil)
	_ = e.StartSession(beats)

	times := make([]float64, len(inputs))
	copy(times, inputs)
	sort.Float64s(times)
	// Sweep before judging each input so a miss that fell due between
	// two inputs resets the combo before the later input scores, the
	// way the per-tick sweep of a live session does. At one timestamp
	// the sweepable and hittable notes are disjoint, so the order
	// changes no judgement, only the combo bookkeeping.
	for _, input := range times {
		e.SweepMissed(input)
		e.ProcessInput(input)
	}
	e.SweepMissed(e.LastNoteTime() + windows.Good + 1)
	return e.EndSession()
}
