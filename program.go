package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"everyrhythm/internal/audio"
	"everyrhythm/internal/config"
	"everyrhythm/internal/engine"
	"everyrhythm/internal/game"
	"everyrhythm/internal/input"
	"everyrhythm/internal/parser"
	"everyrhythm/internal/render"
	"everyrhythm/internal/score"
	"everyrhythm/internal/theme"
)

// Frames a judgement flash stays on screen.
const flashFrames = 30

// Milliseconds to keep the session open after the final note.
const endTailMs = 2000.0

type Program struct {
	Parser   parser.Parser
	Renderer render.Renderer
	Theme    theme.Theme

	journal score.Journal
	player  *audio.Player
	engine  *engine.Engine
	events  <-chan input.Event

	audioFile, beatFile string
	beatMap             *game.BeatMap

	rows, columns int
	hitRow        int
	noteCol       int
	sideCol       int
	center        int

	// Stats for the current session
	counts    [3]int
	inputs    []float64
	paused    bool
	wasPaused bool
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Renderer = &render.DefaultRenderer{}
	p.Theme = &theme.DefaultTheme{}

	if err := filepath.Walk(*config.Directory, func(file string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg", ".wav", ".flac":
			p.audioFile = file
		case ".beats", ".txt", ".json":
			p.beatFile = file
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	if p.beatFile == "" {
		return errors.New("unable to find a beat file in given directory")
	}

	var err error
	p.beatMap, err = p.Parser.Parse(p.beatFile)
	if nil != err {
		return err
	}
	log.Info("beat map loaded",
		"title", p.beatMap.Title, "tempo", p.beatMap.Tempo, "beats", len(p.beatMap.Beats))

	if err := p.journal.Init(*config.Database); nil != err {
		return fmt.Errorf("unable to open replay journal: %w", err)
	}
	return nil
}

// Open decodes the song and prepares the terminal geometry and the
// engine. History mode never calls it.
func (p *Program) Open() error {
	if p.audioFile == "" {
		return errors.New("unable to find an audio file in given directory")
	}
	var err error
	p.player, err = audio.Open(p.audioFile)
	if nil != err {
		return err
	}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	p.rows, p.columns = rows, columns
	p.noteCol = p.columns >> 1
	p.center = p.rows >> 1
	p.hitRow = p.rows - int(*config.BarRow)
	p.sideCol = p.noteCol - 36
	if p.sideCol < 2 {
		p.sideCol = 2
	}

	p.engine = engine.New(config.Windows(), p.player)
	return nil
}

func (p *Program) Deinit() {
	p.journal.Deinit()
	if nil != p.player {
		p.player.Close()
	}
}

func (p *Program) Play() (engine.Summary, error) {
	p.player.SetVolume(*config.Volume)

	if err := p.Renderer.Init(); nil != err {
		return engine.Summary{}, fmt.Errorf("unable to init renderer: %w", err)
	}
	defer func() {
		if err := p.Renderer.Deinit(); nil != err {
			log.Error("unable to restore terminal", "err", err)
		}
	}()

	started := false
	var startErr error
	p.Renderer.RenderLoop(*config.Delay, func(now time.Time, duration time.Duration) bool {
		if !started {
			if duration < 0 {
				if !p.drainCountdown() {
					return false
				}
				p.Renderer.Fill(p.center, p.noteCol-2, fmt.Sprintf("%5.1f", -duration.Seconds()))
				return true
			}
			p.Renderer.Fill(p.center, p.noteCol-2, "     ")
			if startErr = p.engine.StartSession(p.beatMap.Beats); nil != startErr {
				return false
			}
			started = true
		}

		return p.frame()
	})

	if nil != startErr {
		return engine.Summary{}, startErr
	}

	summary := engine.Summary{}
	if started {
		summary = p.engine.EndSession()
	}
	p.record(started)
	return summary, nil
}

// drainCountdown consumes presses made before the session starts so
// they cannot fire as inputs on the first frame. Quit still works.
func (p *Program) drainCountdown() bool {
	for i := 0; i < len(p.events); i++ {
		if ev := <-p.events; ev.Kind == input.KindQuit {
			return false
		}
	}
	return true
}

// record persists the finished session's inputs. A session aborted
// before its first frame leaves no journal entry.
func (p *Program) record(started bool) {
	if !started {
		return
	}
	p.journal.Record(p.beatMap.Beats, p.inputs)
}

func (p *Program) frame() bool {
	nowMs := p.player.Position() + float64(config.Offset.Milliseconds())

	// get the key inputs that occured so far
	for i := 0; i < len(p.events); i++ {
		ev := <-p.events
		switch ev.Kind {
		case input.KindQuit:
			return false
		case input.KindPause:
			if p.paused {
				p.engine.Resume()
			} else {
				p.engine.Pause()
			}
			p.paused = !p.paused
		case input.KindHit:
			if p.paused {
				continue
			}
			p.inputs = append(p.inputs, nowMs)
			if j := p.engine.ProcessInput(nowMs); nil != j {
				p.counts[int(j.Tier)]++
				c := p.Theme.JudgementColor(j.Tier)
				p.Renderer.AddDecoration(p.noteCol, p.hitRow,
					fmt.Sprintf("\033[1;38;2;%v;%v;%vm✦\033[0m", c.R, c.G, c.B), flashFrames)
			}
		}
	}

	for _, j := range p.engine.SweepMissed(nowMs) {
		p.counts[int(j.Tier)]++
		p.Renderer.AddDecoration(p.noteCol-1, p.center-1, "\033[1;31m╭\033[0m", flashFrames)
		p.Renderer.AddDecoration(p.noteCol+1, p.center-1, "\033[1;31m╮\033[0m", flashFrames)
		p.Renderer.AddDecoration(p.noteCol-1, p.center, "\033[1;31m╰\033[0m", flashFrames)
		p.Renderer.AddDecoration(p.noteCol+1, p.center, "\033[1;31m╯\033[0m", flashFrames)
	}

	snap := p.engine.Snapshot(nowMs)
	p.render(nowMs, snap)

	if p.engine.Remaining() == 0 && nowMs > p.engine.LastNoteTime()+endTailMs {
		return false
	}
	return !p.player.Done()
}

func (p *Program) render(nowMs float64, snap engine.Snapshot) {
	// Clear the note column and redraw the hit bar
	for row := 1; row < p.rows; row++ {
		p.Renderer.Fill(row, p.noteCol, " ")
	}
	p.Renderer.Fill(p.hitRow, p.noteCol, p.Theme.RenderHitField(0))

	// Notes fall toward the hit bar
	for _, note := range snap.Notes {
		rel := note.HitTime - nowMs
		row := p.hitRow - int(math.Round(rel/config.ScrollSpeed))
		if row > 0 && row < p.rows {
			p.Renderer.Fill(row, p.noteCol, p.Theme.RenderNote(note.Lane))
		}
	}

	p.Renderer.Fill(1, 2, fmt.Sprintf("%5.1fs / %5.1fs  %v",
		nowMs/1000.0, p.player.Duration()/1000.0, p.beatMap.Title))

	p.Renderer.Fill(10, p.sideCol, fmt.Sprintf("      Score:  %6v", snap.Score))
	p.Renderer.Fill(11, p.sideCol, fmt.Sprintf("      Combo:  %6v", snap.Combo))
	p.Renderer.Fill(12, p.sideCol, fmt.Sprintf(" Multiplier:  %6.1f", snap.Multiplier))
	p.Renderer.Fill(13, p.sideCol, fmt.Sprintf("  Remaining:  %6v", p.engine.Remaining()))
	if nil != snap.Last {
		p.Renderer.Fill(15, p.sideCol, fmt.Sprintf("%v  %+6.1fms",
			p.Theme.RenderJudgement(snap.Last.Tier), snap.Last.Offset))
	}
	for i, tier := range []game.Tier{game.TierPerfect, game.TierGood, game.TierMiss} {
		p.Renderer.FillColor(18+i, p.sideCol, p.Theme.JudgementColor(tier),
			fmt.Sprintf("%10v:  %6v", tier, p.counts[i]))
	}

	if snap.Paused {
		p.Renderer.Fill(p.center, p.noteCol-2, "\033[1mPAUSED\033[0m")
	} else if p.wasPaused {
		p.Renderer.Fill(p.center, p.noteCol-2, "      ")
	}
	p.wasPaused = snap.Paused
}
