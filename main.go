package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"everyrhythm/internal/config"
	"everyrhythm/internal/input"
)

func main() {
	if err := run(); nil != err {
		log.Fatal(err)
	}
}

func run() error {
	config.Init()

	logFile, err := os.OpenFile(*config.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	if *config.Debug {
		log.SetLevel(log.DebugLevel)
	}

	p := &Program{}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	if *config.History {
		fmt.Println(renderHistory(p.beatMap, p.journal.History(p.beatMap.Beats)))
		return nil
	}

	if err := p.Open(); nil != err {
		return err
	}

	events, closeKeyboard, err := input.Listen()
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer closeKeyboard()
	p.events = events

	summary, err := p.Play()
	if nil != err {
		return err
	}
	if summary.Total == 0 {
		// Quit during the countdown, nothing ran.
		return nil
	}

	fmt.Println(renderSummary(p.beatMap.Title, summary))
	if replays := p.journal.History(p.beatMap.Beats); len(replays) > 1 {
		fmt.Println(renderHistory(p.beatMap, replays))
	}
	return nil
}
