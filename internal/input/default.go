package input

import (
	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
)

// Kind is the game meaning of a key press.
type Kind uint8

const (
	KindHit Kind = iota
	KindPause
	KindQuit
)

type Event struct {
	Kind Kind
}

// Listen opens the keyboard and translates presses into game events
// on the returned channel. Space is a hit and p toggles pause; esc
// or q quits. Anything else is dropped. The returned func releases
// the keyboard.
func Listen() (<-chan Event, func(), error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, nil, err
	}

	events := make(chan Event, 128)
	go func() {
		defer close(events)
		for key := range keys {
			if nil != key.Err {
				log.Error("unable to read keyboard", "err", key.Err)
				return
			}
			switch {
			case key.Key == keyboard.KeyEsc || key.Rune == 'q':
				events <- Event{Kind: KindQuit}
			case key.Key == keyboard.KeySpace:
				events <- Event{Kind: KindHit}
			case key.Rune == 'p':
				events <- Event{Kind: KindPause}
			}
		}
	}()

	deinit := func() {
		if err := keyboard.Close(); nil != err {
			log.Error("unable to close keyboard", "err", err)
		}
	}
	return events, deinit, nil
}
