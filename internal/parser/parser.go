package parser

import "everyrhythm/internal/game"

type Parser interface {
	Parse(file string) (*game.BeatMap, error)
}
