package theme

import (
	"fmt"
	"image/color"

	"everyrhythm/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane int) string {
	c := noteColor
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

// RenderJudgement is the colored label for a judgement, padded so any
// tier overwrites any other cleanly.
func (t *DefaultTheme) RenderJudgement(tier game.Tier) string {
	c := t.JudgementColor(tier)
	return fmt.Sprintf("\033[1m\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, labels[tier])
}

func (t *DefaultTheme) JudgementColor(tier game.Tier) color.RGBA {
	col, ok := tierColors[tier]
	if !ok {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return col
}

const (
	noteSym = "⬤"
	barSym  = "─"
)

var (
	noteColor = color.RGBA{R: 236, G: 128, B: 0, A: 255} // carrot orange
	labels    = map[game.Tier]string{
		game.TierPerfect: "PERFECT",
		game.TierGood:    "   GOOD",
		game.TierMiss:    "   MISS",
	}
	tierColors = map[game.Tier]color.RGBA{
		game.TierPerfect: {255, 215, 0, 255},   // gold
		game.TierGood:    {192, 192, 192, 255}, // silver
		game.TierMiss:    {220, 20, 60, 255},   // crimson
	}
)
