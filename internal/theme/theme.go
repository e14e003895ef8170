package theme

import (
	"image/color"

	"everyrhythm/internal/game"
)

type Theme interface {
	RenderNote(lane int) string
	RenderHitField(lane int) string
	RenderJudgement(tier game.Tier) string
	JudgementColor(tier game.Tier) color.RGBA
}
