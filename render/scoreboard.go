package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/space-dozer/engine"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Headline is the first scoreboard line for each way a game can end
func Headline(reason engine.StopReason) string {
	switch reason {
	case engine.ReasonDied:
		return "You have died."
	case engine.ReasonInterrupted:
		return "Interrupted."
	default:
		return "You left the yard."
	}
}

// ScoreboardLines lays out the final tally
func ScoreboardLines(s engine.Summary) []string {
	return []string{
		Headline(s.Reason),
		"",
		printer.Sprintf("+ %d killed (x %d)", s.Kills, s.KillWeight),
		printer.Sprintf("- %d seconds (x %d)", s.Seconds(), s.SecondPenalty),
		"",
		printer.Sprintf("Score: %d", s.Score),
	}
}

// Scoreboard clears the surface and centers the final tally on it
func (r *Renderer) Scoreboard(s engine.Summary) {
	lines := ScoreboardLines(s)
	cols, rows := r.surface.Size()
	top := (rows - len(lines)) / 2

	r.surface.Clear()
	for i, line := range lines {
		left := (cols - runewidth.StringWidth(line)) / 2
		r.surface.SetCursor(max(left, 0), max(top+i, 0))
		r.surface.DrawGlyph(line, tcell.StyleDefault)
	}
	r.surface.Refresh()
}
