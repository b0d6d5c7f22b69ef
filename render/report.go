package render

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/lixenwraith/space-dozer/engine"
)

// WriteReport prints the final scoreboard once the terminal has been restored
func WriteReport(w io.Writer, s engine.Summary, colors bool) error {
	au := aurora.NewAurora(colors)

	headline := au.Bold(Headline(s.Reason))
	if s.Reason == engine.ReasonDied {
		headline = au.Red(Headline(s.Reason)).Bold()
	}

	score := au.Green(printer.Sprintf("%d", s.Score))
	if s.Score < 0 {
		score = au.Red(printer.Sprintf("%d", s.Score))
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n%s\n\n%s %s\n",
		headline,
		au.Cyan(printer.Sprintf("+ %d killed (x %d)", s.Kills, s.KillWeight)),
		au.Brown(printer.Sprintf("- %d seconds (x %d)", s.Seconds(), s.SecondPenalty)),
		au.Bold("Score:"),
		score.Bold(),
	)
	return err
}
