package engine

import "time"

// Summary is the read-only scoreboard handed to the presentation layer
type Summary struct {
	Kills         int
	Elapsed       time.Duration
	KillWeight    int
	SecondPenalty int
	Score         int
	Reason        StopReason
}

// Seconds is the elapsed time truncated to whole seconds
func (s Summary) Seconds() int {
	return int(s.Elapsed / time.Second)
}

// FinalScore weighs kills against whole elapsed seconds; it may be negative
func FinalScore(kills, seconds, killWeight, secondPenalty int) int {
	return kills*killWeight - seconds*secondPenalty
}

// Summary reports the current or final scoreboard
func (g *Game) Summary() Summary {
	end := g.stoppedAt
	if g.state != Stopped {
		end = g.clock.Now()
	}
	s := Summary{
		Kills:         g.world.Score(),
		Elapsed:       end.Sub(g.started),
		KillWeight:    g.settings.KillWeight,
		SecondPenalty: g.settings.SecondPenalty,
		Reason:        g.reason,
	}
	s.Score = FinalScore(s.Kills, s.Seconds(), s.KillWeight, s.SecondPenalty)
	return s
}
