package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/space-dozer/config"
	"github.com/lixenwraith/space-dozer/entity"
	"github.com/lixenwraith/space-dozer/input"
)

// State of the game loop
type State uint8

const (
	Running State = iota
	Stopped
)

// StopReason records why the loop ended
type StopReason uint8

const (
	ReasonNone StopReason = iota
	ReasonDied
	ReasonQuit
	ReasonInterrupted
)

func (r StopReason) String() string {
	switch r {
	case ReasonDied:
		return "died"
	case ReasonQuit:
		return "quit"
	case ReasonInterrupted:
		return "interrupted"
	}
	return "none"
}

// KeySource yields at most one pending keypress without blocking
type KeySource interface {
	PollKey() (input.Key, bool)
}

// View presents the world. Render redraws everything; Erase clears one cell.
type View interface {
	Render(w *World)
	Erase(pos entity.Position)
}

// Game drives one session from population to the final summary
type Game struct {
	settings config.Settings
	world    *World
	keys     KeySource
	view     View
	keymap   *input.Keymap
	dice     Dice
	clock    TimeProvider
	logger   *zap.SugaredLogger

	state     State
	reason    StopReason
	started   time.Time
	stoppedAt time.Time
	lastTurn  time.Time
	turns     uint64
}

// Option customizes a Game at construction
type Option func(*Game)

// WithDice replaces the seeded random source
func WithDice(d Dice) Option {
	return func(g *Game) { g.dice = d }
}

// WithClock replaces the system clock
func WithClock(c TimeProvider) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger attaches a logger, the default discards
func WithLogger(l *zap.SugaredLogger) Option {
	return func(g *Game) { g.logger = l }
}

// WithWorld supplies a prepared world instead of populating one by density
func WithWorld(w *World) Option {
	return func(g *Game) { g.world = w }
}

// NewGame validates settings, builds the keymap and populates the world
func NewGame(settings config.Settings, grid entity.Grid, keys KeySource, view View, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	keymap, err := input.NewKeymap(settings.Keymap)
	if err != nil {
		return nil, fmt.Errorf("build keymap: %w", err)
	}
	if grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("grid %dx%d is empty", grid.Width, grid.Height)
	}
	if keys == nil {
		return nil, errors.New("no key source")
	}
	if view == nil {
		return nil, errors.New("no view")
	}

	g := &Game{
		settings: settings.Clone(),
		keys:     keys,
		view:     view,
		keymap:   keymap,
		clock:    RealTime{},
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.dice == nil {
		seed := settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.dice = rand.New(rand.NewSource(seed))
	}

	if g.world == nil {
		g.world = NewWorld(grid)
		densities := make(Densities, len(populationOrder))
		for _, k := range populationOrder {
			densities[k] = settings.DensityOf(k)
		}
		g.world.Populate(densities, g.dice)
	}
	g.world.OnKill(g.killed)

	g.started = g.clock.Now()
	g.lastTurn = g.started

	g.logger.Infow("game created",
		"grid", fmt.Sprintf("%dx%d", g.world.Grid.Width, g.world.Grid.Height),
		"rocks", len(g.world.Rocks),
		"dirts", len(g.world.Dirts),
		"warpgates", len(g.world.Warpgates),
		"aliens", len(g.world.Aliens),
	)

	return g, nil
}

// World exposes the simulation state
func (g *Game) World() *World {
	return g.world
}

// State returns the loop state
func (g *Game) State() State {
	return g.state
}

// Step runs one fast tick: death check, one keypress, sweep, the slow
// turn when it is due, then a redraw
func (g *Game) Step() State {
	if g.state == Stopped {
		return g.state
	}
	if !g.world.Dozer.Alive() {
		g.stop(ReasonDied)
		return g.state
	}

	if key, ok := g.keys.PollKey(); ok {
		g.dispatch(g.keymap.Lookup(key))
		if g.state == Stopped {
			return g.state
		}
	}

	g.world.Sweep()

	now := g.clock.Now()
	if now.Sub(g.lastTurn) >= g.settings.TurnInterval {
		report := g.world.Turn(g.dice, g.settings.WarpChance)
		g.turns++
		g.lastTurn = now
		for _, e := range report.Emitted {
			g.logger.Debugw("warpgate activated", "emitted", e.Kind, "pos", e.Pos)
		}
		g.logger.Debugw("turn", "n", g.turns, "opened", len(report.Opened), "aliens", len(g.world.Aliens), "warpgates", len(g.world.Warpgates), "score", g.world.Score())
		if !g.world.Dozer.Alive() {
			g.stop(ReasonDied)
			return g.state
		}
	}

	g.view.Render(g.world)
	return g.state
}

// Run steps the game every refresh interval until it stops or ctx is cancelled
func (g *Game) Run(ctx context.Context) Summary {
	ticker := time.NewTicker(g.settings.RefreshInterval)
	defer ticker.Stop()

	for g.Step() == Running {
		select {
		case <-ctx.Done():
			g.stop(ReasonInterrupted)
		case <-ticker.C:
		}
	}
	return g.Summary()
}

// Stop ends the game from outside the loop
func (g *Game) Stop(reason StopReason) {
	g.stop(reason)
}

func (g *Game) dispatch(cmd input.Command) {
	dozer := g.world.Dozer
	switch cmd {
	case input.CommandStop:
		g.stop(ReasonQuit)
	case input.CommandInterrupt:
		g.stop(ReasonInterrupted)
	case input.CommandUp:
		g.world.TryMove(dozer, entity.Up)
	case input.CommandDown:
		g.world.TryMove(dozer, entity.Down)
	case input.CommandLeft:
		g.world.TryMove(dozer, entity.Left)
	case input.CommandRight:
		g.world.TryMove(dozer, entity.Right)
	}
}

func (g *Game) stop(reason StopReason) {
	if g.state == Stopped {
		return
	}
	g.state = Stopped
	g.reason = reason
	g.stoppedAt = g.clock.Now()
	s := g.Summary()
	g.logger.Infow("game stopped", "reason", reason, "kills", s.Kills, "elapsed", s.Elapsed, "score", s.Score)
}

func (g *Game) killed(e *entity.Entity) {
	g.view.Erase(e.Pos)
	g.logger.Debugw("killed", "kind", e.Kind, "pos", e.Pos)
}
