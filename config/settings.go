package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/space-dozer/entity"
)

// ErrInvalidSettings wraps every validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the tunable table. It is built once and handed to the game by value.
type Settings struct {
	RefreshInterval time.Duration `toml:"refresh_interval"` // fast tick: input + redraw
	TurnInterval    time.Duration `toml:"turn_interval"`    // slow tick: aliens + warp gates
	WarpChance      float64       `toml:"warp_chance"`      // per alien per turn

	// Fraction of grid cells seeded with each kind at startup, keyed by kind name
	Density map[string]float64 `toml:"density"`

	Glyphs        map[string]string `toml:"glyphs"`
	DozerHeadings map[string]string `toml:"dozer_headings"` // keyed by direction name
	Colors        map[string]string `toml:"colors"`         // tcell colour names, optional

	// Key name -> command name, see input.NewKeymap
	Keymap map[string]string `toml:"keymap"`

	KillWeight    int `toml:"kill_weight"`
	SecondPenalty int `toml:"second_penalty"`

	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`

	Seed           int64         `toml:"seed"` // 0 seeds from the clock
	ScoreboardHold time.Duration `toml:"scoreboard_hold"`
}

// Default returns the stock tuning
func Default() Settings {
	return Settings{
		RefreshInterval: 50 * time.Millisecond,
		TurnInterval:    500 * time.Millisecond,
		WarpChance:      0.05,
		Density: map[string]float64{
			"rock":     0.005,
			"dirt":     0.50,
			"warpgate": 0.01,
			"alien":    0.001,
		},
		Glyphs: map[string]string{
			"rock":     "☗",
			"dirt":     "☖",
			"warpgate": "♨",
			"alien":    "☄",
			"dozer":    "✧",
		},
		DozerHeadings: map[string]string{
			"right": "⫣",
			"left":  "⫦",
			"up":    "⫧",
			"down":  "⫨",
		},
		Colors: map[string]string{},
		Keymap: map[string]string{
			"esc": "stop",
			"x":   "stop",
			"k":   "up",
			"j":   "down",
			"h":   "left",
			"l":   "right",
		},
		KillWeight:     40,
		SecondPenalty:  1,
		MaxWidth:       150,
		MaxHeight:      50,
		ScoreboardHold: 2 * time.Second,
	}
}

// Load overlays a TOML file onto the defaults. Keys absent from the file keep their default.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse overlays TOML data onto the defaults and validates the result
func Parse(data []byte) (Settings, error) {
	s := Default()
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidSettings, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks ranges and that every kind has a glyph
func (s Settings) Validate() error {
	if s.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh_interval must be positive", ErrInvalidSettings)
	}
	if s.TurnInterval <= 0 {
		return fmt.Errorf("%w: turn_interval must be positive", ErrInvalidSettings)
	}
	if s.WarpChance < 0 || s.WarpChance > 1 {
		return fmt.Errorf("%w: warp_chance %v outside [0,1]", ErrInvalidSettings, s.WarpChance)
	}
	for name, d := range s.Density {
		k, err := entity.ParseKind(name)
		if err != nil {
			return fmt.Errorf("%w: density: %v", ErrInvalidSettings, err)
		}
		if k == entity.Dozer {
			return fmt.Errorf("%w: density: the dozer is not populated by density", ErrInvalidSettings)
		}
		if d < 0 || d > 1 {
			return fmt.Errorf("%w: density.%s %v outside [0,1]", ErrInvalidSettings, name, d)
		}
	}
	for _, k := range entity.Kinds {
		if s.Glyphs[k.String()] == "" {
			return fmt.Errorf("%w: glyphs.%s is empty", ErrInvalidSettings, k)
		}
	}
	for name := range s.DozerHeadings {
		if !isDirection(name) {
			return fmt.Errorf("%w: dozer_headings: unknown direction %q", ErrInvalidSettings, name)
		}
	}
	for name := range s.Colors {
		if _, err := entity.ParseKind(name); err != nil {
			return fmt.Errorf("%w: colors: %v", ErrInvalidSettings, err)
		}
	}
	if s.KillWeight < 0 || s.SecondPenalty < 0 {
		return fmt.Errorf("%w: score weights must not be negative", ErrInvalidSettings)
	}
	if s.MaxWidth <= 0 || s.MaxHeight <= 0 {
		return fmt.Errorf("%w: grid maxima must be positive", ErrInvalidSettings)
	}
	return nil
}

// DensityOf returns the startup density of kind k, zero if unset
func (s Settings) DensityOf(k entity.Kind) float64 {
	return s.Density[k.String()]
}

// Glyph returns the glyph for kind k
func (s Settings) Glyph(k entity.Kind) string {
	return s.Glyphs[k.String()]
}

// HeadingGlyph returns the dozer glyph for direction d, ok is false when none is configured
func (s Settings) HeadingGlyph(d entity.Direction) (string, bool) {
	g, ok := s.DozerHeadings[d.String()]
	return g, ok && g != ""
}

// Clone returns a copy that shares no maps with s
func (s Settings) Clone() Settings {
	c := s
	c.Density = maps.Clone(s.Density)
	c.Glyphs = maps.Clone(s.Glyphs)
	c.DozerHeadings = maps.Clone(s.DozerHeadings)
	c.Colors = maps.Clone(s.Colors)
	c.Keymap = maps.Clone(s.Keymap)
	return c
}

func isDirection(name string) bool {
	for _, d := range entity.Directions {
		if d.String() == name {
			return true
		}
	}
	return false
}
