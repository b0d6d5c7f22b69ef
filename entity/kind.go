package entity

import "fmt"

// Kind is the closed set of things that can occupy a grid cell
type Kind uint8

const (
	Rock Kind = iota
	Dirt
	Warpgate
	Alien
	Dozer
)

// Kinds lists every kind in population order
var Kinds = [...]Kind{Rock, Dirt, Warpgate, Alien, Dozer}

var kindNames = [...]string{
	Rock:     "rock",
	Dirt:     "dirt",
	Warpgate: "warpgate",
	Alien:    "alien",
	Dozer:    "dozer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind resolves a lower-case kind name as used in config files
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", name)
}
