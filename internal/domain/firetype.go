package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FireType selects the flavour of financial independence being planned for.
type FireType string

const (
	FireTraditional FireType = "traditional"
	FireCoast       FireType = "coast"
	FireBarista     FireType = "barista"
	FireLean        FireType = "lean"
	FireFat         FireType = "fat"
)

// ErrUnknownFireType is returned when a FIRE type name is not recognised.
var ErrUnknownFireType = errors.New("unknown FIRE type")

// FireTypes returns all FIRE types in selector order.
func FireTypes() []FireType {
	return []FireType{FireTraditional, FireCoast, FireBarista, FireLean, FireFat}
}

// ParseFireType resolves a case-insensitive FIRE type name. An empty name
// resolves to FireTraditional.
func ParseFireType(name string) (FireType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return FireTraditional, nil
	}
	for _, ft := range FireTypes() {
		if string(ft) == n {
			return ft, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of traditional, coast, barista, lean, fat)", ErrUnknownFireType, name)
}

// Multiplier returns how many years of expenses the FIRE number covers.
func (ft FireType) Multiplier() float64 {
	switch ft {
	case FireLean:
		return 20
	case FireFat:
		return 30
	default:
		return 25
	}
}

// Label is the display name of the FIRE type.
func (ft FireType) Label() string {
	switch ft {
	case FireCoast:
		return "Coast FIRE"
	case FireBarista:
		return "Barista FIRE"
	case FireLean:
		return "Lean FIRE"
	case FireFat:
		return "Fat FIRE"
	default:
		return "Traditional FIRE"
	}
}

// Tagline is the one-line summary shown next to the label.
func (ft FireType) Tagline() string {
	switch ft {
	case FireCoast:
		return "Stop contributing"
	case FireBarista:
		return "Part-time work"
	case FireLean:
		return "Minimal lifestyle"
	case FireFat:
		return "Luxury retirement"
	default:
		return "25x expenses"
	}
}

// Explanation describes the strategy behind the FIRE type.
func (ft FireType) Explanation() string {
	switch ft {
	case FireCoast:
		return "Once you hit Coast FIRE, your investments grow to full FIRE without additional contributions."
	case FireBarista:
		return "Save enough to cover most expenses, then work part-time to cover healthcare and extras."
	case FireLean:
		return "Minimize expenses and save 20x to retire early with a frugal lifestyle (higher withdrawal rate = more risk)."
	case FireFat:
		return "Save 30x your annual expenses for a more comfortable retirement with extra cushion."
	default:
		return "Save 25x your annual expenses and withdraw 4% per year to maintain your lifestyle indefinitely."
	}
}
