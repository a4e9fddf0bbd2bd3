package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var amountReplacer = strings.NewReplacer(",", "", "_", "", " ", "")

// ParseAmount converts user-entered text into a finite number. A leading
// "$" on either side of the sign, thousands separators and a trailing
// percent sign are tolerated. Anything that does not parse to a finite
// value yields 0.
func ParseAmount(text string) float64 {
	s := strings.TrimSpace(text)
	sign := 1.0
	if rest, ok := strings.CutPrefix(s, "-"); ok && strings.HasPrefix(rest, "$") {
		sign, s = -1, rest
	}
	s = strings.TrimPrefix(s, "$")
	if sign < 0 && strings.HasPrefix(s, "-") {
		return 0
	}
	s = strings.TrimSuffix(s, "%")
	s = amountReplacer.Replace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return sign * v
}

// NonNegative clamps v to zero from below.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Amount is a numeric plan field decoded with ParseAmount semantics, so a
// malformed value in a plan file reads as 0 instead of failing the load.
type Amount float64

// Float64 returns the amount as a float64.
func (a Amount) Float64() float64 { return float64(a) }

// UnmarshalYAML implements lenient scalar decoding for Amount.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got a %s", value.Line, nodeKindName(value.Kind))
	}
	*a = Amount(ParseAmount(value.Value))
	return nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
