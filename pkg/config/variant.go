package config

import (
	"fmt"
	"strings"
)

// Variant is one of the four GOAT search modes. The zero value is plain GOAT.
type Variant int

const (
	GOAT Variant = iota
	GOATEntropy
	GOATExplore
	GOATDiversity
)

var variantKeywords = map[Variant]string{
	GOAT:          "GOAT",
	GOATEntropy:   "GOAT-ENTROPY",
	GOATExplore:   "GOAT-EXPLORE",
	GOATDiversity: "GOAT-DIVERSITY",
}

var variantSummaries = map[Variant]string{
	GOAT:          "Find global minimum and conformational ensemble",
	GOATEntropy:   "Maximize conformational entropy (most complete ensemble)",
	GOATExplore:   "Topology-free search (can break bonds)",
	GOATDiversity: "Maximize structural diversity (ignore energies)",
}

// Variants lists all modes in menu order.
func Variants() []Variant {
	return []Variant{GOAT, GOATEntropy, GOATExplore, GOATDiversity}
}

// Keyword returns the ORCA simple-input keyword, e.g. "GOAT-ENTROPY".
func (v Variant) Keyword() string {
	return variantKeywords[v]
}

// Slug returns the keyword lowercased with hyphens replaced by underscores,
// used in output file names, e.g. "goat_entropy".
func (v Variant) Slug() string {
	return strings.ReplaceAll(strings.ToLower(v.Keyword()), "-", "_")
}

// Summary returns a one-line description for menus and structured output.
func (v Variant) Summary() string {
	return variantSummaries[v]
}

func (v Variant) String() string {
	return v.Keyword()
}

// ParseVariant accepts a keyword ("GOAT-EXPLORE", case-insensitive) or a
// slug ("goat_explore").
func ParseVariant(s string) (Variant, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	needle = strings.ReplaceAll(needle, "_", "-")
	for _, v := range Variants() {
		if v.Keyword() == needle {
			return v, nil
		}
	}
	return GOAT, fmt.Errorf("unknown GOAT variant %q", s)
}

// MarshalYAML stores the keyword rather than the numeric value.
func (v Variant) MarshalYAML() (interface{}, error) {
	return v.Keyword(), nil
}

func (v *Variant) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
