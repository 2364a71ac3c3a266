// Package category defines the fixed PESTLE classification taxonomy.
package category

import (
	"fmt"
	"strings"
)

// Category is one of the six fixed PESTLE buckets an entry belongs to.
type Category string

const (
	Political     Category = "Political"
	Economic      Category = "Economic"
	Social        Category = "Social"
	Technological Category = "Technological"
	Legal         Category = "Legal"
	Environmental Category = "Environmental"
)

// All returns the six categories in canonical PESTLE order. Report and
// summary output depend on this order, never alphabetical.
func All() []Category {
	return []Category{
		Political,
		Economic,
		Social,
		Technological,
		Legal,
		Environmental,
	}
}

// Valid reports whether c is one of the six categories.
func (c Category) Valid() bool {
	for _, candidate := range All() {
		if c == candidate {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Noun returns the lowercase name used for subcommands and flags.
func (c Category) Noun() string {
	return strings.ToLower(string(c))
}

// Aliases returns the accepted short forms for CLI input.
func (c Category) Aliases() []string {
	noun := c.Noun()
	aliases := []string{noun[:3]}
	// "environmental" and "economic" collide on single letters with nothing;
	// PESTLE assigns each category a distinct initial.
	switch c {
	case Political:
		aliases = append(aliases, "p")
	case Economic:
		aliases = append(aliases, "e")
	case Social:
		aliases = append(aliases, "s")
	case Technological:
		aliases = append(aliases, "t", "tech")
	case Legal:
		aliases = append(aliases, "l")
	case Environmental:
		aliases = append(aliases, "env")
	}
	return aliases
}

// Icon returns the marker shown next to the category in terminal output.
func (c Category) Icon() string {
	switch c {
	case Political:
		return "🏛️"
	case Economic:
		return "💰"
	case Social:
		return "👥"
	case Technological:
		return "💻"
	case Legal:
		return "⚖️"
	case Environmental:
		return "🌱"
	}
	return ""
}

// Parse resolves raw user input (full name, noun, or alias, any case) to a
// Category.
func Parse(raw string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", fmt.Errorf("category: empty category")
	}
	for _, c := range All() {
		if needle == c.Noun() {
			return c, nil
		}
		for _, alias := range c.Aliases() {
			if needle == alias {
				return c, nil
			}
		}
	}
	return "", fmt.Errorf("category: unknown category %q", raw)
}
