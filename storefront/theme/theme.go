// Package theme holds the storefront colour themes, their style table and
// the persisted preference.
package theme

import "strings"

type Theme string

const (
	Light  Theme = "light"
	Yellow Theme = "yellow"
	Dark   Theme = "dark"
)

const Default = Light

// cycle is the toggle order.
var cycle = []Theme{Light, Yellow, Dark}

// Parse returns the theme named by s, falling back to Default for anything
// unrecognised.
func Parse(s string) Theme {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t
	}
	return Default
}

func (t Theme) Valid() bool {
	for _, c := range cycle {
		if t == c {
			return true
		}
	}
	return false
}

// Next is the theme after t in the toggle cycle light, yellow, dark.
func (t Theme) Next() Theme {
	for i, c := range cycle {
		if t == c {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return Default
}

func (t Theme) String() string {
	return string(t)
}

func All() []Theme {
	return append([]Theme(nil), cycle...)
}
