package timer

import (
	"fmt"
	"strings"
)

type Preset struct {
	Name    string `json:"name"`
	Seconds int    `json:"duration"`
}

// Label is the MM:SS rendering shown next to the preset name.
func (p Preset) Label() string {
	return FormatShort(p.Seconds)
}

var presets = []Preset{
	{Name: "Quick HIIT", Seconds: 240},
	{Name: "Tabata Round", Seconds: 20},
	{Name: "Rest Period", Seconds: 60},
	{Name: "Long Cardio", Seconds: 1800},
}

// Presets returns a copy of the fixed preset catalog, in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// FindPreset looks a preset up by name, ignoring case and surrounding spaces.
func FindPreset(name string) (Preset, error) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: unknown preset [%s]", ErrInvalidConfiguration, name)
}
