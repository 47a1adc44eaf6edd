package config

import "sort"

// Presets are named morph settings for the not-found title.
var Presets = map[string]*MorphConfig{
	"notfound": {
		Text: DefaultText, IntervalMs: 500, PauseMs: 1500,
		Substitutions: DefaultSubstitutions(),
	},
	"glitch": {
		Text: "404 — page not found", IntervalMs: 80, PauseMs: 400,
		Substitutions: []SubstitutionConfig{
			{From: "a", To: "4"}, {From: "e", To: "3"}, {From: "o", To: "0"},
			{From: "g", To: "9"}, {From: "t", To: "7"}, {From: "u", To: "µ"},
		},
	},
	"calm": {
		Text: DefaultText, IntervalMs: 800, PauseMs: 3000,
		Substitutions: DefaultSubstitutions(),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *MorphConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Substitutions = append([]SubstitutionConfig(nil), p.Substitutions...)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
