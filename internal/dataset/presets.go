package dataset

import "sort"

// Inputs carry a trailing 1.0 for the bias weight.
var presets = map[string]func() Dataset{
	"single": Single,
	"or":     OR,
	"and":    AND,
}

// Single is one example with a continuous target.
func Single() Dataset {
	return Dataset{
		Name: "single",
		Examples: []Example{
			{Input: []float64{1.0, 0.0, 1.0}, Target: 0.8},
		},
	}
}

// OR is the two-input boolean OR truth table.
func OR() Dataset {
	return booleanTable("or", [4]float64{0, 1, 1, 1})
}

// AND is the two-input boolean AND truth table.
func AND() Dataset {
	return booleanTable("and", [4]float64{0, 0, 0, 1})
}

func booleanTable(name string, targets [4]float64) Dataset {
	return Dataset{
		Name: name,
		Examples: []Example{
			{Input: []float64{0.0, 0.0, 1.0}, Target: targets[0]},
			{Input: []float64{0.0, 1.0, 1.0}, Target: targets[1]},
			{Input: []float64{1.0, 0.0, 1.0}, Target: targets[2]},
			{Input: []float64{1.0, 1.0, 1.0}, Target: targets[3]},
		},
	}
}

// Preset returns a built-in dataset by name.
func Preset(name string) (Dataset, bool) {
	build, ok := presets[name]
	if !ok {
		return Dataset{}, false
	}
	return build(), true
}

// PresetNames lists the built-in datasets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
