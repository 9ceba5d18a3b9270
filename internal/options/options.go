// Package options carries the form defaults for the assembly generators:
// the value sets a drafter picks from per family, and the family dash
// bases. Defaults ship compiled in and can be overridden from a YAML file;
// callers receive a value, never a global.
package options

import (
	"os"

	"gopkg.in/yaml.v3"
)

// HeaterOptions lists the selectable heater form values.
type HeaterOptions struct {
	Dash         string    `yaml:"dash"`
	Diameters    []int     `yaml:"diameters"`
	Heights      []float64 `yaml:"heights"`
	Models       []string  `yaml:"models"`
	Materials    []string  `yaml:"materials"`
	StackDiams   []int     `yaml:"stack_diams"`
	FlangeInlets []float64 `yaml:"flange_inlets"`
	GasSizes     []float64 `yaml:"gas_sizes"`
	GasMounts    []string  `yaml:"gas_mounts"`
	BTUs         []float64 `yaml:"btus"`
	Hands        []string  `yaml:"hands"`
	Labels       []string  `yaml:"labels"`
}

// TankOptions lists the selectable tank form values.
type TankOptions struct {
	Dash      string   `yaml:"dash"`
	Diameters []int    `yaml:"diameters"`
	HeightsFt []int    `yaml:"heights_ft"`
	Types     []string `yaml:"types"`
	Materials []string `yaml:"materials"`
}

// PumpOptions lists the selectable pump skid form values.
type PumpOptions struct {
	Dash      string    `yaml:"dash"`
	Counts    []string  `yaml:"counts"`
	Pressures []string  `yaml:"pressures"`
	Types     []string  `yaml:"types"`
	HPs       []float64 `yaml:"hps"`
	Materials []string  `yaml:"materials"`
	FrameLens []int     `yaml:"frame_lens"`
	FrameWids []int     `yaml:"frame_wids"`
	FrameHeis []int     `yaml:"frame_heis"`
}

// Defaults is one versioned snapshot of every option set.
type Defaults struct {
	Heater HeaterOptions `yaml:"heater"`
	Tank   TankOptions   `yaml:"tank"`
	Pump   PumpOptions   `yaml:"pump"`
}

// Recommended returns the compiled-in option sets.
func Recommended() Defaults {
	return Defaults{
		Heater: HeaterOptions{
			Dash:         "01",
			Diameters:    []int{30, 42, 54, 60, 76, 84, 96},
			Heights:      []float64{7, 8, 8.5, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			Models:       []string{"GP", "RM", "TE", "TE-NSF"},
			Materials:    []string{"304", "316", "AL6XN"},
			StackDiams:   []int{12, 18, 24, 30, 36},
			FlangeInlets: []float64{1, 1.25, 1.5, 2, 2.5, 3, 4, 6},
			GasSizes:     []float64{1, 1.5, 2, 2.5, 3},
			GasMounts:    []string{"BM", "FM"},
			BTUs:         []float64{1.2, 2, 3, 4.5, 5.5, 6, 7, 8, 9, 9.9, 10, 10.5, 11, 12, 12.5, 15, 18, 19, 20, 21, 25, 30},
			Hands:        []string{"LEFT", "RIGHT"},
			Labels:       []string{"A", "B", "C", "D", "1", "2", "3", "4"},
		},
		Tank: TankOptions{
			Dash:      "03",
			Diameters: []int{48, 54, 60, 66, 72, 78, 84, 90, 96, 102, 108, 114, 120, 126, 132, 138, 144, 150, 156, 162, 168},
			HeightsFt: []int{3, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35},
			Types:     []string{"HW", "TW", "CW", "CMF", "RO", "WW", "EQ"},
			Materials: []string{"304", "316"},
		},
		Pump: PumpOptions{
			Dash:      "05",
			Counts:    []string{"SIMPLEX", "DUPLEX", "TRIPLEX", "QUADPLEX"},
			Pressures: []string{"LP", "MP", "HP"},
			Types:     []string{"HW", "TW", "CW", "CMF", "RO", "WW"},
			HPs:       []float64{0.5, 0.75, 1, 2, 3, 5, 7.5, 10, 15, 20, 25, 30, 40, 50, 60, 75, 100},
			Materials: []string{"304", "316"},
			FrameLens: []int{55, 60, 70},
			FrameWids: []int{27, 30, 36},
			FrameHeis: []int{99, 120, 150},
		},
	}
}

// Load returns the recommended defaults, overlaid with a YAML file when
// FABLINE_OPTIONS names one. Sets absent from the file keep their
// compiled-in values.
func Load() (Defaults, error) {
	defaults := Recommended()
	path := os.Getenv("FABLINE_OPTIONS")
	if path == "" {
		return defaults, nil
	}
	return LoadFile(path)
}

// LoadFile overlays the recommended defaults with a YAML file.
func LoadFile(path string) (Defaults, error) {
	defaults := Recommended()
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, err
	}
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}
