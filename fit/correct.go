package fit

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Mode selects the background-correction policy applied before fitting.
type Mode uint8

const (
	// ModeMin subtracts the series' own minimum from every point.
	ModeMin Mode = iota
	// ModeBlank subtracts an aligned blank series point by point.
	ModeBlank
	// ModeNone passes the series through unchanged.
	ModeNone
)

// modeNames maps Mode to its string representation.
var modeNames = map[Mode]string{
	ModeMin:   "min",
	ModeBlank: "blank",
	ModeNone:  "none",
}

// String returns the string representation of the correction mode.
func (m Mode) String() string {
	if name, exists := modeNames[m]; exists {
		return name
	}

	return "unknown"
}

// modeFromString maps string names to Mode.
var modeFromString = map[string]Mode{
	"min":   ModeMin,
	"blank": ModeBlank,
	"none":  ModeNone,
}

// ModeFromString returns the Mode for a given name. The second return value
// is false for unknown names.
func ModeFromString(name string) (Mode, bool) {
	mode, exists := modeFromString[name]
	return mode, exists
}

func (m Mode) valid() bool {
	_, exists := modeNames[m]
	return exists
}

// Correct applies the configured background correction to a raw value
// series and returns a new slice of the same length; the input is never
// modified. Corrected values are not floored at zero: negative values pass
// through and may later surface as a diagnostic note on the fit.
//
// For ModeBlank the configuration must carry a blank series of the same
// length as values; a missing or misaligned blank fails with ErrConfig.
func Correct(values []float64, cfg Config) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty value series", ErrConfig)
	}

	switch cfg.Correction {
	case ModeMin:
		minValue := floats.Min(values)
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = v - minValue
		}

		return out, nil

	case ModeBlank:
		if cfg.Blank == nil {
			return nil, fmt.Errorf("%w: blank correction requires a blank series", ErrConfig)
		}
		if len(cfg.Blank) != len(values) {
			return nil, fmt.Errorf("%w: blank series has %d points, sample has %d",
				ErrConfig, len(cfg.Blank), len(values))
		}
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = v - cfg.Blank[i]
		}

		return out, nil

	case ModeNone:
		return slices.Clone(values), nil

	default:
		return nil, fmt.Errorf("%w: unknown correction mode %d", ErrConfig, cfg.Correction)
	}
}
