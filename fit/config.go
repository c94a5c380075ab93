package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/growthfit/internal/options"
)

// Config holds the validated per-fit options. The zero value is not usable;
// build configurations through DefaultConfig or NewConfig.
type Config struct {
	// Correction selects the background-correction policy.
	Correction Mode

	// Blank is the aligned blank reference series, consumed only by
	// ModeBlank. Plate orchestration fills it from the table's blank
	// column when the caller has not supplied one.
	Blank []float64

	// TrimTime bounds the AUC metrics in time. It never affects the fit
	// itself. NaN means no trim: the full observed horizon is used.
	TrimTime float64

	// MaxIterations caps the optimizer's outer iterations.
	MaxIterations int

	// Tolerance is the relative residual-sum-of-squares improvement below
	// which an accepted optimizer step declares convergence.
	Tolerance float64
}

// DefaultConfig returns the default configuration: min correction, no time
// trim, and the documented optimizer defaults.
func DefaultConfig() Config {
	return Config{
		Correction:    ModeMin,
		TrimTime:      math.NaN(),
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// NewConfig builds a Config from DefaultConfig plus the given options and
// validates the combination. Invalid combinations are rejected here, before
// any fitting starts.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithCorrection sets the background-correction mode.
func WithCorrection(mode Mode) Option {
	return options.New(func(cfg *Config) error {
		if !mode.valid() {
			return fmt.Errorf("%w: unknown correction mode %d", ErrConfig, mode)
		}
		cfg.Correction = mode

		return nil
	})
}

// WithBlank sets the blank reference series used by ModeBlank.
func WithBlank(blank []float64) Option {
	return options.New(func(cfg *Config) error {
		if len(blank) == 0 {
			return fmt.Errorf("%w: empty blank series", ErrConfig)
		}
		cfg.Blank = blank

		return nil
	})
}

// WithTrimTime bounds the AUC metrics at time t. The bound applies to both
// the analytical and the empirical AUC so the two stay comparable.
func WithTrimTime(t float64) Option {
	return options.New(func(cfg *Config) error {
		if math.IsNaN(t) || t <= 0 {
			return fmt.Errorf("%w: trim time must be positive, got %v", ErrConfig, t)
		}
		cfg.TrimTime = t

		return nil
	})
}

// WithMaxIterations overrides the optimizer iteration cap.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max iterations must be positive, got %d", ErrConfig, n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithTolerance overrides the optimizer convergence tolerance.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *Config) error {
		if !(tol > 0) || math.IsInf(tol, 0) {
			return fmt.Errorf("%w: tolerance must be a positive finite value, got %v", ErrConfig, tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// Validate checks the configuration for inconsistent combinations.
func (c Config) Validate() error {
	if !c.Correction.valid() {
		return fmt.Errorf("%w: unknown correction mode %d", ErrConfig, c.Correction)
	}
	if c.Blank != nil && c.Correction != ModeBlank {
		return fmt.Errorf("%w: blank series provided but correction mode is %s", ErrConfig, c.Correction)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrConfig, c.MaxIterations)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance must be a positive finite value, got %v", ErrConfig, c.Tolerance)
	}
	if !math.IsNaN(c.TrimTime) && c.TrimTime <= 0 {
		return fmt.Errorf("%w: trim time must be positive, got %v", ErrConfig, c.TrimTime)
	}

	return nil
}

// TrimBound resolves the AUC integration bound: TrimTime when set, maxTime
// (normally the last observed time) otherwise.
func (c Config) TrimBound(maxTime float64) float64 {
	if math.IsNaN(c.TrimTime) {
		return maxTime
	}

	return c.TrimTime
}
