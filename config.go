package raywalk

import "fmt"

// Tuning defaults. All values are world units (one unit = one grid cell).
const (
	DefaultMaxCastDistance = 24.0

	// DefaultSlideStep is a power-of-two fraction so repeated accumulation
	// stays exact in binary.
	DefaultSlideStep = 1.0 / 64

	DefaultBoundRadius = 0.25
)

// Config carries the tuning values for casting and motion resolution.
type Config struct {
	// MaxCastDistance is how far a ray travels before reporting a miss.
	// Must be positive.
	MaxCastDistance float64

	// SlideStep is the per-iteration increment used when sliding along a
	// wall. Valid range (0, 1]; smaller values resolve finer at the cost
	// of more iterations per move.
	SlideStep float64

	// BoundRadius is the mover's circular footprint. Valid range [0, 0.5)
	// so the footprint fits inside a single cell.
	BoundRadius float64
}

// DefaultConfig returns the tuning values used by the demos.
func DefaultConfig() Config {
	return Config{
		MaxCastDistance: DefaultMaxCastDistance,
		SlideStep:       DefaultSlideStep,
		BoundRadius:     DefaultBoundRadius,
	}
}

// Validate reports the first out-of-range tuning value.
func (c Config) Validate() error {
	if c.MaxCastDistance <= 0 {
		return fmt.Errorf("config: max cast distance %v, want > 0", c.MaxCastDistance)
	}
	if c.SlideStep <= 0 || c.SlideStep > 1 {
		return fmt.Errorf("config: slide step %v, want in (0, 1]", c.SlideStep)
	}
	if c.BoundRadius < 0 || c.BoundRadius >= 0.5 {
		return fmt.Errorf("config: bound radius %v, want in [0, 0.5)", c.BoundRadius)
	}
	return nil
}
