package batch

// Config holds construction settings for batch buffers.
type Config struct {
	// Capacity is the minimum capacity of every component slice.
	Capacity int
}

// Option mutates a Config.
type Option func(*Config)

// WithCapacity reserves room for at least n vectors so that later Append
// calls do not reallocate.
func WithCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Capacity = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func newLane(n int, cfg Config) []float64 {
	return make([]float64, n, max(n, cfg.Capacity))
}

func resizeLane(s []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n <= cap(s) {
		old := len(s)
		s = s[:n]
		if n > old {
			clear(s[old:])
		}
		return s
	}
	grown := make([]float64, n)
	copy(grown, s)
	return grown
}
