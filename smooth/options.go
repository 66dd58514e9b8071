package smooth

import (
	"github.com/YuminosukeSato/lowess/kernel"
)

// DefaultBandwidth is the conventional bandwidth fraction used when no
// option overrides it.
const DefaultBandwidth = 2.0 / 3.0

// config holds the per-call fit configuration. There is no process-wide
// state: every call assembles its own config from the defaults and the
// supplied options.
type config struct {
	bandwidth float64
	kernel    kernel.Func
	radial    bool
}

func newConfig(opts []Option) config {
	cfg := config{
		bandwidth: DefaultBandwidth,
		kernel:    kernel.Tricube,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option is a function that configures a single fit call.
type Option func(*config)

// WithBandwidth sets the bandwidth fraction in (0, 1], the proportion
// of the dataset radius used to scale the kernel. The rank
// ceil(bandwidth*n) must be a valid index into the sorted distance
// vector, so bandwidth 1.0 always fails; see RankOutOfRangeError.
func WithBandwidth(f float64) Option {
	return func(c *config) {
		c.bandwidth = f
	}
}

// WithKernel sets the kernel weighting function. Default is
// kernel.Tricube.
func WithKernel(k kernel.Func) Option {
	return func(c *config) {
		c.kernel = k
	}
}

// WithRadialKernel sets the radial-kernel mode flag of the N-D variant.
// The flag is accepted but not yet wired to an alternate weighting
// strategy: LowessND always weights by the kernel of Euclidean distance.
// The two candidate strategies are available directly as kernel.Weights
// and kernel.WeightsNonRadial.
func WithRadialKernel(radial bool) Option {
	return func(c *config) {
		c.radial = radial
	}
}
