package filesystem

import (
	"time"
)

// config holds construction parameters shared by raw descriptor streams.
type config struct {
	// latency is an artificial delay inserted before each underlying
	// transfer.
	latency time.Duration
}

// Option configures a raw descriptor stream at construction.
type Option func(*config)

// WithTransferLatency inserts an artificial delay before every underlying
// transfer. It exists to make buffering behavior observable under test and
// defaults to zero; it is not a correctness requirement.
func WithTransferLatency(latency time.Duration) Option {
	return func(c *config) {
		c.latency = latency
	}
}
