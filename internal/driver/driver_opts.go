package driver

import "time"

type DriverOpt func(*Driver)

// WithTickLength sets the interval between housekeeping ticks.
func WithTickLength(d time.Duration) DriverOpt {
	return func(dr *Driver) {
		dr.tickLength = d
	}
}
