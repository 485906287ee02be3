package sim

import cfg "github.com/Gllitch404/TrabalhoCG/config"

type options struct {
	threshold    float64
	avatarSpeed  float64
	spatialIndex bool
	cellSize     int
}

func defaultOptions() options {
	return options{
		threshold:    cfg.Sim.ProximityThreshold,
		avatarSpeed:  cfg.Sim.AvatarSpeed,
		spatialIndex: cfg.Sim.SpatialIndex,
		cellSize:     cfg.Sim.IndexCellSize,
	}
}

// Option overrides a config.Sim default for one world.
type Option func(*options)

// WithThreshold sets the proximity distance, in world units, below which a
// pair is flagged.
func WithThreshold(threshold float64) Option {
	return func(o *options) { o.threshold = threshold }
}

// WithAvatarSpeed sets how far the controlled body moves per tick along the
// longer world axis.
func WithAvatarSpeed(speed float64) Option {
	return func(o *options) { o.avatarSpeed = speed }
}

// WithSpatialIndex switches the proximity broad phase on or off. Results are
// the same either way.
func WithSpatialIndex(enabled bool) Option {
	return func(o *options) { o.spatialIndex = enabled }
}

// WithIndexCellSize sets the broad-phase cell edge in world units. Values
// below the threshold are raised to it; values below 1 keep the default.
func WithIndexCellSize(cells int) Option {
	return func(o *options) {
		if cells >= 1 {
			o.cellSize = cells
		}
	}
}
