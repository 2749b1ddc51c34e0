package config

import "math"

// SpeedRamp computes speed-ups from a count of scoring events
// (points eaten, bricks broken).
type SpeedRamp struct {
	cfg RampConfig
}

// NewSpeedRamp creates a new speed ramp.
func NewSpeedRamp(cfg RampConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether speed progression is active.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Every > 0 && r.cfg.Factor > 0
}

// Next returns the speed after count events. The speed only changes when
// count is a positive multiple of Every; the result never exceeds MaxSpeed.
func (r *SpeedRamp) Next(count int, speed float64) (float64, bool) {
	if !r.IsEnabled() || count <= 0 || count%r.cfg.Every != 0 {
		return speed, false
	}
	next := Scale(speed, r.cfg.Factor, r.cfg.MaxSpeed)
	return next, next != speed
}

// Scale multiplies speed by factor, capping at maxSpeed when it is positive.
// A speed already above the cap is left alone.
func Scale(speed, factor, maxSpeed float64) float64 {
	next := speed * factor
	if maxSpeed > 0 && next > maxSpeed {
		next = math.Max(speed, maxSpeed)
	}
	return next
}
