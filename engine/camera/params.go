package camera

// Params tunes how every camera moves. Values are expected to be positive;
// they are read each frame and never modified by the controller.
type Params struct {
	DefaultSpeed float32 `toml:"default_speed"`
	Acceleration float32 `toml:"acceleration"`
	SlowSpeed    float32 `toml:"slow_speed"`
	ScrollSnap   float32 `toml:"scroll_snap"`
}

func DefaultParams() Params {
	return Params{
		DefaultSpeed: 1.0,
		Acceleration: 1.0,
		SlowSpeed:    0.1,
		ScrollSnap:   1.0,
	}
}
