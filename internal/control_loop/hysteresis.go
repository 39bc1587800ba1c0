package control_loop

// ControlLoop decides the next fan state from the current state and a
// temperature measurement.
type ControlLoop interface {
	// Loop advances the control loop
	Loop(fanOn bool, measured float64) bool
}

// HysteresisLoop is a two-threshold on/off control. The fan turns on at
// OnThreshold and only turns off again below OffThreshold. Inside the
// dead band between the thresholds the state is kept as-is, which
// prevents rapid toggling around a single boundary value.
type HysteresisLoop struct {
	OnThreshold  float64
	OffThreshold float64
}

func NewHysteresisLoop(onThreshold float64, offThreshold float64) *HysteresisLoop {
	return &HysteresisLoop{
		OnThreshold:  onThreshold,
		OffThreshold: offThreshold,
	}
}

func (l *HysteresisLoop) Loop(fanOn bool, measured float64) bool {
	if !fanOn && measured >= l.OnThreshold {
		return true
	}
	if fanOn && measured < l.OffThreshold {
		return false
	}
	return fanOn
}
