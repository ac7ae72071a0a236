package timer

// Mode can be one of:
//   - stopwatch (counts up indefinitely)
//   - countdown (counts down to a completion event)
type Mode string

const (
	ModeStopwatch Mode = "stopwatch"
	ModeCountdown Mode = "countdown"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeStopwatch, ModeCountdown:
		return true
	default:
		return false
	}
}

// Indicator tells the presentation layer how urgent the current value is.
type Indicator string

const (
	IndicatorIdle     Indicator = "idle"
	IndicatorRunning  Indicator = "running"
	IndicatorCritical Indicator = "critical"
)

// criticalThreshold is the remaining countdown seconds at or below which
// the display is flagged as critical.
const criticalThreshold = 10

const DefaultCountdownDuration = 300

// State is the engine's owned timer state. Value holds elapsed seconds in
// stopwatch mode and remaining seconds in countdown mode.
type State struct {
	Mode              Mode `json:"mode"`
	Value             int  `json:"value"`
	Running           bool `json:"running"`
	CountdownDuration int  `json:"countdownDuration"`
}

func DefaultState() State {
	return State{
		Mode:              ModeStopwatch,
		Value:             0,
		Running:           false,
		CountdownDuration: DefaultCountdownDuration,
	}
}

// Display renders Value the way the timer view shows it: the long form for
// the stopwatch, MM:SS for the countdown.
func (s State) Display() string {
	if s.Mode == ModeStopwatch {
		return FormatLong(s.Value)
	}
	return FormatShort(s.Value)
}

func (s State) Indicator() Indicator {
	if s.Mode == ModeCountdown && s.Value <= criticalThreshold {
		return IndicatorCritical
	}
	if s.Running {
		return IndicatorRunning
	}
	return IndicatorIdle
}
