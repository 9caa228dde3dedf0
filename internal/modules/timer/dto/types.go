package dto

type BeginInput struct {
	DurationMin int
	SessionID   string
}

type TimerOutput struct {
	Mode        string
	TimeLeftSec int
	Running     bool
	Round       int
	TotalRounds int
	SessionID   string
}

type TickOutput struct {
	Timer          TimerOutput
	PeriodComplete bool
	CompletedMode  string
	SessionID      string
}
