package domain

// Score derives the 0..10 focus score from a session's raw metrics.
//
// An unstarted session (actual duration zero) scores 0 outright; the formula
// would otherwise reward distraction-free sessions that never ran.
func Score(s Session) float64 {
	if s.ActualDurationMin == 0 {
		return 0
	}
	completionRate := float64(s.ActualDurationMin) / float64(s.PlannedDurationMin)
	distractionPenalty := 1 - float64(s.Distractions)*0.1
	if distractionPenalty < 0 {
		distractionPenalty = 0
	}
	pomodoroBonus := float64(s.CompletedPomodoros) * 0.1

	score := (completionRate*0.6 + distractionPenalty*0.3 + pomodoroBonus) * 10
	if score > 10 {
		return 10
	}
	if score < 0 {
		return 0
	}
	return score
}
