package component

// Phase — фаза симуляции
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseLevelUp
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseLevelUp:
		return "level-up"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}
