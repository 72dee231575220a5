// internal/system/state.go
package system

import (
	"errors"
	"fmt"

	"go-arena-survivor/internal/component"
)

// ErrInvalidTransition — переход между фазами, которого нет в автомате.
var ErrInvalidTransition = errors.New("invalid phase transition")

// transitions — допустимые переходы фаз. Restart (→ Idle) разрешён из любой фазы.
var transitions = map[component.Phase][]component.Phase{
	component.PhaseIdle:     {component.PhaseRunning},
	component.PhaseRunning:  {component.PhasePaused, component.PhaseLevelUp, component.PhaseGameOver},
	component.PhasePaused:   {component.PhaseRunning},
	component.PhaseLevelUp:  {component.PhaseRunning, component.PhaseGameOver},
	component.PhaseGameOver: {},
}

// StateSystem хранит фазу симуляции и проверяет переходы.
type StateSystem struct {
	phase component.Phase
}

func NewStateSystem() *StateSystem {
	return &StateSystem{phase: component.PhaseIdle}
}

func (s *StateSystem) Current() component.Phase {
	return s.phase
}

// Running — шаг симуляции выполняется только в этой фазе.
func (s *StateSystem) Running() bool {
	return s.phase == component.PhaseRunning
}

// Switch переводит автомат в фазу to.
func (s *StateSystem) Switch(to component.Phase) error {
	if to == component.PhaseIdle {
		s.phase = to
		return nil
	}
	for _, allowed := range transitions[s.phase] {
		if allowed == to {
			s.phase = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.phase, to)
}
