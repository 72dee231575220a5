// internal/input/input.go
package input

import (
	"go-arena-survivor/internal/config"
	"go-arena-survivor/internal/utils"
	"go-arena-survivor/pkg/geom"
)

// Snapshot — состояние ввода за один кадр. Симуляция читает только его.
type Snapshot struct {
	Up, Down, Left, Right bool

	PointerX, PointerY float64
	Click              bool // левая кнопка только что нажата (меню, кнопки)
	Fire               bool // выстрел: клик или кнопка огня на экране
	PauseToggle        bool

	Touch          bool // сенсорный режим: прицел по врагу, движение джойстиком
	JoystickActive bool
	JoystickX      float64 // уже ограничены JoystickMaxRadius
	JoystickY      float64
	JoystickBaseX  float64 // где палец коснулся экрана, для отрисовки
	JoystickBaseY  float64

	UpgradeKey int // 1–7, 0 — не нажата
	Typed      []rune
	Backspace  bool
	Enter      bool
}

// Poller отдаёт снимок ввода раз в кадр.
type Poller interface {
	Poll() Snapshot
}

// JoystickVector — смещение пальца от центра джойстика, ограниченное по длине.
func JoystickVector(baseX, baseY, x, y float64) (float64, float64) {
	return utils.ClampLength(x-baseX, y-baseY, config.JoystickMaxRadius)
}

// FireButtonRect — экранная кнопка огня в правом нижнем углу.
func FireButtonRect(width, height float64) geom.Rect {
	size := float64(config.FireButtonSize)
	return geom.Rect{
		X:      width - size - config.UIMargin,
		Y:      height - size - config.UIMargin,
		Width:  size,
		Height: size,
	}
}

// InRect — попадает ли точка в прямоугольник.
func InRect(x, y float64, r geom.Rect) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Static — Poller, который всегда возвращает один и тот же снимок. Для тестов и демо.
type Static struct {
	Snapshot Snapshot
}

func (s *Static) Poll() Snapshot {
	return s.Snapshot
}
