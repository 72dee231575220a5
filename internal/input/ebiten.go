package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenPoller собирает снимок из клавиатуры, мыши и тач-экрана ebiten.
type EbitenPoller struct {
	width, height float64

	touchMode     bool
	joystickTouch ebiten.TouchID
	joystickOn    bool
	baseX, baseY  float64

	touchIDs []ebiten.TouchID
	chars    []rune
}

func NewEbitenPoller(width, height float64) *EbitenPoller {
	return &EbitenPoller{width: width, height: height}
}

var upgradeKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

func (p *EbitenPoller) Poll() Snapshot {
	var s Snapshot
	s.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	s.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	s.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	s.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	s.PauseToggle = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	s.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	s.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	for i, k := range upgradeKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.UpgradeKey = i + 1
			break
		}
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	if len(p.chars) > 0 {
		s.Typed = append([]rune(nil), p.chars...)
	}

	mx, my := ebiten.CursorPosition()
	s.PointerX, s.PointerY = float64(mx), float64(my)
	s.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	p.pollTouches(&s)

	s.Touch = p.touchMode
	if !p.touchMode {
		s.Fire = s.Click
	}
	return s
}

// pollTouches: касание левой половины запускает джойстик, касание кнопки огня стреляет.
func (p *EbitenPoller) pollTouches(s *Snapshot) {
	fire := FireButtonRect(p.width, p.height)

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		p.touchMode = true
		x, y := ebiten.TouchPosition(id)
		tx, ty := float64(x), float64(y)
		s.PointerX, s.PointerY = tx, ty
		s.Click = true
		switch {
		case InRect(tx, ty, fire):
			s.Fire = true
		case tx < p.width/2 && !p.joystickOn:
			p.joystickOn = true
			p.joystickTouch = id
			p.baseX, p.baseY = tx, ty
		}
	}

	if !p.joystickOn {
		return
	}
	if inpututil.IsTouchJustReleased(p.joystickTouch) {
		p.joystickOn = false
		return
	}
	x, y := ebiten.TouchPosition(p.joystickTouch)
	s.JoystickActive = true
	s.JoystickBaseX, s.JoystickBaseY = p.baseX, p.baseY
	s.JoystickX, s.JoystickY = JoystickVector(p.baseX, p.baseY, float64(x), float64(y))
}
