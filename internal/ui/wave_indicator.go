package ui

import (
	"image/color"
	"strings"

	"go-arena-survivor/internal/config"
	"go-arena-survivor/pkg/render"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float64
	Color        color.RGBA
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны с центром по X.
func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: color.RGBA{0, 0, 0, 255},
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen render.Surface, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	text := toRoman(waveNumber)

	// Каждая десятая волна — красная
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = color.RGBA{255, 60, 60, 255}
	}

	w, _ := screen.MeasureText(text)
	x := i.X - w/2
	// обводка в один пиксель
	for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		screen.Text(text, x+d[0], i.Y+d[1], i.OutlineColor)
	}
	screen.Text(text, x, i.Y, textColor)
}
