// pkg/render/surface.go
package render

import "image/color"

// Surface — холст, на который кадр выводит примитивы. Координаты в пикселях экрана,
// (x, y) прямоугольника и текста — левый верхний угол.
type Surface interface {
	// Size возвращает ширину и высоту холста.
	Size() (width, height float64)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, strokeWidth float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color)
	Text(s string, x, y float64, c color.Color)
	// MeasureText возвращает размеры строки в пикселях.
	MeasureText(s string) (w, h float64)
	// Translate задаёт смещение для всех последующих примитивов. Не накапливается.
	Translate(dx, dy float64)
}

// TextCentered рисует строку с центром в (cx, cy).
func TextCentered(s Surface, str string, cx, cy float64, c color.Color) {
	w, h := s.MeasureText(str)
	s.Text(str, cx-w/2, cy-h/2, c)
}
