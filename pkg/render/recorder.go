package render

import "image/color"

// Op — вид записанного примитива.
type Op string

const (
	OpFillRect     Op = "fill_rect"
	OpStrokeRect   Op = "stroke_rect"
	OpFillCircle   Op = "fill_circle"
	OpFillTriangle Op = "fill_triangle"
	OpText         Op = "text"
)

// Command — один вызов примитива с уже применённым смещением.
type Command struct {
	Op    Op
	X, Y  float64
	W, H  float64 // для кругов W — радиус
	Text  string
	Color color.Color
}

// Recorder — поверхность, которая ничего не рисует, а запоминает вызовы.
// Нужна для проверки кадра без окна.
type Recorder struct {
	Width, Height float64
	Commands      []Command
	dx, dy        float64
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Translate(dx, dy float64) { r.dx, r.dy = dx, dy }

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.add(Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, _ float64, c color.Color) {
	r.add(Command{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.add(Command{Op: OpFillCircle, X: cx, Y: cy, W: radius, Color: c})
}

// FillTriangle запоминает только первую вершину.
func (r *Recorder) FillTriangle(x1, y1, _, _, _, _ float64, c color.Color) {
	r.add(Command{Op: OpFillTriangle, X: x1, Y: y1, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, c color.Color) {
	r.add(Command{Op: OpText, X: x, Y: y, Text: s, Color: c})
}

// MeasureText считает моноширинный шрифт 7x13.
func (r *Recorder) MeasureText(s string) (float64, float64) {
	return float64(len(s) * 7), 13
}

// Reset забывает записанные вызовы.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.dx, r.dy = 0, 0
}

// Count — сколько записано вызовов вида op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts возвращает все выведенные строки по порядку.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

func (r *Recorder) add(c Command) {
	c.X += r.dx
	c.Y += r.dy
	r.Commands = append(r.Commands, c)
}
