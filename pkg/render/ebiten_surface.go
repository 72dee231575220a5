package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// EbitenSurface рисует примитивы на *ebiten.Image.
type EbitenSurface struct {
	target   *ebiten.Image
	fontFace font.Face
	fillImg  *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
	dx, dy   float64
}

// LoadFontFace загружает встроенный Go Regular нужного размера.
// При ошибке возвращается растровый basicfont.
func LoadFontFace(size float64) font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("Не удалось разобрать шрифт: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Не удалось создать начертание: %v", err)
		return basicfont.Face7x13
	}
	return face
}

func NewEbitenSurface(fontFace font.Face) *EbitenSurface {
	if fontFace == nil {
		fontFace = basicfont.Face7x13
	}
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &EbitenSurface{
		fontFace: fontFace,
		fillImg:  fillImg,
		vs:       make([]ebiten.Vertex, 0, 3),
		is:       make([]uint16, 0, 3),
	}
}

// SetTarget привязывает поверхность к кадру и сбрасывает смещение.
func (s *EbitenSurface) SetTarget(screen *ebiten.Image) {
	s.target = screen
	s.dx, s.dy = 0, 0
}

func (s *EbitenSurface) Size() (float64, float64) {
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Translate(dx, dy float64) {
	s.dx, s.dy = dx, dy
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.target, float32(x+s.dx), float32(y+s.dy), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, strokeWidth float64, c color.Color) {
	vector.StrokeRect(s.target, float32(x+s.dx), float32(y+s.dy), float32(w), float32(h), float32(strokeWidth), c, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.target, float32(cx+s.dx), float32(cy+s.dy), float32(r), c, true)
}

func (s *EbitenSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color) {
	path := vector.Path{}
	path.MoveTo(float32(x1+s.dx), float32(y1+s.dy))
	path.LineTo(float32(x2+s.dx), float32(y2+s.dy))
	path.LineTo(float32(x3+s.dx), float32(y3+s.dy))
	path.Close()

	r, g, b, a := rgbaFloats(c)
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	for i := range s.vs {
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	s.target.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Text рисует строку; text.Draw ждёт базовую линию, поэтому добавляем ascent.
func (s *EbitenSurface) Text(str string, x, y float64, c color.Color) {
	ascent := s.fontFace.Metrics().Ascent.Ceil()
	text.Draw(s.target, str, s.fontFace, int(x+s.dx), int(y+s.dy)+ascent, c)
}

func (s *EbitenSurface) MeasureText(str string) (float64, float64) {
	bounds := text.BoundString(s.fontFace, str)
	return float64(bounds.Dx()), float64(s.fontFace.Metrics().Height.Ceil())
}
