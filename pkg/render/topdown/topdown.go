package topdown

import (
	"fmt"
	"image/color"
	"math"

	"go-minion-arena/internal/camera"
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/entity"
	"go-minion-arena/pkg/render"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rotisserie/eris"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Renderer рисует площадку сверху: земля, сетка, миньоны, линии к целям.
type Renderer struct {
	view      camera.TopDown
	planeSize float32
	colors    render.SceneColors
	fillImg   *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	fontFace  font.Face
	mapImage  *ebiten.Image // предрендеренная площадка
}

func NewRenderer(view camera.TopDown, planeSize float32, colors render.SceneColors) *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &Renderer{
		view:      view,
		planeSize: planeSize,
		colors:    colors,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 64),
		fillIs:    make([]uint16, 0, 96),
		fontFace:  labelFace(),
		mapImage:  ebiten.NewImage(view.Width, view.Height),
	}
	r.RenderMapImage()
	return r
}

// labelFace returns Go Regular at 10pt, or the fixed bitmap face if it cannot be parsed.
func labelFace() font.Face {
	face, err := newLabelFace()
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

func newLabelFace() (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse label font")
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, eris.Wrap(err, "failed to create label face")
	}
	return face, nil
}

// RenderMapImage перерисовывает задник: площадку и сетку с шагом в единицу мира.
func (r *Renderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.Background)

	half := r.planeSize / 2
	topLeft := r.view.WorldToScreen(mgl32.Vec3{-half, 0, half})
	bottomRight := r.view.WorldToScreen(mgl32.Vec3{half, 0, -half})

	path := vector.Path{}
	path.MoveTo(topLeft.X(), topLeft.Y())
	path.LineTo(bottomRight.X(), topLeft.Y())
	path.LineTo(bottomRight.X(), bottomRight.Y())
	path.LineTo(topLeft.X(), bottomRight.Y())
	path.Close()
	r.fill(r.mapImage, &path, r.colors.Ground)

	for i := -half; i <= half; i++ {
		a := r.view.WorldToScreen(mgl32.Vec3{i, 0, -half})
		b := r.view.WorldToScreen(mgl32.Vec3{i, 0, half})
		vector.StrokeLine(r.mapImage, a.X(), a.Y(), b.X(), b.Y(), 1, r.colors.Grid, true)
		a = r.view.WorldToScreen(mgl32.Vec3{-half, 0, i})
		b = r.view.WorldToScreen(mgl32.Vec3{half, 0, i})
		vector.StrokeLine(r.mapImage, a.X(), a.Y(), b.X(), b.Y(), 1, r.colors.Grid, true)
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, world *entity.ECS, spawning component.SpawningState, gameTime float64) {
	screen.DrawImage(r.mapImage, nil)

	ids := world.Entities()

	// Сначала линии к целям, чтобы круги были поверх
	for _, id := range ids {
		targeting, ok := world.Targetings[id]
		if !ok || !targeting.HasTarget() {
			continue
		}
		from, ok := world.Figures[id]
		to, okTo := world.Figures[targeting.Target]
		if !ok || !okTo {
			continue
		}
		a := r.view.WorldToScreen(from.Position)
		b := r.view.WorldToScreen(to.Position)
		vector.StrokeLine(screen, a.X(), a.Y(), b.X(), b.Y(), 1.5, r.colors.TargetLine, true)
	}

	for _, id := range ids {
		fig, ok := world.Figures[id]
		if !ok {
			continue
		}
		radius := float32(config.MinionRadius)
		base := r.colors.Fallback
		label := ""
		if rend, ok := world.Renderables[id]; ok {
			base = rend.Color
			label = rend.Prototype
			if rend.Radius > 0 {
				radius = rend.Radius
			}
		}
		_, preview := world.Previews[id]
		c := render.MinionColor(base, r.colors, preview, world.IsMoving(id), config.PreviewAlpha)

		center := r.view.WorldToScreen(fig.Position)
		px := radius * r.view.Scale
		vector.DrawFilledCircle(screen, center.X(), center.Y(), px+1.5, render.DarkenColor(c), true)
		vector.DrawFilledCircle(screen, center.X(), center.Y(), px, c, true)

		// риска направления взгляда
		tip := r.view.WorldToScreen(fig.Position.Add(fig.Forward().Mul(radius * 1.6)))
		vector.StrokeLine(screen, center.X(), center.Y(), tip.X(), tip.Y(), 2, r.colors.Text, true)

		if label != "" && !preview {
			r.drawLabel(screen, fmt.Sprintf("%s #%d", label, id), center.X(), center.Y()+px+10)
		}
	}

	status := fmt.Sprintf("t=%.1fs  entities=%d  spawning=%s  [1-4] select  [LMB] place",
		gameTime, world.Count(), spawning)
	text.Draw(screen, status, r.fontFace, 8, 16, r.colors.Text)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, label string, x, y float32) {
	bounds := text.BoundString(r.fontFace, label)
	width := bounds.Max.X - bounds.Min.X
	text.Draw(screen, label, r.fontFace, int(x)-width/2, int(y), r.colors.Text)
}

func (r *Renderer) fill(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Resize пересоздаёт задник под новый размер окна.
func (r *Renderer) Resize(view camera.TopDown) {
	if view == r.view {
		return
	}
	r.view = view
	r.mapImage = ebiten.NewImage(int(math.Max(1, float64(view.Width))), int(math.Max(1, float64(view.Height))))
	r.RenderMapImage()
}
