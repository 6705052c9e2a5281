package scene

import (
	"fmt"

	"go-minion-arena/internal/assets"
	"go-minion-arena/internal/camera"
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/types"
	"go-minion-arena/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer рисует 3D-сцену через raylib. Only reads the world.
type Renderer struct {
	models    *assets.ModelManager
	colors    render.SceneColors
	planeSize float32
	ground    *rl.Model
}

func NewRenderer(models *assets.ModelManager, planeSize float32, colors render.SceneColors) *Renderer {
	r := &Renderer{models: models, colors: colors, planeSize: planeSize}
	if tex, ok := models.GroundTexture(); ok {
		ground := rl.LoadModelFromMesh(rl.GenMeshPlane(planeSize, planeSize, 1, 1))
		rl.SetMaterialTexture(ground.Materials, rl.MapDiffuse, tex)
		r.ground = &ground
	}
	return r
}

func vec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// matrix переводит column-major mgl32.Mat4 в rl.Matrix.
func matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Camera3D converts the simulation camera into a raylib camera.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(cam.Position),
		Target:     vec(cam.Target),
		Up:         vec(cam.Up),
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func (r *Renderer) Draw(cam *camera.Camera, world *entity.ECS) {
	rl.BeginMode3D(Camera3D(cam))

	if r.ground != nil {
		rl.DrawModel(*r.ground, rl.NewVector3(0, 0, 0), 1, rl.White)
	} else {
		rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(r.planeSize, r.planeSize), r.colors.Ground)
		rl.DrawGrid(int32(r.planeSize), 1)
	}

	ids := world.Entities()
	for _, id := range ids {
		fig, ok := world.Figures[id]
		if !ok {
			continue
		}
		r.drawFigure(world, id, fig)
	}

	lift := mgl32.Vec3{0, config.MinionHeight / 2, 0}
	for _, id := range ids {
		targeting, ok := world.Targetings[id]
		if !ok || !targeting.HasTarget() {
			continue
		}
		from, okFrom := world.Figures[id]
		to, okTo := world.Figures[targeting.Target]
		if okFrom && okTo {
			rl.DrawLine3D(vec(from.Position.Add(lift)), vec(to.Position.Add(lift)), r.colors.TargetLine)
		}
	}

	rl.EndMode3D()
}

func (r *Renderer) drawFigure(world *entity.ECS, id types.EntityID, fig *component.Figure) {
	_, preview := world.Previews[id]
	base := r.colors.Fallback
	radius := float32(config.MinionRadius)
	prototype := ""
	if rend, ok := world.Renderables[id]; ok {
		base = rend.Color
		prototype = rend.Prototype
		if rend.Radius > 0 {
			radius = rend.Radius
		}
	}
	tint := render.MinionColor(base, r.colors, preview, world.IsMoving(id), config.PreviewAlpha)

	if model, ok := r.models.GetModel(prototype); ok {
		modelTint := rl.White
		if preview {
			modelTint = render.WithAlpha(rl.White, config.PreviewAlpha)
		}
		// model - копия, базовая трансформация из файла сохраняется
		model.Transform = rl.MatrixMultiply(model.Transform, matrix(fig.Matrix()))
		rl.DrawModel(model, rl.NewVector3(0, 0, 0), 1, modelTint)
		return
	}

	height := float32(config.MinionHeight) * fig.Scale.Y()
	rl.DrawCylinder(vec(fig.Position), radius*0.6, radius, height, 12, tint)
	nose := fig.Position.Add(mgl32.Vec3{0, height * 0.75, 0})
	rl.DrawLine3D(vec(nose), vec(nose.Add(fig.Forward().Mul(radius*2))), r.colors.Text)
}

// DrawHUD рисует отладочный текст поверх сцены.
func (r *Renderer) DrawHUD(world *entity.ECS, spawning component.SpawningState, gameTime float64) {
	moving := len(world.Movings)
	status := fmt.Sprintf("t=%.1fs  entities=%d  moving=%d  spawning=%s", gameTime, world.Count(), moving, spawning)
	rl.DrawText(status, 10, 10, 18, r.colors.Text)
	rl.DrawText("[1-4] select  [LMB] place  [WASD/edges] pan  [wheel] zoom  [P] pause", 10, 32, 16, r.colors.Text)
	rl.DrawFPS(10, 54)
}

// Unload освобождает модель земли.
func (r *Renderer) Unload() {
	if r.ground != nil {
		rl.UnloadModel(*r.ground)
		r.ground = nil
	}
}
