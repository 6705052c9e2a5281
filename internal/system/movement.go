// internal/system/movement.go
package system

import (
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/entity"
)

// MovementSystem обновляет позиции движущихся сущностей
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Integrate advances a figure along its facing direction. Zero dt returns the figure unchanged.
func Integrate(figure component.Figure, speed float32, deltaTime float64) component.Figure {
	if deltaTime == 0 || speed == 0 {
		return figure
	}
	step := figure.Forward().Mul(speed * float32(deltaTime))
	figure.Position = figure.Position.Add(step)
	return figure
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id := range s.ecs.Movings {
		fig, hasFig := s.ecs.Figures[id]
		if !hasFig {
			continue
		}
		if mov, hasMov := s.ecs.Movables[id]; hasMov {
			*fig = Integrate(*fig, mov.Speed, deltaTime)
		}
	}
}
