// internal/config/constants.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60

	PlaneSize = 20.0 // сторона квадратной площадки

	MinionRadius = 0.35 // радиус заглушки, если модели нет
	MinionHeight = 1.2

	CameraNear = 0.01
	CameraFar  = 1000.0

	OverviewScale    = 32.0 // пикселей на единицу мира в 2D-обзоре
	EdgeScrollMargin = 8    // pixels from the window border that start edge scrolling

	PreviewAlpha = 140
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{70, 100, 70, 255}
	GridColor       = color.RGBA{90, 120, 90, 255}
	TargetLineColor = color.RGBA{255, 255, 0, 128}
	MovingColor     = color.RGBA{255, 140, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	FallbackColor   = color.RGBA{180, 180, 180, 255}
)
