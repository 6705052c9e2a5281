package assets

import (
	"os"
	"path/filepath"

	"go-minion-arena/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// ErrModelNotLoaded is returned for prototypes whose model file was missing or broken.
var ErrModelNotLoaded = eris.New("model not loaded")

// ModelManager управляет загрузкой, кэшированием и выгрузкой 3D-моделей прототипов.
type ModelManager struct {
	modelsDir string
	models    map[string]rl.Model
	ground    *rl.Texture2D
	logger    zerolog.Logger
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager(modelsDir string, logger zerolog.Logger) *ModelManager {
	return &ModelManager{
		modelsDir: modelsDir,
		models:    make(map[string]rl.Model),
		logger:    logger.With().Str("component", "assets").Logger(),
	}
}

// loadSingleModel безопасно загружает одну модель. Raylib panics on some corrupt files.
func (m *ModelManager) loadSingleModel(proto defs.Prototype) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Wrapf(ErrModelNotLoaded, "raylib panicked loading %s: %v", proto.ID, r)
		}
	}()

	if _, ok := m.models[proto.ID]; ok {
		return nil
	}

	modelPath := filepath.Join(m.modelsDir, proto.Model)
	if _, statErr := os.Stat(modelPath); statErr != nil {
		return eris.Wrapf(ErrModelNotLoaded, "%s: %v", modelPath, statErr)
	}
	model := rl.LoadModel(modelPath)
	if model.MeshCount == 0 {
		return eris.Wrapf(ErrModelNotLoaded, "%s has no meshes", modelPath)
	}

	m.models[proto.ID] = model
	return nil
}

// LoadPrototypeModels loads every prototype model. Missing models are logged and
// later drawn as coloured primitives. Returns the number of models loaded.
func (m *ModelManager) LoadPrototypeModels(protos []defs.Prototype) int {
	loaded := 0
	for _, proto := range protos {
		if err := m.loadSingleModel(proto); err != nil {
			m.logger.Warn().Err(err).Str("prototype", proto.ID).Msg("using fallback shape")
			continue
		}
		loaded++
		m.logger.Info().Str("prototype", proto.ID).Msg("model loaded")
	}
	return loaded
}

// LoadGroundTexture загружает текстуру земли, если файл существует.
func (m *ModelManager) LoadGroundTexture(name string) {
	path := filepath.Join(m.modelsDir, "..", name)
	if _, err := os.Stat(path); err != nil {
		m.logger.Debug().Str("path", path).Msg("no ground texture")
		return
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		m.logger.Warn().Str("path", path).Msg("failed to load ground texture")
		return
	}
	m.ground = &tex
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	if m.ground != nil {
		rl.UnloadTexture(*m.ground)
		m.ground = nil
	}
	m.logger.Info().Msg("all models unloaded")
}

// GetModel возвращает модель по ID прототипа.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}

// GroundTexture возвращает текстуру земли, если она загружена.
func (m *ModelManager) GroundTexture() (rl.Texture2D, bool) {
	if m.ground == nil {
		return rl.Texture2D{}, false
	}
	return *m.ground, true
}
