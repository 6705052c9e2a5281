package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := DefaultLibrary()
	require.NoError(t, err)

	want := map[int]string{1: "wizard", 2: "old", 3: "young", 4: "hat"}
	for slot, id := range want {
		p, err := lib.BySlot(slot)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
	}
	assert.Len(t, lib.All(), 4)
	assert.Equal(t, "wizard", lib.All()[0].ID)

	_, err = lib.BySlot(5)
	assert.True(t, eris.Is(err, ErrUnknownPrototype))
	_, err = lib.Get("dragon")
	assert.True(t, eris.Is(err, ErrUnknownPrototype))
}

func TestLoadPrototypesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protos.json")
	data := `[{"id":"knight","name":"Knight","slot":2,"model":"knight.gltf","color":{"R":1,"G":2,"B":3,"A":255},"radius":0.4}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	lib, err := LoadPrototypes(path)
	require.NoError(t, err)

	p, err := lib.Get("knight")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Slot)
	assert.Equal(t, uint8(3), p.Color.B)
	assert.Equal(t, float32(1), p.Scale, "missing scale defaults to 1")
}

func TestLoadPrototypesEmptyPathUsesDefaults(t *testing.T) {
	lib, err := LoadPrototypes("")
	require.NoError(t, err)
	assert.Len(t, lib.All(), 4)
}

func TestLoadPrototypesMissingFile(t *testing.T) {
	_, err := LoadPrototypes(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestNewLibraryValidation(t *testing.T) {
	tests := []struct {
		name   string
		protos []Prototype
	}{
		{"empty id", []Prototype{{Slot: 1}}},
		{"slot zero", []Prototype{{ID: "a", Slot: 0}}},
		{"slot too high", []Prototype{{ID: "a", Slot: 5}}},
		{"duplicate id", []Prototype{{ID: "a", Slot: 1}, {ID: "a", Slot: 2}}},
		{"duplicate slot", []Prototype{{ID: "a", Slot: 1}, {ID: "b", Slot: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLibrary(tt.protos)
			assert.True(t, eris.Is(err, ErrInvalidPrototypes))
		})
	}
}

func TestParsePrototypesBadJSON(t *testing.T) {
	_, err := ParsePrototypes([]byte(`{"id":`))
	require.Error(t, err)
}
