// internal/defs/loader.go
package defs

import (
	_ "embed"
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

//go:embed prototypes.json
var defaultPrototypes []byte

// ErrUnknownPrototype is returned when a slot or id has no prototype.
var ErrUnknownPrototype = eris.New("unknown prototype")

// ErrInvalidPrototypes is wrapped by every definition validation failure.
var ErrInvalidPrototypes = eris.New("invalid prototype definitions")

// Library - набор прототипов, доступный по ID и по слоту.
type Library struct {
	byID   map[string]Prototype
	bySlot map[int]Prototype
	order  []string
}

// DefaultLibrary returns the built-in prototypes (wizard, old, young, hat).
func DefaultLibrary() (*Library, error) {
	lib, err := ParsePrototypes(defaultPrototypes)
	if err != nil {
		return nil, eris.Wrap(err, "built-in prototypes are broken")
	}
	return lib, nil
}

// LoadPrototypes reads prototype definitions from path. An empty path yields the built-in set.
func LoadPrototypes(path string) (*Library, error) {
	if path == "" {
		return DefaultLibrary()
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read prototype definitions file %s", path)
	}
	return ParsePrototypes(file)
}

// ParsePrototypes decodes and validates a JSON array of prototypes.
func ParsePrototypes(data []byte) (*Library, error) {
	var protos []Prototype
	if err := json.Unmarshal(data, &protos); err != nil {
		return nil, eris.Wrap(err, "failed to unmarshal prototype definitions")
	}
	return NewLibrary(protos)
}

// NewLibrary validates prototypes and indexes them.
func NewLibrary(protos []Prototype) (*Library, error) {
	lib := &Library{
		byID:   make(map[string]Prototype, len(protos)),
		bySlot: make(map[int]Prototype, len(protos)),
	}
	for _, p := range protos {
		if p.ID == "" {
			return nil, eris.Wrap(ErrInvalidPrototypes, "prototype without id")
		}
		if p.Slot < 1 || p.Slot > MaxSlot {
			return nil, eris.Wrapf(ErrInvalidPrototypes, "prototype %s: slot %d outside 1..%d", p.ID, p.Slot, MaxSlot)
		}
		if _, dup := lib.byID[p.ID]; dup {
			return nil, eris.Wrapf(ErrInvalidPrototypes, "duplicate prototype id %s", p.ID)
		}
		if other, dup := lib.bySlot[p.Slot]; dup {
			return nil, eris.Wrapf(ErrInvalidPrototypes, "prototypes %s and %s share slot %d", other.ID, p.ID, p.Slot)
		}
		if p.Scale == 0 {
			p.Scale = 1
		}
		lib.byID[p.ID] = p
		lib.bySlot[p.Slot] = p
		lib.order = append(lib.order, p.ID)
	}
	return lib, nil
}

// Get returns the prototype with the given id.
func (l *Library) Get(id string) (Prototype, error) {
	p, ok := l.byID[id]
	if !ok {
		return Prototype{}, eris.Wrapf(ErrUnknownPrototype, "id %q", id)
	}
	return p, nil
}

// BySlot returns the prototype bound to selection slot n.
func (l *Library) BySlot(n int) (Prototype, error) {
	p, ok := l.bySlot[n]
	if !ok {
		return Prototype{}, eris.Wrapf(ErrUnknownPrototype, "slot %d", n)
	}
	return p, nil
}

// All returns every prototype in definition order.
func (l *Library) All() []Prototype {
	out := make([]Prototype, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out
}
