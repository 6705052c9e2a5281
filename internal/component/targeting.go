// internal/component/targeting.go
package component

import "go-minion-arena/internal/types"

// Targeting - ссылка на цель по ID, не владение.
// The referenced entity may be destroyed at any time, so readers must resolve it
// through the registry before use.
type Targeting struct {
	Target types.EntityID
}

// HasTarget reports whether a target is currently assigned.
func (t *Targeting) HasTarget() bool {
	return t.Target != 0
}

// Clear drops the current target.
func (t *Targeting) Clear() {
	t.Target = 0
}
