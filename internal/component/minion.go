// internal/component/minion.go
package component

const (
	DefaultLife         = 100
	DefaultAttackDamage = 15
)

// Minion holds combat attributes. Nothing consumes them yet.
type Minion struct {
	Life         uint16
	AttackDamage uint16
}

// DefaultMinion returns the attributes every freshly placed minion starts with.
func DefaultMinion() Minion {
	return Minion{Life: DefaultLife, AttackDamage: DefaultAttackDamage}
}
