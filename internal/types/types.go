// internal/types/types.go
package types

// EntityID is a stable handle issued by the entity registry. Zero means "no entity".
type EntityID uint64
