package types

// EntityID identifies a spawned entity. IDs grow monotonically within a World.
type EntityID uint64
