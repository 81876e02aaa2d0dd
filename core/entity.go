package core

// Entity is a unique identifier for an entity in a world
// Zero is never a valid entity
type Entity uint64
