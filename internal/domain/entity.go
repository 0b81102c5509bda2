package domain

import "time"

// Index names a secondary index maintained by the entity store.
type Index string

const (
	IndexOwner      Index = "owner"
	IndexCategory   Index = "category"
	IndexStatus     Index = "status"
	IndexParent     Index = "parent"
	IndexFreelancer Index = "freelancer"
	IndexProject    Index = "project"
)

// IsValid returns true if the index is one of the defined constants.
func (i Index) IsValid() bool {
	switch i {
	case IndexOwner, IndexCategory, IndexStatus, IndexParent, IndexFreelancer, IndexProject:
		return true
	default:
		return false
	}
}

// Header carries the fields every entity shares. Version is owned by the
// entity store and advances by one on every successful write.
type Header struct {
	ID        uint64
	Status    Status
	Version   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Meta returns the header itself so that embedding types satisfy Entity.
func (h *Header) Meta() *Header {
	return h
}

// Entity is a stored record with an id, owner principals, and a status
// governed by its kind's transition graph.
type Entity interface {
	Kind() Kind
	Meta() *Header
	Graph() *Graph
	// Indexes returns the secondary index keys the store must maintain.
	Indexes() map[Index]string
	// Clone returns a deep copy. Stores and the state machine never share
	// mutable entities with callers.
	Clone() Entity
}

// Claimant is implemented by entities that hold index values exclusively.
// While one entity of a kind claims a value, a store write that would give
// the same claim to another entity of that kind fails with ErrAlreadyExists.
// Returning no claims releases any held before.
type Claimant interface {
	Claims() map[Index]string
}

// ClaimsOf returns e's claims, or nil if e is not a Claimant.
func ClaimsOf(e Entity) map[Index]string {
	if c, ok := e.(Claimant); ok {
		return c.Claims()
	}
	return nil
}

// Ref identifies an entity without loading it.
type Ref struct {
	Kind Kind
	ID   uint64
}

// RefOf returns the reference for e.
func RefOf(e Entity) Ref {
	return Ref{Kind: e.Kind(), ID: e.Meta().ID}
}
