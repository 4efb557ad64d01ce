package genealogy

import "strings"

// engine is the concrete implementation of Core: a single in-memory
// store plus the Invariant Engine, Traversal Engine, Relationship
// Labeler, Validator, and Serializer that read and write it, exposed as
// methods rather than free functions bound to an exported interface.
type engine struct {
	store *store
}

// New constructs a Core for a fresh tree with no members.
func New(tree Tree) Core {
	return &engine{store: newStore(tree)}
}

// Tree returns the tree configuration this Core was constructed with.
func (e *engine) Tree() Tree {
	return e.store.tree
}

// AddMember allocates a new, isolated member. Isolated members violate
// no invariant, so this never fails on policy.
func (e *engine) AddMember(input MemberInput) (*Member, error) {
	m := input.toMember(newID())
	e.store.put(m)
	return m.clone(), nil
}

// UpdateMember applies attribute changes only. Structural fields
// (spouse/parent/child ids) are never accepted here — see MemberPatch.
func (e *engine) UpdateMember(id string, patch MemberPatch) (*Member, error) {
	m, ok := e.store.get(id)
	if !ok {
		return nil, errNotFound(id)
	}
	patch.applyTo(m)
	return m.clone(), nil
}

// RemoveMember is idempotent. It deletes every edge incident on id from
// the other endpoint before deleting id itself, restoring invariants 1-3
// (referential integrity, symmetric spouse/parent-child edges) before
// the member vanishes. Orphaned children are allowed; they become roots.
func (e *engine) RemoveMember(id string) {
	m, ok := e.store.get(id)
	if !ok {
		return
	}

	for _, sID := range m.SpouseIDs {
		if s, ok := e.store.get(sID); ok {
			s.SpouseIDs = removeID(s.SpouseIDs, id)
		}
	}
	for _, pID := range m.ParentIDs {
		if p, ok := e.store.get(pID); ok {
			p.ChildIDs = removeID(p.ChildIDs, id)
		}
	}
	for _, cID := range m.ChildIDs {
		if c, ok := e.store.get(cID); ok {
			c.ParentIDs = removeID(c.ParentIDs, id)
		}
	}

	e.store.delete(id)
}

// GetMember returns a copy of the member, or false if id is unknown.
func (e *engine) GetMember(id string) (*Member, bool) {
	m, ok := e.store.get(id)
	if !ok {
		return nil, false
	}
	return m.clone(), true
}

// ListMembers returns a copy of every member. Order is unspecified.
func (e *engine) ListMembers() []*Member {
	vals := e.store.values()
	out := make([]*Member, 0, len(vals))
	for _, m := range vals {
		out = append(out, m.clone())
	}
	return out
}

// FindMemberByName is a case-insensitive exact-match lookup. On
// collision it returns the first hit encountered; callers must treat
// this as a UX convenience, never as identity.
func (e *engine) FindMemberByName(name string) (*Member, bool) {
	target := strings.ToLower(name)
	for _, m := range e.store.values() {
		if strings.ToLower(m.Name) == target {
			return m.clone(), true
		}
	}
	return nil, false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{}
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
