package genealogy

// store owns the Tree value and the identifier-to-Member mapping. It
// accepts edits only from the Invariant Engine (engine.go, spouse.go,
// child.go) and from FromSerialized while loading a payload, and
// applies no policy of its own: get/has/put/delete are
// unconditional, and delete on an unknown id is a no-op.
//
// A flat map keyed by opaque id, with adjacency derived from it rather
// than kept in a separate edge index — the "adjacency" lives directly on
// each Member as SpouseIDs/ParentIDs/ChildIDs, a redundant projection of
// the edge set kept consistent by the Invariant Engine.
type store struct {
	tree    Tree
	members map[string]*Member
}

func newStore(tree Tree) *store {
	return &store{
		tree:    tree,
		members: make(map[string]*Member),
	}
}

func (s *store) get(id string) (*Member, bool) {
	m, ok := s.members[id]
	return m, ok
}

func (s *store) has(id string) bool {
	_, ok := s.members[id]
	return ok
}

func (s *store) put(m *Member) {
	s.members[m.ID] = m
}

func (s *store) delete(id string) {
	delete(s.members, id)
}

// values returns every member in the store. Order is unspecified.
func (s *store) values() []*Member {
	out := make([]*Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m)
	}
	return out
}

// snapshot returns a deep copy of every member, safe for a caller (e.g.
// the Serializer) to retain or mutate without affecting the store.
func (s *store) snapshot() []Member {
	out := make([]Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, *m.clone())
	}
	return out
}
