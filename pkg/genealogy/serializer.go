package genealogy

import "strings"

// Payload is the plain data shape exchanged with the outside world: a
// tree and its members, with edge arrays always present (possibly
// empty). No identifiers are rewritten on the way in or out.
type Payload struct {
	Tree    Tree     `json:"tree"`
	Members []Member `json:"members"`
}

// Serialize produces a deep-copied Payload reflecting the current store.
func (e *engine) Serialize() Payload {
	return Payload{
		Tree:    e.store.tree,
		Members: e.store.snapshot(),
	}
}

// FromSerialized constructs a Core from a payload and runs the
// Validator before returning it; a payload the Validator rejects is
// never handed back as a usable Core.
func FromSerialized(payload Payload) (Core, error) {
	s := newStore(payload.Tree)
	for _, m := range payload.Members {
		cp := m.clone()
		if cp.SpouseIDs == nil {
			cp.SpouseIDs = []string{}
		}
		if cp.ParentIDs == nil {
			cp.ParentIDs = []string{}
		}
		if cp.ChildIDs == nil {
			cp.ChildIDs = []string{}
		}
		s.put(cp)
	}

	e := &engine{store: s}

	report := e.Validate()
	if !report.OK() {
		return nil, &Error{
			Kind:    KindIntegrityViolation,
			Message: strings.Join(report.Errors, "; "),
		}
	}

	return e, nil
}
