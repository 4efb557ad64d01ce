package genealogy

// Core is the genealogy engine's single public surface. It is
// instance-scoped — multiple trees coexist as independent Core values,
// with no registry and no singleton; each is constructed per tree with
// no shared global state.
type Core interface {
	// Tree returns this Core's tree configuration.
	Tree() Tree

	// AddMember allocates a new, isolated member.
	AddMember(input MemberInput) (*Member, error)
	// UpdateMember applies attribute-only changes to an existing member.
	UpdateMember(id string, patch MemberPatch) (*Member, error)
	// RemoveMember deletes a member and every edge incident on it.
	// Idempotent.
	RemoveMember(id string)
	// GetMember looks up a member by id.
	GetMember(id string) (*Member, bool)
	// ListMembers returns every member currently in the tree.
	ListMembers() []*Member
	// FindMemberByName is a case-insensitive exact-match convenience
	// lookup, not an identity guarantee.
	FindMemberByName(name string) (*Member, bool)

	// AddSpouse creates a new member and joins it to memberID by a
	// spouse edge, subject to the tree's spouse policy.
	AddSpouse(memberID string, input MemberInput) (*Member, error)
	// RemoveSpouse removes a spouse edge in both directions. Idempotent.
	RemoveSpouse(aID, bID string)

	// AddChild allocates a new child under one or two parents, subject
	// to the tree's parent-count policy. secondParentID may be empty.
	AddChild(parentID string, input MemberInput, secondParentID string) (*Member, error)
	// RemoveChild removes a parent-child edge in both directions.
	// Idempotent.
	RemoveChild(parentID, childID string)

	// ComputeRelationship returns the canonical kinship label for the
	// ordered pair (aID, bID).
	ComputeRelationship(aID, bID string) string
	// ListRelations enumerates every member standing in the named
	// relation to memberID.
	ListRelations(memberID string, labelToken string) []*Member
	// FindPath returns the shortest sequence of ids connecting from and
	// to over the undirected union of every edge kind.
	FindPath(from, to string) []string

	// Validate runs the full integrity sweep on demand.
	Validate() Report
	// Serialize produces a plain data payload for this tree.
	Serialize() Payload
}

var _ Core = (*engine)(nil)
