// Package genealogy is the headless genealogy engine: an in-memory graph
// of members, spouse edges, and parent-child edges, plus the algorithms
// that enforce structural invariants under mutation, compute kinship
// labels, find paths between members, and validate the graph.
//
// The package performs no I/O. Every exported operation runs to
// completion before returning; there is no internal concurrency and no
// caller-visible intermediate state.
package genealogy

// Gender is an optional, free-form descriptive attribute. The empty
// value means "unspecified" and never participates in same-sex policy
// checks.
type Gender string

// Tree is the configuration and identity of one family graph.
type Tree struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Settings    TreeSettings `json:"settings"`
}

// TreeSettings is the policy the Invariant Engine consults on every
// structural mutation.
type TreeSettings struct {
	AllowSameSex             bool `json:"allowSameSex"`
	Monogamy                 bool `json:"monogamy"`
	AllowPolygamy            bool `json:"allowPolygamy"`
	MaxSpousesPerMember      *int `json:"maxSpousesPerMember,omitempty"`
	AllowSingleParent        bool `json:"allowSingleParent"`
	AllowMultiParentChildren bool `json:"allowMultiParentChildren"`
	MaxParentsPerChild       *int `json:"maxParentsPerChild,omitempty"`
}

// Member is a person node. SpouseIDs, ParentIDs, and ChildIDs are
// derived, redundant projections of the edge set: every edge is
// represented on both endpoints, and the Invariant Engine is the only
// code allowed to write them.
type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Dob      string `json:"dob,omitempty"`
	Gender   Gender `json:"gender,omitempty"`
	Deceased bool   `json:"deceased,omitempty"`
	Notes    string `json:"notes,omitempty"`

	SpouseIDs []string `json:"spouseIds"`
	ParentIDs []string `json:"parentIds"`
	ChildIDs  []string `json:"childIds"`
}

// clone returns a deep copy so callers can never mutate store-owned
// slices through a returned *Member.
func (m *Member) clone() *Member {
	if m == nil {
		return nil
	}
	out := *m
	out.SpouseIDs = append([]string{}, m.SpouseIDs...)
	out.ParentIDs = append([]string{}, m.ParentIDs...)
	out.ChildIDs = append([]string{}, m.ChildIDs...)
	return &out
}

// MemberInput is the attribute payload for creating a new member.
type MemberInput struct {
	Name     string
	Email    string
	Dob      string
	Gender   Gender
	Deceased bool
	Notes    string
}

func (in MemberInput) toMember(id string) *Member {
	return &Member{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Dob:       in.Dob,
		Gender:    in.Gender,
		Deceased:  in.Deceased,
		Notes:     in.Notes,
		SpouseIDs: []string{},
		ParentIDs: []string{},
		ChildIDs:  []string{},
	}
}

// MemberPatch is the attribute payload for updateMember. Only non-nil
// fields are applied. It deliberately has no room for SpouseIDs,
// ParentIDs, or ChildIDs — structural edits go through addSpouse,
// removeSpouse, addChild, and removeChild.
type MemberPatch struct {
	Name     *string
	Email    *string
	Dob      *string
	Gender   *Gender
	Deceased *bool
	Notes    *string
}

func (p MemberPatch) applyTo(m *Member) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Dob != nil {
		m.Dob = *p.Dob
	}
	if p.Gender != nil {
		m.Gender = *p.Gender
	}
	if p.Deceased != nil {
		m.Deceased = *p.Deceased
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
}
