package genealogy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddMember_IsolatedNeverFailsOnPolicy(t *testing.T) {
	c := newTestCore(t, defaultSettings())

	m, err := c.AddMember(MemberInput{Name: "Ada"})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.Equal(t, "Ada", m.Name)
	require.Empty(t, m.SpouseIDs)
	require.Empty(t, m.ParentIDs)
	require.Empty(t, m.ChildIDs)
}

func TestUpdateMember_AttributesOnly(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	m := mustAddMember(t, c, "Ada")

	newName := "Ada Lovelace"
	updated, err := c.UpdateMember(m.ID, MemberPatch{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", updated.Name)
}

func TestUpdateMember_NotFound(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	_, err := c.UpdateMember("missing", MemberPatch{})
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestRemoveMember_Idempotent(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	m := mustAddMember(t, c, "Ada")

	c.RemoveMember(m.ID)
	_, ok := c.GetMember(m.ID)
	require.False(t, ok)

	// Second removal is a no-op, not an error.
	c.RemoveMember(m.ID)
	_, ok = c.GetMember(m.ID)
	require.False(t, ok)
}

// TestS4_CascadingDelete checks that removing a member with both a
// spouse and a child restores invariants and leaves the child as a
// legitimate orphan.
func TestS4_CascadingDelete(t *testing.T) {
	c := newTestCore(t, defaultSettings())

	p := mustAddMember(t, c, "P")
	s, err := c.AddSpouse(p.ID, MemberInput{Name: "S"})
	require.NoError(t, err)
	child := mustAddChild(t, c, p.ID, "C", "")

	c.RemoveMember(p.ID)

	sAfter, ok := c.GetMember(s.ID)
	require.True(t, ok)
	require.Empty(t, sAfter.SpouseIDs)

	childAfter, ok := c.GetMember(child.ID)
	require.True(t, ok)
	require.Empty(t, childAfter.ParentIDs)

	// Both the child and the surviving spouse are now parentless, so each
	// gets its own orphan warning.
	report := c.Validate()
	require.True(t, report.OK())
	require.Len(t, report.Warnings, 2)
	warnings := strings.Join(report.Warnings, "\n")
	require.Contains(t, warnings, "[Orphan]")
	require.Contains(t, warnings, child.ID)
	require.Contains(t, warnings, s.ID)
}

func TestFindMemberByName_CaseInsensitive(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	mustAddMember(t, c, "Ada Lovelace")

	found, ok := c.FindMemberByName("ada lovelace")
	require.True(t, ok)
	require.Equal(t, "Ada Lovelace", found.Name)

	_, ok = c.FindMemberByName("nobody")
	require.False(t, ok)
}

func TestListMembers(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	mustAddMember(t, c, "A")
	mustAddMember(t, c, "B")

	require.Len(t, c.ListMembers(), 2)
}
