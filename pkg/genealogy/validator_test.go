package genealogy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_CleanTreeHasOneOrphanWarningPerRoot(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	p := mustAddMember(t, c, "P")
	mustAddChild(t, c, p.ID, "Kid", "")

	report := c.Validate()
	require.True(t, report.OK())
	require.Len(t, report.Warnings, 1)
	require.Contains(t, report.Warnings[0], "[Orphan]")
	require.Contains(t, report.Warnings[0], p.ID)
}

func TestValidate_DanglingSpouseReferenceIsAnIntegrityError(t *testing.T) {
	c := newTestCore(t, defaultSettings()).(*engine)
	a := mustAddMember(t, c, "A")
	stored, _ := c.store.get(a.ID)
	stored.SpouseIDs = append(stored.SpouseIDs, "ghost")

	report := c.Validate()
	require.False(t, report.OK())
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], "[Integrity]")
	require.Contains(t, report.Errors[0], "ghost")
}

func TestValidate_AsymmetricSpouseEdgeIsAnIntegrityError(t *testing.T) {
	c := newTestCore(t, defaultSettings()).(*engine)
	a := mustAddMember(t, c, "A")
	b := mustAddMember(t, c, "B")
	storedA, _ := c.store.get(a.ID)
	storedA.SpouseIDs = append(storedA.SpouseIDs, b.ID) // only one direction written

	report := c.Validate()
	require.False(t, report.OK())
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], "not symmetric")
}

func TestValidate_ParentChildCycleIsCircularError(t *testing.T) {
	c := newTestCore(t, defaultSettings()).(*engine)
	a := mustAddMember(t, c, "A")
	b := mustAddMember(t, c, "B")
	storedA, _ := c.store.get(a.ID)
	storedB, _ := c.store.get(b.ID)

	// Hand-wire a cycle: A is B's parent and B is A's parent.
	storedA.ChildIDs = append(storedA.ChildIDs, b.ID)
	storedB.ParentIDs = append(storedB.ParentIDs, a.ID)
	storedB.ChildIDs = append(storedB.ChildIDs, a.ID)
	storedA.ParentIDs = append(storedA.ParentIDs, b.ID)

	report := c.Validate()
	require.False(t, report.OK())
	require.Contains(t, strings.Join(report.Errors, "\n"), "[Circular]")
}
