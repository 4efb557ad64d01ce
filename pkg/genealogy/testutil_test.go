package genealogy

import "testing"

// intPtr is a small test helper for the optional int fields in TreeSettings.
func intPtr(n int) *int { return &n }

func defaultSettings() TreeSettings {
	return TreeSettings{
		AllowSameSex:             true,
		Monogamy:                 false,
		AllowPolygamy:            false,
		AllowSingleParent:        true,
		AllowMultiParentChildren: false,
	}
}

func newTestCore(t *testing.T, settings TreeSettings) Core {
	t.Helper()
	return New(Tree{ID: "t1", Name: "Test Tree", Settings: settings})
}

func mustAddMember(t *testing.T, c Core, name string) *Member {
	t.Helper()
	m, err := c.AddMember(MemberInput{Name: name})
	if err != nil {
		t.Fatalf("AddMember(%q): %v", name, err)
	}
	return m
}

func mustAddChild(t *testing.T, c Core, parentID string, name string, secondParentID string) *Member {
	t.Helper()
	m, err := c.AddChild(parentID, MemberInput{Name: name}, secondParentID)
	if err != nil {
		t.Fatalf("AddChild(%q): %v", name, err)
	}
	return m
}

// cousinFamily holds the ids built by buildCousinFamily, the fixture
// behind the cousin and aunt/uncle relationship tests: a grandparent G, G's children
// P1 and P2, P1's child C1, P2's child C2, and C1's child CC1.
type cousinFamily struct {
	G, P1, P2, C1, C2, CC1 string
}

func buildCousinFamily(t *testing.T, c Core) cousinFamily {
	t.Helper()

	g := mustAddMember(t, c, "G")
	p1 := mustAddChild(t, c, g.ID, "P1", "")
	p2 := mustAddChild(t, c, g.ID, "P2", "")
	c1 := mustAddChild(t, c, p1.ID, "C1", "")
	c2 := mustAddChild(t, c, p2.ID, "C2", "")
	cc1 := mustAddChild(t, c, c1.ID, "CC1", "")

	return cousinFamily{G: g.ID, P1: p1.ID, P2: p2.ID, C1: c1.ID, C2: c2.ID, CC1: cc1.ID}
}
