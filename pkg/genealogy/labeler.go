package genealogy

import (
	"fmt"
	"strings"
)

// ComputeRelationship produces the single canonical label for the
// ordered pair (a, b). Direct-edge and in-law labels name what b is to
// a ("Parent" when b is a's parent); generational and collateral labels
// name what a is to b ("Great-Grandparent" when a is b's
// great-grandparent, "Aunt/Uncle" when a is b's aunt or uncle). The
// label is the first match
// in the priority order below: direct edges, then generational
// ancestry, then collateral kinship via the lowest common ancestor,
// then in-laws.
func (e *engine) ComputeRelationship(aID, bID string) string {
	if aID == bID {
		return "Self"
	}

	a, aOK := e.store.get(aID)
	b, bOK := e.store.get(bID)
	if !aOK || !bOK {
		return "Unknown"
	}

	if containsID(a.SpouseIDs, bID) {
		return "Spouse"
	}
	if containsID(a.ParentIDs, bID) {
		return "Parent"
	}
	if containsID(a.ChildIDs, bID) {
		return "Child"
	}

	ancestorsOfB := e.ancestorsWithDistance(bID)
	if d, ok := ancestorsOfB[aID]; ok {
		return generationalLabel(d, "Grandparent")
	}

	ancestorsOfA := e.ancestorsWithDistance(aID)
	if d, ok := ancestorsOfA[bID]; ok {
		return generationalLabel(d, "Grandchild")
	}

	if lca, ok := e.lowestCommonAncestors(aID, bID); ok {
		if label, ok := collateralLabel(lca.distA, lca.distB); ok {
			return label
		}
	}

	if label, ok := e.inLawLabel(a, bID); ok {
		return label
	}

	return "Unknown"
}

// generationalLabel renders the direct-ancestry family of labels. d=2
// is the base case ("Grandparent"/"Grandchild"); each additional
// generation prepends another "Great-".
func generationalLabel(d int, base string) string {
	if d < 2 {
		return base
	}
	return strings.Repeat("Great-", d-2) + base
}

// collateralLabel derives the sibling, aunt/uncle, niece/nephew, and
// cousin labels from the lowest common ancestor's distances to a and b.
func collateralLabel(dA, dB int) (string, bool) {
	switch {
	case dA == 1 && dB == 1:
		return "Sibling", true
	case dA == 1 && dB > 1:
		return strings.Repeat("Great-", dB-2) + "Aunt/Uncle", true
	case dB == 1 && dA > 1:
		return strings.Repeat("Great-", dA-2) + "Niece/Nephew", true
	case dA >= 1 && dB >= 1:
		cousinDegree := dA
		if dB < cousinDegree {
			cousinDegree = dB
		}
		cousinDegree--
		if cousinDegree < 1 {
			return "", false
		}
		removal := dA - dB
		if removal < 0 {
			removal = -removal
		}
		label := fmt.Sprintf("%s Cousin", ordinal(cousinDegree))
		if removal > 0 {
			label += ", " + removalWord(removal) + " removed"
		}
		return label, true
	default:
		return "", false
	}
}

// inLawLabel checks, for each spouse s of a, whether b is s's parent,
// s's child, or has a parent who is any ancestor of s (which covers b
// sharing a parent with s); the last case yields "Sibling-in-law".
func (e *engine) inLawLabel(a *Member, bID string) (string, bool) {
	for _, sID := range a.SpouseIDs {
		s, ok := e.store.get(sID)
		if !ok {
			continue
		}
		if containsID(s.ParentIDs, bID) {
			return "Parent-in-law", true
		}
		if containsID(s.ChildIDs, bID) {
			return "Child-in-law", true
		}

		b, ok := e.store.get(bID)
		if !ok {
			continue
		}
		for ancestorID := range e.ancestorsWithDistance(sID) {
			if containsID(b.ParentIDs, ancestorID) {
				return "Sibling-in-law", true
			}
		}
	}
	return "", false
}

// ListRelations enumerates every other member whose computed label
// against memberID equals labelToken, compared case-insensitively.
func (e *engine) ListRelations(memberID string, labelToken string) []*Member {
	target := strings.ToLower(labelToken)
	var out []*Member
	for _, m := range e.store.values() {
		if m.ID == memberID {
			continue
		}
		if strings.ToLower(e.ComputeRelationship(memberID, m.ID)) == target {
			out = append(out, m.clone())
		}
	}
	return out
}

// ordinal renders n using standard English ordinal suffixes, including
// the 11th/12th/13th teen exception.
func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// removalWord renders the English word for a generational removal
// count: 1 -> "once", 2 -> "twice", n>=3 -> "n times".
func removalWord(n int) string {
	switch n {
	case 1:
		return "once"
	case 2:
		return "twice"
	default:
		return fmt.Sprintf("%d times", n)
	}
}
