package genealogy

import "fmt"

// AddSpouse creates a new member and joins it to memberId by a spouse
// edge, after checking the tree's monogamy/polygamy/maxSpouses/sameSex
// policy. On success both endpoints' SpouseIDs are updated in one
// atomic step.
func (e *engine) AddSpouse(memberID string, input MemberInput) (*Member, error) {
	member, ok := e.store.get(memberID)
	if !ok {
		return nil, errNotFound(memberID)
	}

	settings := e.store.tree.Settings
	if err := checkSpousePolicy(settings, member, input.Gender); err != nil {
		return nil, err
	}

	spouse := input.toMember(newID())
	e.store.put(spouse)

	member.SpouseIDs = append(member.SpouseIDs, spouse.ID)
	spouse.SpouseIDs = append(spouse.SpouseIDs, member.ID)

	return spouse.clone(), nil
}

func checkSpousePolicy(settings TreeSettings, member *Member, otherGender Gender) error {
	spouseCount := len(member.SpouseIDs)

	if settings.AllowPolygamy {
		if settings.MaxSpousesPerMember != nil && spouseCount >= *settings.MaxSpousesPerMember {
			return errPolicy(ReasonMaxSpouses, fmt.Sprintf(
				"member %s already has %d spouse(s), cap is %d", member.ID, spouseCount, *settings.MaxSpousesPerMember))
		}
	} else if settings.Monogamy && spouseCount > 0 {
		return errPolicy(ReasonMonogamy, fmt.Sprintf("member %s already has a spouse", member.ID))
	}

	if !settings.AllowSameSex && member.Gender != "" && otherGender != "" && member.Gender == otherGender {
		return errPolicy(ReasonSameSex, "same-sex spouse edges are disabled for this tree")
	}

	return nil
}

// RemoveSpouse is idempotent: it removes both directions of the edge,
// and calling it again when no edge remains is a no-op.
func (e *engine) RemoveSpouse(aID, bID string) {
	if a, ok := e.store.get(aID); ok {
		a.SpouseIDs = removeID(a.SpouseIDs, bID)
	}
	if b, ok := e.store.get(bID); ok {
		b.SpouseIDs = removeID(b.SpouseIDs, aID)
	}
}
