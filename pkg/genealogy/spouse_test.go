package genealogy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestS1_MonogamyEnforcement covers the monogamy policy scenario: a
// second spouse is rejected once a first is in place.
func TestS1_MonogamyEnforcement(t *testing.T) {
	settings := defaultSettings()
	settings.Monogamy = true
	settings.AllowPolygamy = false
	c := newTestCore(t, settings)

	a := mustAddMember(t, c, "A")

	s1, err := c.AddSpouse(a.ID, MemberInput{Name: "S1"})
	require.NoError(t, err)

	_, err = c.AddSpouse(a.ID, MemberInput{Name: "S2"})
	require.Error(t, err)
	require.True(t, IsPolicyViolation(err, ReasonMonogamy))

	aAfter, _ := c.GetMember(a.ID)
	require.Equal(t, []string{s1.ID}, aAfter.SpouseIDs)

	s1After, _ := c.GetMember(s1.ID)
	require.Equal(t, []string{a.ID}, s1After.SpouseIDs)
}

func TestAddSpouse_PolygamyWithMaxSpousesCap(t *testing.T) {
	settings := defaultSettings()
	settings.Monogamy = false
	settings.AllowPolygamy = true
	settings.MaxSpousesPerMember = intPtr(1)
	c := newTestCore(t, settings)

	a := mustAddMember(t, c, "A")
	_, err := c.AddSpouse(a.ID, MemberInput{Name: "S1"})
	require.NoError(t, err)

	_, err = c.AddSpouse(a.ID, MemberInput{Name: "S2"})
	require.Error(t, err)
	require.True(t, IsPolicyViolation(err, ReasonMaxSpouses))
}

func TestAddSpouse_PolygamyWithoutCapIsUnbounded(t *testing.T) {
	settings := defaultSettings()
	settings.AllowPolygamy = true
	c := newTestCore(t, settings)

	a := mustAddMember(t, c, "A")
	_, err := c.AddSpouse(a.ID, MemberInput{Name: "S1"})
	require.NoError(t, err)
	_, err = c.AddSpouse(a.ID, MemberInput{Name: "S2"})
	require.NoError(t, err)
	_, err = c.AddSpouse(a.ID, MemberInput{Name: "S3"})
	require.NoError(t, err)

	aAfter, _ := c.GetMember(a.ID)
	require.Len(t, aAfter.SpouseIDs, 3)
}

func TestAddSpouse_SameSexDisabled(t *testing.T) {
	settings := defaultSettings()
	settings.AllowSameSex = false
	c := newTestCore(t, settings)

	a, err := c.AddMember(MemberInput{Name: "A", Gender: "female"})
	require.NoError(t, err)

	_, err = c.AddSpouse(a.ID, MemberInput{Name: "S", Gender: "female"})
	require.Error(t, err)
	require.True(t, IsPolicyViolation(err, ReasonSameSex))

	// Opposite gender is fine.
	_, err = c.AddSpouse(a.ID, MemberInput{Name: "S2", Gender: "male"})
	require.NoError(t, err)
}

func TestAddSpouse_SameSexDisabledButGenderUnspecifiedIsAllowed(t *testing.T) {
	settings := defaultSettings()
	settings.AllowSameSex = false
	c := newTestCore(t, settings)

	a, err := c.AddMember(MemberInput{Name: "A", Gender: "female"})
	require.NoError(t, err)

	_, err = c.AddSpouse(a.ID, MemberInput{Name: "S"})
	require.NoError(t, err)
}

func TestAddSpouse_NotFound(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	_, err := c.AddSpouse("missing", MemberInput{Name: "S"})
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestRemoveSpouse_Idempotent(t *testing.T) {
	c := newTestCore(t, defaultSettings())
	a := mustAddMember(t, c, "A")
	s, err := c.AddSpouse(a.ID, MemberInput{Name: "S"})
	require.NoError(t, err)

	c.RemoveSpouse(a.ID, s.ID)
	aAfter, _ := c.GetMember(a.ID)
	require.Empty(t, aAfter.SpouseIDs)

	// Calling it again changes nothing further.
	c.RemoveSpouse(a.ID, s.ID)
	aAfter, _ = c.GetMember(a.ID)
	require.Empty(t, aAfter.SpouseIDs)
}
