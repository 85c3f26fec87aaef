package service

import (
	"context"
	"testing"

	"github.com/ilyamazurenko/Dance-partner-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestFindPartnersByCity(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	alice := e.user(t, "alice@example.com")
	bob := e.user(t, "bob@example.com")

	ap := e.profile(t, alice.ID, withCity("Berlin"))
	e.profile(t, bob.ID, withCity("Berlin"))

	found, err := e.matching.FindPartners(ctx, bob.ID, PartnerCriteria{City: ptr("berl")})
	require.NoError(t, err)
	assert.Equal(t, []uint{ap.ID}, profileIDs(found))
}

func TestFindPartnersNeverReturnsRequester(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	salsa := e.style(t, "Salsa")
	alice := e.user(t, "alice@example.com")
	e.profile(t, alice.ID, withCity("Berlin", salsa.ID))

	for _, c := range []PartnerCriteria{
		{},
		{City: ptr("Berlin")},
		{DanceStyleIDs: []uint{salsa.ID}},
		{City: ptr("ber"), DanceStyleIDs: []uint{salsa.ID}, MinSkillLevel: ptr("Advanced")},
	} {
		found, err := e.matching.FindPartners(ctx, alice.ID, c)
		require.NoError(t, err)
		assert.NotNil(t, found)
		assert.Empty(t, found)
	}
}

func TestFindPartnersStylesMatchOnce(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	salsa := e.style(t, "Salsa")
	bachata := e.style(t, "Bachata")
	tango := e.style(t, "Tango")

	me := e.user(t, "me@example.com")
	both := e.profile(t, e.user(t, "both@example.com").ID, withCity("Paris", salsa.ID, bachata.ID))
	one := e.profile(t, e.user(t, "one@example.com").ID, withCity("Paris", bachata.ID))
	e.profile(t, e.user(t, "none@example.com").ID, withCity("Paris", tango.ID))
	e.profile(t, e.user(t, "bare@example.com").ID, withCity("Paris"))

	found, err := e.matching.FindPartners(ctx, me.ID, PartnerCriteria{DanceStyleIDs: []uint{salsa.ID, bachata.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uint{one.ID, both.ID}, profileIDs(found))

	// Results carry the full style set, not just the matched styles
	require.Len(t, found[1].Styles, 2)
	assert.Equal(t, "Salsa", found[1].Styles[0].DanceStyle.Name)
}

func TestFindPartnersNewestFirst(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	me := e.user(t, "me@example.com")
	p1 := e.profile(t, e.user(t, "p1@example.com").ID, withCity("Lisbon"))
	p2 := e.profile(t, e.user(t, "p2@example.com").ID, withCity("Lisbon"))
	p3 := e.profile(t, e.user(t, "p3@example.com").ID, withCity("Lisbon"))

	found, err := e.matching.FindPartners(ctx, me.ID, PartnerCriteria{City: ptr("lisbon")})
	require.NoError(t, err)
	assert.Equal(t, []uint{p3.ID, p2.ID, p1.ID}, profileIDs(found))
}

func TestFindPartnersCityIsLiteral(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	me := e.user(t, "me@example.com")
	e.profile(t, e.user(t, "a@example.com").ID, withCity("Berlin"))
	literal := e.profile(t, e.user(t, "b@example.com").ID, withCity("100% Berlin_Mitte"))

	found, err := e.matching.FindPartners(ctx, me.ID, PartnerCriteria{City: ptr("%")})
	require.NoError(t, err)
	assert.Equal(t, []uint{literal.ID}, profileIDs(found))

	found, err = e.matching.FindPartners(ctx, me.ID, PartnerCriteria{City: ptr("n_m")})
	require.NoError(t, err)
	assert.Equal(t, []uint{literal.ID}, profileIDs(found))
}

func TestFindPartnersCombinedFilters(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	salsa := e.style(t, "Salsa")

	me := e.user(t, "me@example.com")
	hit := e.profile(t, e.user(t, "a@example.com").ID, withCity("Madrid", salsa.ID))
	e.profile(t, e.user(t, "b@example.com").ID, withCity("Madrid"))
	e.profile(t, e.user(t, "c@example.com").ID, withCity("Rome", salsa.ID))

	// A profile without a city never matches a city filter
	e.profile(t, e.user(t, "d@example.com").ID, &ProfilePatch{})

	found, err := e.matching.FindPartners(ctx, me.ID, PartnerCriteria{City: ptr("MAD"), DanceStyleIDs: []uint{salsa.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uint{hit.ID}, profileIDs(found))

	all, err := e.matching.FindPartners(ctx, me.ID, PartnerCriteria{City: ptr("")})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	var total int64
	require.NoError(t, e.db.Model(model.Profile{}).Count(&total).Error)
	assert.Equal(t, int64(4), total)
}
