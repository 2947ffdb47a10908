package jobdescmodels

import (
	"testing"

	"jd-generator/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFieldSet(t *testing.T) {
	t.Run(`values start unset`, func(t *testing.T) {
		profile, ok := GetProfile(ProfileFull)
		require.True(t, ok)
		set := NewFieldSet(profile)
		_, ok = set.Get(FieldCompanyName)
		require.False(t, ok)
		require.Equal(t, profile.Names(), set.MissingFields())
		require.False(t, set.IsComplete())
	})

	t.Run(`single empty field blocks completion`, func(t *testing.T) {
		profile, _ := GetProfile(ProfileBasic)
		set := NewFieldSet(profile)
		for _, name := range profile.Names() {
			require.NoError(t, set.Set(name, "value"))
		}
		require.True(t, set.IsComplete())
		require.NoError(t, set.Validate())

		for _, name := range profile.Names() {
			require.NoError(t, set.Set(name, ""))
			require.False(t, set.IsComplete())
			require.Equal(t, []FieldName{name}, set.MissingFields())
			err := set.Validate()
			require.True(t, errors.Is(err, ErrIncompleteForm))
			require.Contains(t, err.Error(), string(name))
			require.NoError(t, set.Set(name, "value"))
		}
	})

	t.Run(`whitespace counts as filled`, func(t *testing.T) {
		profile, _ := GetProfile(ProfileBasic)
		set := NewFieldSet(profile)
		for _, name := range profile.Names() {
			require.NoError(t, set.Set(name, " "))
		}
		require.True(t, set.IsComplete())
	})

	t.Run(`keys fixed by profile`, func(t *testing.T) {
		profile, _ := GetProfile(ProfileBasic)
		set := NewFieldSet(profile)
		require.Error(t, set.Set(FieldCompanyName, "Acme"))
		require.Error(t, set.Set("salary", "100"))
		require.Empty(t, set.Values())
	})

	t.Run(`missing fields keep profile order`, func(t *testing.T) {
		profile, _ := GetProfile(ProfileFull)
		set := NewFieldSet(profile)
		require.NoError(t, set.Set(FieldJobType, "Full-time"))
		require.NoError(t, set.Set(FieldLocation, "Remote"))
		require.Equal(t, []FieldName{
			FieldCompanyName,
			FieldExperience,
			FieldTechStack,
			FieldFunctionalities,
			FieldRemark,
		}, set.MissingFields())
	})
}

func TestProfiles(t *testing.T) {
	t.Run(`default profile by variant`, func(t *testing.T) {
		require.Equal(t, ProfileFull, DefaultProfile(models.FormVariantSubmit))
		require.Equal(t, ProfileBasic, DefaultProfile(models.FormVariantAuto))
	})

	t.Run(`choice options`, func(t *testing.T) {
		profile, _ := GetProfile(ProfileFull)
		jobType, ok := profile.Field(FieldJobType)
		require.True(t, ok)
		require.Equal(t, FieldKindChoice, jobType.Kind)
		require.Equal(t, []string{"Full-time", "Part-time", "Contract"}, jobType.Options)
		experience, _ := profile.Field(FieldExperience)
		require.Equal(t, []string{"Junior", "Mid-level", "Senior"}, experience.Options)
		require.Len(t, profile.Fields, 7)
	})

	t.Run(`form request`, func(t *testing.T) {
		req := FormRequest{Fields: map[FieldName]string{FieldLocation: "Remote"}}
		set, err := req.FieldSet(ProfileBasic)
		require.NoError(t, err)
		require.Equal(t, ProfileBasic, set.Profile().Name)
		require.Equal(t, "Remote", set.Value(FieldLocation))

		_, err = FormRequest{Profile: "other"}.FieldSet(ProfileBasic)
		require.Error(t, err)

		_, err = FormRequest{Profile: ProfileBasic, Fields: map[FieldName]string{FieldRemark: "x"}}.FieldSet(ProfileFull)
		require.Error(t, err)
	})
}
