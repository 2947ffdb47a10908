package prompt

import (
	"testing"

	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func basicSet(t *testing.T) *jobdescmodels.FieldSet {
	profile, ok := jobdescmodels.GetProfile(jobdescmodels.ProfileBasic)
	require.True(t, ok)
	set := jobdescmodels.NewFieldSet(profile)
	require.NoError(t, set.Set(jobdescmodels.FieldJobType, "Full-time"))
	require.NoError(t, set.Set(jobdescmodels.FieldTechStack, "Python, React"))
	require.NoError(t, set.Set(jobdescmodels.FieldExperience, "Senior"))
	require.NoError(t, set.Set(jobdescmodels.FieldFunctionalities, "Build APIs"))
	require.NoError(t, set.Set(jobdescmodels.FieldLocation, "Remote"))
	return set
}

func TestBuild(t *testing.T) {
	t.Run(`deterministic`, func(t *testing.T) {
		first, err := Build(basicSet(t))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			next, err := Build(basicSet(t))
			require.NoError(t, err)
			require.Equal(t, first, next)
		}
		require.Contains(t, first, "- Job Type: Full-time\n")
		require.Contains(t, first, "- Tech Stack: Python, React\n")
		require.Contains(t, first, "- Experience Level: Senior\n")
		require.Contains(t, first, "- Main Functionalities/Responsibilities: Build APIs\n")
		require.Contains(t, first, "- Location: Remote\n")
		require.NotContains(t, first, "Company Name")
	})

	t.Run(`values embedded verbatim`, func(t *testing.T) {
		profile, _ := jobdescmodels.GetProfile(jobdescmodels.ProfileFull)
		set := jobdescmodels.NewFieldSet(profile)
		values := map[jobdescmodels.FieldName]string{
			jobdescmodels.FieldCompanyName:     `Acme <b>&</b> "Sons"`,
			jobdescmodels.FieldJobType:         "Contract",
			jobdescmodels.FieldExperience:      "Junior",
			jobdescmodels.FieldTechStack:       "Go, {{.x}}",
			jobdescmodels.FieldFunctionalities: "line1\nline2",
			jobdescmodels.FieldLocation:        "  Berlin  ",
			jobdescmodels.FieldRemark:          "100% remote-friendly",
		}
		for k, v := range values {
			require.NoError(t, set.Set(k, v))
		}
		result, err := Build(set)
		require.NoError(t, err)
		for _, v := range values {
			require.Contains(t, result, v)
		}
		require.Contains(t, result, "1. Job Title (create an appropriate title)")
		require.Contains(t, result, "6. Nice-to-have skills (optional, infer from tech stack)")
	})

	t.Run(`incomplete set rejected`, func(t *testing.T) {
		set := basicSet(t)
		require.NoError(t, set.Set(jobdescmodels.FieldLocation, ""))
		result, err := Build(set)
		require.Error(t, err)
		require.True(t, errors.Is(err, jobdescmodels.ErrIncompleteForm))
		require.Empty(t, result)

		_, err = Build(nil)
		require.True(t, errors.Is(err, jobdescmodels.ErrIncompleteForm))
	})
}
