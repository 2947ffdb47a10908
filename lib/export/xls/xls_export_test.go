package xlsexport

import (
	"testing"

	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportJobDescription(t *testing.T) {
	t.Run(`fields and description rows`, func(t *testing.T) {
		set, err := jobdescmodels.FormRequest{
			Profile: jobdescmodels.ProfileBasic,
			Fields: map[jobdescmodels.FieldName]string{
				jobdescmodels.FieldJobType:  "Contract",
				jobdescmodels.FieldLocation: "Remote",
			},
		}.FieldSet(jobdescmodels.ProfileBasic)
		require.NoError(t, err)

		buf, err := ExportJobDescription(set, "# Title\nbody")
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(SheetName)
		require.NoError(t, err)
		require.Len(t, rows, 7)
		require.Equal(t, []string{"Field", "Value"}, rows[0])
		require.Equal(t, []string{"job_type", "Contract"}, rows[1])
		require.Equal(t, "tech_stack", rows[2][0])
		require.Equal(t, []string{"location", "Remote"}, rows[5])
		require.Equal(t, []string{"Description", "# Title\nbody"}, rows[6])
	})
}
