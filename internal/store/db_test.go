package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-staff-reports/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "reports.db")))
}

func TestRunLifecycle(t *testing.T) {
	initTestDB(t)

	opts := model.ReportOptions{
		InputFile:  "staff.csv",
		OutputFile: "result.csv",
		Separator:  ";",
		Mode:       model.ModeSave,
	}
	require.NoError(t, SaveRun("run-1", opts))

	t.Run("a saved run starts pending with its options intact", func(t *testing.T) {
		run, err := GetRun("run-1")
		require.NoError(t, err)
		assert.Equal(t, "pending", run["status"])
		assert.Equal(t, opts, run["options"])
	})

	t.Run("status updates are visible", func(t *testing.T) {
		require.NoError(t, UpdateRunStatus("run-1", "completed"))
		run, err := GetRun("run-1")
		require.NoError(t, err)
		assert.Equal(t, "completed", run["status"])
	})

	t.Run("listing includes the run", func(t *testing.T) {
		runs, err := ListRuns()
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "run-1", runs[0]["id"])
		assert.Equal(t, string(model.ModeSave), runs[0]["mode"])
	})

	t.Run("unknown run is an error", func(t *testing.T) {
		_, err := GetRun("missing")
		assert.Error(t, err)
	})
}

func TestRunErrors(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveRun("run-2", model.ReportOptions{Mode: model.ModeSummary}))

	t.Run("nil error is a no-op", func(t *testing.T) {
		require.NoError(t, SaveRunError("run-2", nil))
		recorded, err := GetRunErrors("run-2")
		require.NoError(t, err)
		assert.Empty(t, recorded)
	})

	t.Run("recorded errors come back with their message", func(t *testing.T) {
		require.NoError(t, SaveRunError("run-2", errors.New("line 3: salary \"abc\" is not an integer")))
		recorded, err := GetRunErrors("run-2")
		require.NoError(t, err)
		require.Len(t, recorded, 1)
		assert.Contains(t, recorded[0]["message"], "line 3")
	})
}

func TestSummariesRoundTrip(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveRun("run-3", model.ReportOptions{Mode: model.ModeSummary}))

	summaries := []model.DepartmentSummary{
		{Name: "Sales", Headcount: 3, MinSalary: 700, MaxSalary: 1500, AverageSalary: 1000.5},
		{Name: "Eng", Headcount: 2, MinSalary: 1000, MaxSalary: 3000, AverageSalary: 2000},
		{Name: "HR", Headcount: 1, MinSalary: 900, MaxSalary: 900, AverageSalary: 900},
	}
	require.NoError(t, SaveSummaries("run-3", summaries))

	t.Run("report order survives the round trip", func(t *testing.T) {
		got, err := GetSummaries("run-3")
		require.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("runs do not see each other's summaries", func(t *testing.T) {
		got, err := GetSummaries("other-run")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
