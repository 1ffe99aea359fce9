package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danfiner/projsa/internal/report"
)

func TestWriter_WritesPairsAndTrailer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finalConfig.txt")
	w, err := report.NewWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.WritePair(1, 2, 3))
	require.NoError(t, w.WritePair(2, 1, 1))
	require.NoError(t, w.Finish(-12.5))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1,2,3\n2,1,1\nFinal energy: -12.500000\n", string(data))
}

func TestWriter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finalConfig.txt")

	first, err := report.NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, first.WritePair(1, 1, 1))
	require.NoError(t, first.Finish(0))

	second, err := report.NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, second.WritePair(2, 2, 2))
	require.NoError(t, second.Finish(1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1,1,1\nFinal energy: 0.000000\n2,2,2\nFinal energy: 1.000000\n", string(data))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finalConfig.json")
	summary := report.Summary{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Assignments: []report.Assignment{{Pair: 1, Project: 2, Pref: 1}},
		FinalEnergy: -3.5,
	}
	require.NoError(t, report.WriteJSON(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded report.Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, summary.RunID, decoded.RunID)
	require.Equal(t, summary.FinalEnergy, decoded.FinalEnergy)
	require.Equal(t, summary.Assignments, decoded.Assignments)
}
