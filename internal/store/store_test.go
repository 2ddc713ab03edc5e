package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/linprimer/internal/lesson"
)

func recordNumberLine(t *testing.T, ticks int) *Run {
	t.Helper()
	sec, err := lesson.Lookup("vectors")
	require.NoError(t, err)
	run, err := Record(context.Background(), sec, 1, ticks)
	require.NoError(t, err)
	return run
}

func TestRecord(t *testing.T) {
	run := recordNumberLine(t, 3)

	assert.Equal(t, "vectors", run.Section)
	assert.Equal(t, 1, run.Index)
	assert.Equal(t, []string{"x"}, run.Readouts)
	assert.Equal(t, []int{0, 1, 2, 3}, run.Ticks)

	xs, ok := run.Column("x")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0, 0.04, 0.09, 0.14}, xs, 1e-9)

	assert.InDelta(t, 0.14, run.Metrics["x_range"], 1e-9)
	assert.InDelta(t, 0.0675, run.Metrics["x_mean"], 1e-9)
	assert.Contains(t, run.Metrics, "tip_travel")

	_, ok = run.Column("y")
	assert.False(t, ok)
}

func TestRecordErrors(t *testing.T) {
	sec, err := lesson.Lookup("vectors")
	require.NoError(t, err)

	_, err = Record(context.Background(), sec, 0, -1)
	assert.ErrorIs(t, err, ErrBadTicks)

	_, err = Record(context.Background(), sec, 99, 1)
	assert.ErrorIs(t, err, lesson.ErrNoAnimation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Record(ctx, sec, 0, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	run := recordNumberLine(t, 3)
	runID, err := st.Save(run, SaveOptions{Name: "line", FPS: 30, Precision: 2})
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "vectors", meta.Section)
	assert.Equal(t, 4, meta.Ticks)
	assert.Equal(t, 30, meta.FPS)
	assert.Equal(t, []string{"x"}, meta.Readouts)
	assert.InDelta(t, 0.14, meta.Metrics["x_range"], 1e-9)

	frames, err := st.LoadFrames(runID)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, frames.Columns)
	assert.Equal(t, []int{0, 1, 2, 3}, frames.Ticks)
	xs, ok := frames.Column("x")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0, 0.04, 0.09, 0.14}, xs, 1e-9)
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	require.NoError(t, st.Init())

	runID, err := st.Save(recordNumberLine(t, 1), SaveOptions{})
	require.NoError(t, err)

	for _, name := range []string{"metadata.json", "frames.csv"} {
		_, err := os.Stat(filepath.Join(tmpDir, runID, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, runID, "frames.csv"))
	require.NoError(t, err)
	assert.Equal(t, "tick,x\n0,0.000000\n1,0.040000\n", string(data))
}

func TestStoreListAndResolve(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "runs"))

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, st.Init())
	sec, err := lesson.Lookup("spaces")
	require.NoError(t, err)
	run, err := Record(context.Background(), sec, 0, 2)
	require.NoError(t, err)
	assert.Empty(t, run.Readouts)

	id, err := st.Save(run, SaveOptions{Name: "axes"})
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)

	got, err := st.Resolve(id[:8])
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = st.Resolve("axes")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = st.Resolve("no-such-run")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = st.Load("no-such-run")
	assert.ErrorIs(t, err, ErrRunNotFound)

	frames, err := st.LoadFrames(id)
	require.NoError(t, err)
	assert.Empty(t, frames.Columns)
	assert.Len(t, frames.Ticks, 3)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, recordNumberLine(t, 2)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "vectors", out["section"])
	assert.EqualValues(t, 3, out["steps"])
	assert.Contains(t, out, "final")

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, ExportJSON(path, recordNumberLine(t, 1)))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
