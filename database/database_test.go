package database_test

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/database"
)

func openTestDB(t *testing.T) (*database.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "journal.db")
	db, err := database.Open(&state.Consumer{}, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, dbPath
}

func Test_InsertAndList(t *testing.T) {
	db, _ := openTestDB(t)

	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	frames := []*database.Frame{
		{RecordedAt: t0, Direction: "out", Type: "getMe", Extra: "a", Payload: []byte(`{"@type":"getMe","@extra":"a"}`)},
		{RecordedAt: t0.Add(time.Second), Direction: "in", Type: "user", Extra: "a", Payload: []byte(`{"@type":"user"}`)},
		{RecordedAt: t0.Add(2 * time.Second), Direction: "in", Type: "updateOption", ClientID: 1, Payload: []byte(`{"@type":"updateOption"}`)},
	}
	require.NoError(t, db.InsertFrames(frames))
	for _, f := range frames {
		assert.NotZero(t, f.ID)
	}

	all, err := db.ListFrames(database.FrameFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "getMe", all[0].Type)
	assert.Equal(t, t0, all[0].RecordedAt)
	assert.Equal(t, `{"@type":"getMe","@extra":"a"}`, string(all[0].Payload))
	assert.EqualValues(t, 1, all[2].ClientID)

	byExtra, err := db.ListFrames(database.FrameFilter{Extra: "a"})
	require.NoError(t, err)
	assert.Len(t, byExtra, 2)

	incoming, err := db.ListFrames(database.FrameFilter{Direction: "in", Reverse: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "updateOption", incoming[0].Type)

	recent, err := db.ListFrames(database.FrameFilter{Since: t0.Add(time.Second)})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	count, err := db.CountFrames()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	deleted, err := db.PruneFrames(t0.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func Test_ReopenKeepsData(t *testing.T) {
	db, dbPath := openTestDB(t)
	require.NoError(t, db.InsertFrames([]*database.Frame{
		{Direction: "out", Type: "close", Payload: []byte(`{}`)},
	}))
	require.NoError(t, db.Close())

	// migrations must not run twice
	db2, err := database.Open(&state.Consumer{}, dbPath)
	require.NoError(t, err)
	defer db2.Close()

	count, err := db2.CountFrames()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func Test_DefaultPath(t *testing.T) {
	p, err := database.DefaultPath("")
	require.NoError(t, err)
	assert.Equal(t, "journal.db", filepath.Base(p))
	assert.Equal(t, "tdkit", filepath.Base(filepath.Dir(p)))
}

func Test_GetAppDataPathXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only matters on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := database.GetAppDataPath("tdkit")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tdkit"), p)
}
