package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/database"
)

func seed(t *testing.T) *database.DB {
	db, err := database.Open(&state.Consumer{}, filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.InsertFrames([]*database.Frame{
		{RecordedAt: old, Direction: "out", Type: "getMe", Extra: "1", Payload: []byte(`{"@type":"getMe","@extra":"1"}`)},
		{RecordedAt: old, Direction: "in", Type: "user", Extra: "1", Payload: []byte(`{"@type":"user","@extra":"1"}`)},
		{Direction: "in", Type: "updateNewMessage", Payload: []byte(`{"@type":"updateNewMessage"}`)},
	}))
	return db
}

func Test_List(t *testing.T) {
	db := seed(t)

	frames, err := List(db, database.FrameFilter{Extra: "1"})
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, "out", frames[0].Direction)
	assert.Equal(t, "getMe", frames[0].Type)
	assert.Equal(t, "user", frames[1].Type)
	assert.JSONEq(t, `{"@type":"user","@extra":"1"}`, string(frames[1].Payload))

	frames, err = List(db, database.FrameFilter{Reverse: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "updateNewMessage", frames[0].Type)

	frames, err = List(db, database.FrameFilter{Since: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	require.Len(t, frames, 1)
}

func Test_Prune(t *testing.T) {
	db := seed(t)

	res, err := Prune(db, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pruned)
	assert.EqualValues(t, 1, res.Frames)

	res, err = Prune(db, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Pruned)
}
