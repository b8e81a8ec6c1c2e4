package download

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/handlers/downloads"
	"github.com/tdkit/tdkit/mansion/mansiontest"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func fileState(id int32, downloaded int64, active, completed bool) *tdapi.File {
	return &tdapi.File{
		ID:   id,
		Size: 4096,
		Local: &tdapi.LocalFile{
			Path:                   "/td/files/documents/notes.pdf",
			IsDownloadingActive:    active,
			IsDownloadingCompleted: completed,
			DownloadedSize:         downloaded,
		},
		Remote: &tdapi.RemoteFile{},
	}
}

func Test_Download(t *testing.T) {
	var priority int32
	h := mansiontest.New(t, func(e *mockengine.Engine) {
		e.Handle(tdapi.TypeDownloadFile, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
			var p tdapi.DownloadFile
			if err := json.Unmarshal(req.Raw, &p); err != nil {
				return nil, err
			}
			priority = p.Priority
			e.Enqueue(&tdapi.UpdateFile{File: fileState(p.FileID, 2048, true, false)})
			e.Enqueue(&tdapi.UpdateFile{File: fileState(p.FileID, 4096, false, true)})
			return fileState(p.FileID, 0, true, false), nil
		})
	})

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Do(c, h.Ctx, 77, 8)
	require.NoError(t, err)
	assert.EqualValues(t, 77, res.FileID)
	assert.EqualValues(t, 4096, res.Size)
	assert.Equal(t, "/td/files/documents/notes.pdf", res.Path)
	assert.EqualValues(t, 8, priority)
}

func Test_DownloadCancelledByEngine(t *testing.T) {
	h := mansiontest.New(t, func(e *mockengine.Engine) {
		e.Handle(tdapi.TypeDownloadFile, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
			e.Enqueue(&tdapi.UpdateFile{File: fileState(5, 50, true, false)})
			e.Enqueue(&tdapi.UpdateFile{File: fileState(5, 100, false, false)})
			return fileState(5, 0, true, false), nil
		})
	})

	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := Do(c, h.Ctx, 5, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, downloads.ErrCancelled)
}

func Test_DownloadBadPriority(t *testing.T) {
	h := mansiontest.New(t, nil)

	_, err := Do(context.Background(), h.Ctx, 5, 33)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 32")
	assert.Nil(t, h.Engine(), "no session is opened")
}
