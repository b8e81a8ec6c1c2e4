package downloads_test

import (
	"bytes"
	"context"
	"go/format"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/handlers/downloads"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func fileState(id int32, size, downloaded int64, active, completed bool) *tdapi.File {
	return &tdapi.File{
		ID:   id,
		Size: size,
		Local: &tdapi.LocalFile{
			Path:                   "/tmp/file",
			IsDownloadingActive:    active,
			IsDownloadingCompleted: completed,
			DownloadedSize:         downloaded,
		},
		Remote: &tdapi.RemoteFile{},
	}
}

type progressRecorder struct {
	lock   sync.Mutex
	values []float64
}

func (pr *progressRecorder) consumer() *state.Consumer {
	return &state.Consumer{
		OnProgress: func(alpha float64) {
			pr.lock.Lock()
			defer pr.lock.Unlock()
			pr.values = append(pr.values, alpha)
		},
	}
}

func setup(t *testing.T, consumer *state.Consumer) (*mockengine.Engine, *tdapi.Client, *downloads.Manager) {
	t.Helper()

	engine, transport := mockengine.New()
	router := tdapi.NewRouter(&state.Consumer{})
	manager := downloads.NewManager(consumer)
	manager.Register(router)

	client, err := tdapi.NewClient(context.Background(), tdapi.ClientOpts{
		Transport: transport,
		Router:    router,
		Consumer:  &state.Consumer{},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
		engine.Close()
	})
	return engine, client, manager
}

func Test_DownloadCompletes(t *testing.T) {
	pr := &progressRecorder{}
	engine, client, manager := setup(t, pr.consumer())

	engine.Handle(tdapi.TypeDownloadFile, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
		e.Enqueue(&tdapi.UpdateFile{File: fileState(9, 1000, 500, true, false)})
		e.Enqueue(&tdapi.UpdateFile{File: fileState(9, 1000, 1000, false, true)})
		return fileState(9, 1000, 0, true, false), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d, err := manager.Start(ctx, client, 9, 16)
	require.NoError(t, err)

	file, err := d.Wait(ctx)
	require.NoError(t, err)
	assert.True(t, file.Local.IsDownloadingCompleted)
	assert.InDelta(t, 1.0, d.Progress(), 0.001)

	pr.lock.Lock()
	defer pr.lock.Unlock()
	require.NotEmpty(t, pr.values)
	assert.Equal(t, 1.0, pr.values[len(pr.values)-1])
	for i := 1; i < len(pr.values); i++ {
		assert.GreaterOrEqual(t, pr.values[i], pr.values[i-1])
	}
}

func Test_DownloadCancelledByEngine(t *testing.T) {
	engine, client, manager := setup(t, nil)

	engine.Handle(tdapi.TypeDownloadFile, func(e *mockengine.Engine, req tdjson.Envelope) (tdapi.Object, error) {
		e.Enqueue(&tdapi.UpdateFile{File: fileState(3, 100, 5, true, false)})
		e.Enqueue(&tdapi.UpdateFile{File: fileState(3, 100, 10, false, false)})
		return fileState(3, 100, 0, true, false), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d, err := manager.Start(ctx, client, 3, 1)
	require.NoError(t, err)
	_, err = d.Wait(ctx)
	assert.ErrorIs(t, err, downloads.ErrCancelled)
}

func Test_CancelDownload(t *testing.T) {
	engine, client, manager := setup(t, nil)
	engine.HandleWith(tdapi.TypeDownloadFile, fileState(4, 100, 0, true, false))
	engine.HandleWith(tdapi.TypeCancelDownloadFile, &tdapi.Ok{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d, err := manager.Start(ctx, client, 4, 1)
	require.NoError(t, err)

	again, err := manager.Start(ctx, client, 4, 1)
	require.NoError(t, err)
	assert.Same(t, d, again, "an active download is reused")

	require.NoError(t, d.Cancel(ctx, client))
	_, err = d.Wait(ctx)
	assert.ErrorIs(t, err, downloads.ErrCancelled)
	assert.Contains(t, engine.ReceivedTypes(), tdapi.TypeCancelDownloadFile)
}

func Test_AlreadyDownloaded(t *testing.T) {
	engine, client, manager := setup(t, nil)
	engine.HandleWith(tdapi.TypeDownloadFile, fileState(5, 10, 10, false, true))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d, err := manager.Start(ctx, client, 5, 1)
	require.NoError(t, err)
	file, err := d.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/file", file.Local.Path)
}

func Test_InvalidPriority(t *testing.T) {
	_, client, manager := setup(t, nil)

	_, err := manager.Start(context.Background(), client, 5, 0)
	assert.Error(t, err)
}

func Test_SourcesAreFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.True(t, bytes.Equal(src, formatted), "%s needs gofmt", name)
	}
}
