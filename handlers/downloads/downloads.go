// Package downloads follows file downloads through updateFile and reports
// their progress.
package downloads

import (
	"context"
	"sync"
	"time"

	"github.com/itchio/headway/state"
	"github.com/itchio/headway/tracker"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
)

// ErrCancelled is returned by Wait when the engine stopped downloading a
// file before it was complete.
var ErrCancelled = errors.New("download cancelled")

// Manager keeps track of active downloads. It must be registered on the
// router that receives the client's updates.
type Manager struct {
	consumer *state.Consumer

	lock   sync.Mutex
	active map[int32]*Download
}

func NewManager(consumer *state.Consumer) *Manager {
	if consumer == nil {
		consumer = &state.Consumer{}
	}
	return &Manager{
		consumer: consumer,
		active:   make(map[int32]*Download),
	}
}

func (m *Manager) Register(router *tdapi.Router) {
	messages.UpdateFile.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateFile) {
		if u.File == nil {
			return
		}

		m.lock.Lock()
		d, ok := m.active[u.File.ID]
		m.lock.Unlock()
		if ok {
			d.apply(u.File, true)
		}
	})
}

// Download is one file being downloaded.
type Download struct {
	FileID int32

	manager  *Manager
	consumer *state.Consumer

	lock    sync.Mutex
	file    *tdapi.File
	tracker tracker.Tracker
	started bool
	updated bool
	over    bool

	doneOnce sync.Once
	done     chan struct{}
	err      error
}

// Start asks the engine to download a file, priority being 1 (lowest)
// to 32 (highest). Progress is reported to the manager's consumer.
func (m *Manager) Start(ctx context.Context, caller tdapi.Caller, fileID int32, priority int32) (*Download, error) {
	m.lock.Lock()
	if d, ok := m.active[fileID]; ok {
		m.lock.Unlock()
		return d, nil
	}
	d := &Download{
		FileID:   fileID,
		manager:  m,
		consumer: m.consumer,
		done:     make(chan struct{}),
	}
	// registered before asking, so no updateFile is missed
	m.active[fileID] = d
	m.lock.Unlock()

	file, err := messages.DownloadFile.Call(ctx, caller, tdapi.NewDownloadFile(fileID, priority))
	if err != nil {
		d.finish(err)
		return nil, err
	}
	d.apply(file, false)
	return d, nil
}

// Cancel asks the engine to stop downloading.
func (d *Download) Cancel(ctx context.Context, caller tdapi.Caller) error {
	_, err := messages.CancelDownloadFile.Call(ctx, caller, tdapi.NewCancelDownloadFile(d.FileID))
	if err != nil {
		return err
	}
	d.finish(ErrCancelled)
	return nil
}

// Wait blocks until the file is completely downloaded and returns its
// final state.
func (d *Download) Wait(ctx context.Context) (*tdapi.File, error) {
	select {
	case <-d.done:
		if d.err != nil {
			return nil, d.err
		}
		return d.File(), nil
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}

// File returns the last known state of the file.
func (d *Download) File() *tdapi.File {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.file
}

// Progress returns a value between 0 and 1.
func (d *Download) Progress() float64 {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.tracker == nil {
		return 0
	}
	return d.tracker.Progress()
}

// ETA returns the estimated time left, if the download has been going
// on for long enough to tell.
func (d *Download) ETA() (time.Duration, bool) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.tracker == nil {
		return 0, false
	}
	stats := d.tracker.Stats()
	if stats == nil || stats.TimeLeft() == nil {
		return 0, false
	}
	return *stats.TimeLeft(), true
}

// apply records a new state of the file. The answer to downloadFile may be
// read after updates that are newer, in which case it is ignored.
func (d *Download) apply(file *tdapi.File, fromUpdate bool) {
	d.lock.Lock()
	if d.over || (!fromUpdate && d.updated) {
		d.lock.Unlock()
		return
	}
	if fromUpdate {
		d.updated = true
	}
	d.file = file

	size := totalSize(file)
	if d.tracker == nil && size > 0 {
		d.tracker = tracker.New(tracker.Opts{
			ByteAmount: &tracker.ByteAmount{Value: size},
		})
	}

	var downloaded int64
	var active, completed bool
	if file.Local != nil {
		downloaded = file.Local.DownloadedSize
		active = file.Local.IsDownloadingActive
		completed = file.Local.IsDownloadingCompleted
	}

	var alpha float64
	if size > 0 {
		alpha = float64(downloaded) / float64(size)
		if alpha > 1 {
			alpha = 1
		}
		d.tracker.SetProgress(alpha)
		d.consumer.Progress(alpha)
	}
	if active {
		d.started = true
	}
	started := d.started
	d.lock.Unlock()

	switch {
	case completed:
		d.finish(nil)
	case started && !active:
		d.finish(ErrCancelled)
	}
}

func (d *Download) finish(err error) {
	d.doneOnce.Do(func() {
		d.lock.Lock()
		d.over = true
		d.lock.Unlock()

		d.err = err
		if err == nil {
			d.consumer.Debugf("File %d downloaded", d.FileID)
		} else {
			d.consumer.Debugf("File %d: %v", d.FileID, err)
		}

		d.manager.lock.Lock()
		if d.manager.active[d.FileID] == d {
			delete(d.manager.active, d.FileID)
		}
		d.manager.lock.Unlock()

		close(d.done)
	})
}

func totalSize(file *tdapi.File) int64 {
	if file.Size > 0 {
		return file.Size
	}
	return file.ExpectedSize
}
