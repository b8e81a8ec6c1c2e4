// Package journal records every frame exchanged with the engine into the
// sqlite database, for later inspection with `tdcli journal`.
package journal

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/itchio/headway/state"
	"github.com/tdkit/tdkit/database"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	defaultBuffer        = 1024
	defaultBatchSize     = 128
	defaultFlushInterval = 250 * time.Millisecond
)

const redacted = "********"

// secretPaths lists, per frame type, the values that never reach the disk.
var secretPaths = map[string][]string{
	tdapi.TypeSetTdlibParameters:          {"api_hash", "database_encryption_key"},
	tdapi.TypeCheckAuthenticationCode:     {"code"},
	tdapi.TypeCheckAuthenticationPassword: {"password"},
	tdapi.TypeCheckAuthenticationBotToken: {"token"},
	tdapi.TypeAddProxy:                    {"type.password", "type.secret"},
	tdapi.TypeEditProxy:                   {"type.password", "type.secret"},
}

type Opts struct {
	Buffer        int
	BatchSize     int
	FlushInterval time.Duration

	// Frame types that are never recorded, e.g. "updateOption".
	Skip []string

	Consumer *state.Consumer
}

// Journal writes frames from a single goroutine, so that observing the
// connection never waits on the disk. When the buffer is full, frames are
// dropped and counted.
type Journal struct {
	db       *database.DB
	consumer *state.Consumer
	skip     map[string]bool

	frames        chan *database.Frame
	batchSize     int
	flushInterval time.Duration

	dropped int64

	closeLock sync.RWMutex
	closed    bool
	done      chan struct{}
}

func New(db *database.DB, opts Opts) *Journal {
	if opts.Buffer <= 0 {
		opts.Buffer = defaultBuffer
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = defaultFlushInterval
	}
	consumer := opts.Consumer
	if consumer == nil {
		consumer = &state.Consumer{}
	}

	skip := make(map[string]bool)
	for _, tag := range opts.Skip {
		skip[tag] = true
	}

	j := &Journal{
		db:            db,
		consumer:      consumer,
		skip:          skip,
		frames:        make(chan *database.Frame, opts.Buffer),
		batchSize:     opts.BatchSize,
		flushInterval: opts.FlushInterval,
		done:          make(chan struct{}),
	}
	go j.writeLoop()
	return j
}

// OnMessage has the signature of tdjson.Opts.OnMessage.
func (j *Journal) OnMessage(dir tdjson.Direction, env tdjson.Envelope) {
	if j.skip[env.Type] {
		return
	}

	frame := &database.Frame{
		RecordedAt: time.Now().UTC(),
		Direction:  string(dir),
		Type:       env.Type,
		Extra:      env.Extra,
		ClientID:   env.ClientID,
		Payload:    redact(env.Type, env.Raw),
	}

	j.closeLock.RLock()
	defer j.closeLock.RUnlock()
	if j.closed {
		atomic.AddInt64(&j.dropped, 1)
		return
	}

	select {
	case j.frames <- frame:
	default:
		atomic.AddInt64(&j.dropped, 1)
	}
}

// Dropped returns how many frames didn't make it to the database.
func (j *Journal) Dropped() int64 {
	return atomic.LoadInt64(&j.dropped)
}

// Close flushes pending frames and stops the writer. Frames observed after
// Close are dropped.
func (j *Journal) Close() {
	j.closeLock.Lock()
	if !j.closed {
		j.closed = true
		close(j.frames)
	}
	j.closeLock.Unlock()
	<-j.done
}

// redact returns a copy of raw with credentials masked.
func redact(tag string, raw []byte) []byte {
	payload := append([]byte(nil), raw...)
	for _, path := range secretPaths[tag] {
		if !gjson.GetBytes(payload, path).Exists() {
			continue
		}
		masked, err := sjson.SetBytes(payload, path, redacted)
		if err != nil {
			// keep nothing rather than the secret
			return []byte(`{"@type":"` + tag + `"}`)
		}
		payload = masked
	}
	return payload
}

func (j *Journal) writeLoop() {
	defer close(j.done)

	ticker := time.NewTicker(j.flushInterval)
	defer ticker.Stop()

	var batch []*database.Frame
	flush := func() {
		if len(batch) == 0 {
			return
		}
		err := j.db.InsertFrames(batch)
		if err != nil {
			j.consumer.Warnf("journal: could not record %d frames: %+v", len(batch), err)
			atomic.AddInt64(&j.dropped, int64(len(batch)))
		}
		batch = nil
	}

	for {
		select {
		case frame, ok := <-j.frames:
			if !ok {
				flush()
				return
			}
			batch = append(batch, frame)
			if len(batch) >= j.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
