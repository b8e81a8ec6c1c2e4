//go:build tdjson

package native

/*
#cgo LDFLAGS: -ltdjson
#include <stdlib.h>
#include <td/telegram/td_json_client.h>

extern void goTdLogMessage(int, char *);

static void tdkit_set_log_callback(int max_verbosity) {
	td_set_log_message_callback(max_verbosity, (td_log_message_callback_ptr)goTdLogMessage);
}

static void tdkit_clear_log_callback(void) {
	td_set_log_message_callback(0, NULL);
}
*/
import "C"

import (
	"io"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/gjson"
)

// Available is true when the engine is linked in.
const Available = true

type receiver struct {
	mu      sync.Mutex
	clients map[int64]*transport
	started bool
}

var shared = &receiver{clients: make(map[int64]*transport)}

func (r *receiver) register(t *transport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[t.id] = t
	if !r.started {
		r.started = true
		go r.loop()
	}
}

func (r *receiver) unregister(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, id)
}

// td_receive must never be called concurrently, so one goroutine serves
// every client of the process.
func (r *receiver) loop() {
	for {
		res := C.td_receive(C.double(receiveTimeout))
		if res == nil {
			continue
		}
		msg := []byte(C.GoString(res))

		id := gjson.GetBytes(msg, `\@client_id`).Int()
		r.mu.Lock()
		t := r.clients[id]
		r.mu.Unlock()

		if t != nil {
			select {
			case t.incoming <- msg:
			case <-t.quit:
			}
		}
	}
}

type transport struct {
	id       int64
	incoming chan []byte
	quit     chan struct{}

	closeOnce sync.Once
}

// NewTransport creates a new engine-side client and returns a Transport
// bound to it.
func NewTransport() (tdjson.Transport, error) {
	t := &transport{
		id:       int64(C.td_create_client_id()),
		incoming: make(chan []byte, 1024),
		quit:     make(chan struct{}),
	}
	shared.register(t)
	return t, nil
}

func (t *transport) ClientID() int64 {
	return t.id
}

func (t *transport) Read() ([]byte, error) {
	select {
	case msg := <-t.incoming:
		return msg, nil
	case <-t.quit:
		return nil, io.EOF
	}
}

func (t *transport) Write(msg []byte) error {
	cs := C.CString(string(msg))
	defer C.free(unsafe.Pointer(cs))
	C.td_send(C.int(t.id), cs)
	return nil
}

// Close stops delivering frames to this transport. The engine-side client
// keeps running until it is sent a "close" function.
func (t *transport) Close() error {
	t.closeOnce.Do(func() {
		close(t.quit)
		shared.unregister(t.id)
	})
	return nil
}

func (Executor) Execute(request []byte) ([]byte, error) {
	cs := C.CString(string(request))
	defer C.free(unsafe.Pointer(cs))

	res := C.td_execute(cs)
	if res == nil {
		return nil, errors.New("native: td_execute returned nothing")
	}
	return []byte(C.GoString(res)), nil
}

var (
	logHandler     LogHandler
	logHandlerLock sync.RWMutex
)

// SetLogHandler routes engine log lines up to maxVerbosity to h.
// Passing a nil handler restores the engine's default logging.
func SetLogHandler(maxVerbosity int, h LogHandler) error {
	logHandlerLock.Lock()
	logHandler = h
	logHandlerLock.Unlock()

	if h == nil {
		C.tdkit_clear_log_callback()
	} else {
		C.tdkit_set_log_callback(C.int(maxVerbosity))
	}
	return nil
}

func dispatchLog(verbosity int, message string) {
	logHandlerLock.RLock()
	h := logHandler
	logHandlerLock.RUnlock()

	if h != nil {
		h(verbosity, message)
	}
}
