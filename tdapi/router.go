package tdapi

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/tdapi/horror"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

type InFlightUpdate struct {
	DispatchedAt time.Time
	Desc         string
}

type BackgroundTaskID int64

type InFlightBackgroundTask struct {
	QueuedAt time.Time
	Desc     string
}

type BackgroundTask struct {
	Desc string
	Do   func(uc *UpdateContext) error
}

type UpdateHandler func(uc *UpdateContext)

// Caller sends functions and waits for their answer.
type Caller interface {
	Call(ctx context.Context, fn Function) (json.RawMessage, error)
}

// Router hands updates to the handlers registered for their type, keeps
// track of what is still running, and shuts down once the engine reports
// authorizationStateClosed and nothing is in flight anymore.
type Router struct {
	UpdateHandlers    map[string][]UpdateHandler
	AnyUpdateHandlers []UpdateHandler
	handlersLock      sync.RWMutex

	caller Caller

	Group                *singleflight.Group
	ShutdownChan         chan struct{}
	initiateShutdownOnce sync.Once
	completeShutdownOnce sync.Once
	shuttingDown         bool
	backgroundContext    context.Context
	backgroundCancel     context.CancelFunc

	inflightUpdates         map[int64]InFlightUpdate
	inflightBackgroundTasks map[BackgroundTaskID]InFlightBackgroundTask
	inflightLock            sync.Mutex

	updateSeed           int64
	backgroundTaskIDSeed BackgroundTaskID

	globalConsumer *state.Consumer
}

func NewRouter(consumer *state.Consumer) *Router {
	backgroundContext, backgroundCancel := context.WithCancel(context.Background())
	if consumer == nil {
		consumer = comm.NewPrefixedConsumer("[router]")
	}

	return &Router{
		UpdateHandlers: make(map[string][]UpdateHandler),

		backgroundContext: backgroundContext,
		backgroundCancel:  backgroundCancel,

		inflightUpdates:         make(map[int64]InFlightUpdate),
		inflightBackgroundTasks: make(map[BackgroundTaskID]InFlightBackgroundTask),

		Group:        &singleflight.Group{},
		ShutdownChan: make(chan struct{}),

		globalConsumer: consumer,
	}
}

// Bind sets who UpdateContext.Call goes through. NewClient does this.
func (r *Router) Bind(caller Caller) {
	r.caller = caller
}

// RegisterUpdate adds a handler for one update type. Several handlers may be
// registered for the same type, they run in registration order.
// Registering an unknown type panics.
func (r *Router) RegisterUpdate(tag string, h UpdateHandler) {
	if !IsKnownType(tag) {
		panic(fmt.Sprintf("Can't register handler for unknown update type %q", tag))
	}

	r.handlersLock.Lock()
	defer r.handlersLock.Unlock()
	r.UpdateHandlers[tag] = append(r.UpdateHandlers[tag], h)
}

// RegisterAnyUpdate adds a handler that sees every update, after the
// type-specific ones.
func (r *Router) RegisterAnyUpdate(h UpdateHandler) {
	r.handlersLock.Lock()
	defer r.handlersLock.Unlock()
	r.AnyUpdateHandlers = append(r.AnyUpdateHandlers, h)
}

// HandleUpdate implements tdjson.Handler.
func (r *Router) HandleUpdate(conn *tdjson.Conn, update tdjson.Envelope) {
	r.Dispatch(update)
}

// Dispatch runs every handler interested in update, recovering panics.
func (r *Router) Dispatch(update tdjson.Envelope) {
	r.inflightLock.Lock()
	id := r.updateSeed
	r.updateSeed++
	r.onUpdateStarted(id, InFlightUpdate{
		DispatchedAt: time.Now().UTC(),
		Desc:         fmt.Sprintf("[update %d] %s", id, update.Type),
	})
	r.inflightLock.Unlock()

	defer func() {
		r.inflightLock.Lock()
		r.onUpdateFinished(id)
		r.inflightLock.Unlock()
	}()

	r.handlersLock.RLock()
	handlers := append([]UpdateHandler{}, r.UpdateHandlers[update.Type]...)
	handlers = append(handlers, r.AnyUpdateHandlers...)
	r.handlersLock.RUnlock()

	uc := r.newUpdateContext(update.Type, update.Raw)
	for _, h := range handlers {
		err := func() (err error) {
			defer horror.RecoverInto(&err)
			h(uc)
			return nil
		}()
		if err != nil {
			r.globalConsumer.Errorf("Handler for %s panicked: %+v", update.Type, err)
		}
	}

	if update.Type == TypeUpdateAuthorizationState &&
		gjson.GetBytes(update.Raw, `authorization_state.\@type`).String() == TypeAuthorizationStateClosed {
		r.initiateShutdown()
	}
}

func (r *Router) newUpdateContext(tag string, raw json.RawMessage) *UpdateContext {
	return &UpdateContext{
		Ctx:      r.backgroundContext,
		Consumer: r.globalConsumer,
		Type:     tag,
		Raw:      raw,

		Group:               r.Group,
		Shutdown:            r.initiateShutdown,
		QueueBackgroundTask: r.QueueBackgroundTask,

		caller: r.caller,
	}
}

// Shutdown starts a graceful shutdown: ShutdownChan closes once every
// in-flight update and background task has finished.
func (r *Router) Shutdown() {
	r.initiateShutdown()
}

func (r *Router) initiateShutdown() {
	r.initiateShutdownOnce.Do(func() {
		r.Logf("Initiating graceful shutdown")
		r.inflightLock.Lock()
		r.shuttingDown = true
		if r.numInflightItems() == 0 {
			r.completeShutdown()
		}
		r.inflightLock.Unlock()
		r.backgroundCancel()
	})
}

func (r *Router) numInflightItems() int {
	return len(r.inflightUpdates) + len(r.inflightBackgroundTasks)
}

// caller must hold inflightLock
func (r *Router) onUpdateStarted(id int64, u InFlightUpdate) {
	r.inflightUpdates[id] = u
}

// caller must hold inflightLock
func (r *Router) onUpdateFinished(id int64) {
	delete(r.inflightUpdates, id)
	r.opportunisticShutdown()
}

// caller must hold inflightLock
func (r *Router) generateBackgroundTaskID() BackgroundTaskID {
	id := r.backgroundTaskIDSeed
	r.backgroundTaskIDSeed++
	return id
}

// caller must hold inflightLock
func (r *Router) onBackgroundTaskQueued(id BackgroundTaskID, task InFlightBackgroundTask) {
	r.inflightBackgroundTasks[id] = task
}

// caller must hold inflightLock
func (r *Router) onBackgroundTaskFinished(id BackgroundTaskID) {
	delete(r.inflightBackgroundTasks, id)
	if r.shuttingDown {
		r.globalConsumer.Debugf("While shutting down, task %d has completed", id)
	}
	r.opportunisticShutdown()
}

// caller must hold inflightLock
func (r *Router) opportunisticShutdown() {
	if !r.shuttingDown {
		return
	}

	if r.numInflightItems() == 0 {
		r.completeShutdown()
		return
	}

	r.globalConsumer.Debugf("In-flight updates/background tasks preventing shutdown: ")
	for _, u := range r.inflightUpdates {
		r.globalConsumer.Debugf(" - %s (%v)", u.Desc, time.Since(u.DispatchedAt))
	}
	for _, task := range r.inflightBackgroundTasks {
		r.globalConsumer.Debugf(" - %s (%v)", task.Desc, time.Since(task.QueuedAt))
	}
}

func (r *Router) completeShutdown() {
	r.completeShutdownOnce.Do(func() {
		r.Logf("No in-flight work left, shutting down.")
		close(r.ShutdownChan)
	})
}

func (r *Router) doBackgroundTask(id BackgroundTaskID, bt BackgroundTask) {
	defer func() {
		r.inflightLock.Lock()
		r.onBackgroundTaskFinished(id)
		r.inflightLock.Unlock()
	}()

	uc := r.newUpdateContext("", nil)
	err := func() (retErr error) {
		defer horror.RecoverInto(&retErr)
		uc.Consumer.Debugf("Executing background task %d: %s", id, bt.Desc)
		return bt.Do(uc)
	}()
	if err != nil {
		uc.Consumer.Warnf("Background task %q failed: %+v", bt.Desc, err)
	}
}

// QueueBackgroundTask runs bt on its own goroutine. Update handlers use it for
// anything that waits on the engine, so that updates keep flowing.
func (r *Router) QueueBackgroundTask(bt BackgroundTask) {
	r.inflightLock.Lock()
	id := r.generateBackgroundTaskID()
	r.onBackgroundTaskQueued(id, InFlightBackgroundTask{
		QueuedAt: time.Now().UTC(),
		Desc:     fmt.Sprintf("[task %d] %s", id, bt.Desc),
	})
	r.inflightLock.Unlock()

	go r.doBackgroundTask(id, bt)
}

func (r *Router) Logf(format string, args ...interface{}) {
	r.globalConsumer.Infof(format, args...)
}

// UpdateContext is what update handlers and background tasks get to work with.
type UpdateContext struct {
	// Cancelled when the router starts shutting down.
	Ctx      context.Context
	Consumer *state.Consumer

	// Empty for background tasks.
	Type string
	Raw  json.RawMessage

	Group               *singleflight.Group
	Shutdown            func()
	QueueBackgroundTask func(bt BackgroundTask)

	caller Caller
}

// Call sends a function through the client the router is bound to.
func (uc *UpdateContext) Call(ctx context.Context, fn Function) (json.RawMessage, error) {
	if uc.caller == nil {
		return nil, errors.New("router is not bound to a client")
	}
	return uc.caller.Call(ctx, fn)
}

// Decode decodes the update being handled.
func (uc *UpdateContext) Decode() (Object, error) {
	return UnmarshalObject(uc.Raw)
}
