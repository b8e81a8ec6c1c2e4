package tdapi_test

import (
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func envelope(t *testing.T, o tdapi.Object) tdjson.Envelope {
	t.Helper()
	bs, err := tdapi.MarshalObject(o)
	require.NoError(t, err)
	env, err := tdjson.ParseEnvelope(bs)
	require.NoError(t, err)
	return env
}

func closedState() tdapi.Object {
	return &tdapi.UpdateAuthorizationState{AuthorizationState: &tdapi.AuthorizationStateClosed{}}
}

func Test_HandlersRunInOrder(t *testing.T) {
	r := tdapi.NewRouter(&state.Consumer{})

	var calls []string
	r.RegisterUpdate(tdapi.TypeUpdateOption, func(uc *tdapi.UpdateContext) {
		calls = append(calls, "first:"+uc.Type)
	})
	r.RegisterUpdate(tdapi.TypeUpdateOption, func(uc *tdapi.UpdateContext) {
		o, err := uc.Decode()
		require.NoError(t, err)
		calls = append(calls, "second:"+o.(*tdapi.UpdateOption).Name)
	})
	r.RegisterAnyUpdate(func(uc *tdapi.UpdateContext) {
		calls = append(calls, "any:"+uc.Type)
	})

	r.Dispatch(envelope(t, &tdapi.UpdateOption{Name: "version", Value: &tdapi.OptionValueEmpty{}}))
	r.Dispatch(envelope(t, &tdapi.UpdateFile{File: &tdapi.File{ID: 1}}))

	assert.Equal(t, []string{
		"first:updateOption",
		"second:version",
		"any:updateOption",
		"any:updateFile",
	}, calls)
}

func Test_UnknownUpdateTypePanics(t *testing.T) {
	r := tdapi.NewRouter(&state.Consumer{})
	assert.Panics(t, func() {
		r.RegisterUpdate("updateFromTheFuture", func(uc *tdapi.UpdateContext) {})
	})
}

func Test_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	var logged []string
	r := tdapi.NewRouter(&state.Consumer{
		OnMessage: func(level, msg string) {
			if level == "error" {
				logged = append(logged, msg)
			}
		},
	})

	ran := false
	r.RegisterUpdate(tdapi.TypeUpdateFile, func(uc *tdapi.UpdateContext) {
		panic("oh no")
	})
	r.RegisterUpdate(tdapi.TypeUpdateFile, func(uc *tdapi.UpdateContext) {
		ran = true
	})

	r.Dispatch(envelope(t, &tdapi.UpdateFile{File: &tdapi.File{ID: 1}}))
	assert.True(t, ran)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "oh no")
}

func Test_ShutdownWaitsForBackgroundTasks(t *testing.T) {
	r := tdapi.NewRouter(&state.Consumer{})

	release := make(chan struct{})
	cancelled := make(chan struct{})
	r.RegisterUpdate(tdapi.TypeUpdateOption, func(uc *tdapi.UpdateContext) {
		uc.QueueBackgroundTask(tdapi.BackgroundTask{
			Desc: "slow",
			Do: func(uc *tdapi.UpdateContext) error {
				<-uc.Ctx.Done()
				close(cancelled)
				<-release
				return nil
			},
		})
	})

	r.Dispatch(envelope(t, &tdapi.UpdateOption{Name: "x", Value: &tdapi.OptionValueEmpty{}}))
	r.Dispatch(envelope(t, closedState()))

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("background context should be cancelled on shutdown")
	}

	select {
	case <-r.ShutdownChan:
		t.Fatal("should not shut down while a task is in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-r.ShutdownChan:
	case <-time.After(2 * time.Second):
		t.Fatal("should shut down once the task finished")
	}
}

func Test_ShutdownOnlyOnClosed(t *testing.T) {
	r := tdapi.NewRouter(&state.Consumer{})
	r.Dispatch(envelope(t, &tdapi.UpdateAuthorizationState{AuthorizationState: &tdapi.AuthorizationStateClosing{}}))

	select {
	case <-r.ShutdownChan:
		t.Fatal("closing is not closed")
	default:
	}

	r.Shutdown()
	select {
	case <-r.ShutdownChan:
	case <-time.After(2 * time.Second):
		t.Fatal("explicit shutdown with nothing in flight is immediate")
	}
}

func Test_UnboundCall(t *testing.T) {
	r := tdapi.NewRouter(&state.Consumer{})
	var callErr error
	r.RegisterUpdate(tdapi.TypeUpdateFile, func(uc *tdapi.UpdateContext) {
		_, callErr = uc.Call(uc.Ctx, &tdapi.GetMe{})
	})
	r.Dispatch(envelope(t, &tdapi.UpdateFile{File: &tdapi.File{ID: 1}}))
	assert.Error(t, callErr)
}
