package journal_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/database"
	"github.com/tdkit/tdkit/handlers/journal"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/gjson"
)

func openDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(&state.Consumer{}, filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func Test_RecordsBothDirections(t *testing.T) {
	db := openDB(t)
	j := journal.New(db, journal.Opts{Skip: []string{tdapi.TypeUpdateOption}})

	engine, transport := mockengine.New()
	engine.HandleWith(tdapi.TypeGetOption, &tdapi.OptionValueString{Value: "1.8.0"})

	client, err := tdapi.NewClient(context.Background(), tdapi.ClientOpts{
		Transport: transport,
		Consumer:  &state.Consumer{},
		OnMessage: j.OnMessage,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, engine.Push(&tdapi.UpdateOption{Name: "version", Value: &tdapi.OptionValueString{Value: "1.8.0"}}))
	_, err = client.Call(ctx, tdapi.NewGetOption("version"))
	require.NoError(t, err)

	client.Close()
	engine.Close()
	<-client.Done()
	j.Close()

	frames, err := db.ListFrames(database.FrameFilter{})
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.Equal(t, string(tdjson.DirectionOut), frames[0].Direction)
	assert.Equal(t, tdapi.TypeGetOption, frames[0].Type)
	assert.NotEmpty(t, frames[0].Extra)

	assert.Equal(t, string(tdjson.DirectionIn), frames[1].Direction)
	assert.Equal(t, tdapi.TypeOptionValueString, frames[1].Type)
	assert.Equal(t, frames[0].Extra, frames[1].Extra)

	assert.EqualValues(t, 0, j.Dropped())
}

func Test_FlushesOnInterval(t *testing.T) {
	db := openDB(t)
	j := journal.New(db, journal.Opts{FlushInterval: 10 * time.Millisecond})
	defer j.Close()

	j.OnMessage(tdjson.DirectionIn, tdjson.Envelope{Type: tdapi.TypeUpdateFile, Raw: []byte(`{"@type":"updateFile"}`)})

	assert.Eventually(t, func() bool {
		count, err := db.CountFrames()
		return err == nil && count == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func Test_DropsAfterClose(t *testing.T) {
	db := openDB(t)
	j := journal.New(db, journal.Opts{})
	j.Close()

	j.OnMessage(tdjson.DirectionIn, tdjson.Envelope{Type: tdapi.TypeOk, Raw: []byte(`{"@type":"ok"}`)})
	assert.EqualValues(t, 1, j.Dropped())
}

func Test_RedactsCredentials(t *testing.T) {
	db := openDB(t)
	j := journal.New(db, journal.Opts{})

	record := func(fn tdapi.Function) {
		raw, err := json.Marshal(fn)
		require.NoError(t, err)
		j.OnMessage(tdjson.DirectionOut, tdjson.Envelope{Type: fn.ObjectType(), Extra: fn.ObjectType(), Raw: raw})
	}
	record(tdapi.NewCheckAuthenticationPassword("correct horse battery staple"))
	record(tdapi.NewCheckAuthenticationBotToken("1234:AAAbbbCCC"))
	record(tdapi.NewCheckAuthenticationCode("31337"))
	record(&tdapi.SetTdlibParameters{
		APIID:                 94575,
		APIHash:               "a3406de8d171bb422bb6ddf3bbd800e2",
		DatabaseEncryptionKey: []byte("hunter2"),
		DatabaseDirectory:     "/var/lib/td",
	})
	record(&tdapi.AddProxy{
		Server: "proxy.example.org",
		Port:   1080,
		Type:   &tdapi.ProxyTypeSocks5{Username: "me", Password: "s3cret"},
	})
	j.Close()

	frames, err := db.ListFrames(database.FrameFilter{})
	require.NoError(t, err)
	require.Len(t, frames, 5)

	payloads := make(map[string]string)
	for _, f := range frames {
		payloads[f.Type] = string(f.Payload)
	}

	for _, secret := range []string{"correct horse", "1234:AAA", "31337", "a3406de8", "aHVudGVyMg", "s3cret"} {
		for tag, payload := range payloads {
			assert.NotContains(t, payload, secret, tag)
		}
	}

	assert.Equal(t, "********", gjson.Get(payloads[tdapi.TypeCheckAuthenticationPassword], "password").String())
	assert.Equal(t, "********", gjson.Get(payloads[tdapi.TypeAddProxy], "type.password").String())

	// the rest of the frame is left alone
	params := payloads[tdapi.TypeSetTdlibParameters]
	assert.EqualValues(t, 94575, gjson.Get(params, "api_id").Int())
	assert.Equal(t, "/var/lib/td", gjson.Get(params, "database_directory").String())
	assert.Equal(t, "me", gjson.Get(payloads[tdapi.TypeAddProxy], "type.username").String())
	assert.Equal(t, tdapi.TypeCheckAuthenticationBotToken, gjson.Get(payloads[tdapi.TypeCheckAuthenticationBotToken], `\@type`).String())
}

func Test_CloseWhileRecording(t *testing.T) {
	db := openDB(t)
	j := journal.New(db, journal.Opts{Buffer: 4096})

	const writers, perWriter = 8, 100
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < perWriter; k++ {
				j.OnMessage(tdjson.DirectionIn, tdjson.Envelope{Type: tdapi.TypeOk, Raw: []byte(`{"@type":"ok"}`)})
			}
		}()
	}
	j.Close()
	wg.Wait()

	count, err := db.CountFrames()
	require.NoError(t, err)
	assert.EqualValues(t, writers*perWriter, count+j.Dropped())
}
