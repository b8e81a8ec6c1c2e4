package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/handlers/auth"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
)

func testParams() *tdapi.SetTdlibParameters {
	return &tdapi.SetTdlibParameters{
		APIID:              94575,
		APIHash:            "a3406de8d171bb422bb6ddf3bbd800e2",
		DatabaseDirectory:  "tdlib-db",
		SystemLanguageCode: "en",
		DeviceModel:        "Desktop",
		ApplicationVersion: "1.0",
	}
}

func authorize(t *testing.T, engineOpts mockengine.AuthFlowOpts, flow *auth.Flow) (*mockengine.Engine, *tdapi.Client, error) {
	t.Helper()

	engine, transport := mockengine.New()
	mockengine.InstallAuthFlow(engine, engineOpts)

	router := tdapi.NewRouter(&state.Consumer{})
	flow.Register(router)

	client, err := tdapi.NewClient(context.Background(), tdapi.ClientOpts{
		Transport: transport,
		Router:    router,
		Consumer:  &state.Consumer{},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
		engine.Close()
		<-client.Done()
		<-engine.Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, flow.Start(ctx, client))
	return engine, client, flow.Wait(ctx)
}

func Test_PhoneLogin(t *testing.T) {
	flow := auth.NewFlow(testParams(), &auth.StaticAuthenticator{
		PhoneNumber: "+15550100",
		LoginCode:   "12345",
	})
	engine, _, err := authorize(t, mockengine.AuthFlowOpts{Code: "12345"}, flow)
	require.NoError(t, err)

	assert.Equal(t, tdapi.TypeAuthorizationStateReady, flow.State())
	assert.Equal(t, []string{
		tdapi.TypeGetAuthorizationState,
		tdapi.TypeSetTdlibParameters,
		tdapi.TypeSetAuthenticationPhoneNumber,
		tdapi.TypeCheckAuthenticationCode,
	}, engine.ReceivedTypes())

	select {
	case <-flow.Ready():
	default:
		t.Fatal("Ready should be closed")
	}
}

func Test_BotLogin(t *testing.T) {
	flow := auth.NewFlow(testParams(), &auth.StaticAuthenticator{BotToken: "123:abc"})
	engine, _, err := authorize(t, mockengine.AuthFlowOpts{BotToken: "123:abc"}, flow)
	require.NoError(t, err)

	assert.Contains(t, engine.ReceivedTypes(), tdapi.TypeCheckAuthenticationBotToken)
	assert.NotContains(t, engine.ReceivedTypes(), tdapi.TypeSetAuthenticationPhoneNumber)
}

func Test_BadBotToken(t *testing.T) {
	flow := auth.NewFlow(testParams(), &auth.StaticAuthenticator{BotToken: "nope"})
	_, _, err := authorize(t, mockengine.AuthFlowOpts{BotToken: "123:abc"}, flow)
	require.Error(t, err)
	assert.True(t, tdapi.IsCode(err, tdapi.CodeUnauthorized))
}

func Test_RegistrationAndPassword(t *testing.T) {
	flow := auth.NewFlow(testParams(), &auth.StaticAuthenticator{
		PhoneNumber: "+15550100",
		LoginCode:   "12345",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Password2FA: "hunter2",
	})
	engine, _, err := authorize(t, mockengine.AuthFlowOpts{
		Code:     "12345",
		Register: true,
		Password: "hunter2",
	}, flow)
	require.NoError(t, err)

	types := engine.ReceivedTypes()
	assert.Contains(t, types, tdapi.TypeRegisterUser)
	assert.Contains(t, types, tdapi.TypeCheckAuthenticationPassword)
}

type flakyAuthenticator struct {
	auth.StaticAuthenticator

	lock  sync.Mutex
	codes []string
	asked int
}

func (fa *flakyAuthenticator) Code(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error) {
	fa.lock.Lock()
	defer fa.lock.Unlock()
	code := fa.codes[fa.asked%len(fa.codes)]
	fa.asked++
	return code, nil
}

func (fa *flakyAuthenticator) Rejected(what string) bool {
	return what == auth.AnswerCode
}

func Test_WrongCodeIsRetried(t *testing.T) {
	fa := &flakyAuthenticator{
		StaticAuthenticator: auth.StaticAuthenticator{PhoneNumber: "+15550100"},
		codes:               []string{"00000", "12345"},
	}
	flow := auth.NewFlow(testParams(), fa)
	_, _, err := authorize(t, mockengine.AuthFlowOpts{Code: "12345"}, flow)
	require.NoError(t, err)

	fa.lock.Lock()
	defer fa.lock.Unlock()
	assert.Equal(t, 2, fa.asked)
}

func Test_WrongCodeGivesUp(t *testing.T) {
	fa := &flakyAuthenticator{
		StaticAuthenticator: auth.StaticAuthenticator{PhoneNumber: "+15550100"},
		codes:               []string{"00000"},
	}
	flow := auth.NewFlow(testParams(), fa)
	flow.MaxAttempts = 2
	_, _, err := authorize(t, mockengine.AuthFlowOpts{Code: "12345"}, flow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PHONE_CODE_INVALID")

	fa.lock.Lock()
	defer fa.lock.Unlock()
	assert.Equal(t, 2, fa.asked)
}

func Test_StaticCodeIsNotResent(t *testing.T) {
	flow := auth.NewFlow(testParams(), &auth.StaticAuthenticator{
		PhoneNumber: "+15550100",
		LoginCode:   "00000",
	})
	flow.MaxAttempts = 3
	engine, _, err := authorize(t, mockengine.AuthFlowOpts{Code: "12345"}, flow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PHONE_CODE_INVALID")

	sent := 0
	for _, typ := range engine.ReceivedTypes() {
		if typ == tdapi.TypeCheckAuthenticationCode {
			sent++
		}
	}
	assert.Equal(t, 1, sent)
}

func Test_PromptAuthenticatorForgetsRejectedAnswers(t *testing.T) {
	pa := &auth.PromptAuthenticator{StaticAuthenticator: auth.StaticAuthenticator{
		LoginCode:   "12345",
		Password2FA: "hunter2",
	}}

	assert.True(t, pa.Rejected(auth.AnswerCode))
	assert.Empty(t, pa.LoginCode)
	assert.Equal(t, "hunter2", pa.Password2FA)

	assert.True(t, pa.Rejected(auth.AnswerPassword))
	assert.Empty(t, pa.Password2FA)

	assert.False(t, pa.Rejected("token"))
}

func Test_MissingParameters(t *testing.T) {
	flow := auth.NewFlow(nil, &auth.StaticAuthenticator{PhoneNumber: "+15550100"})
	_, _, err := authorize(t, mockengine.AuthFlowOpts{}, flow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send TDLib parameters")
}

func Test_ClosedBeforeReady(t *testing.T) {
	engine, transport := mockengine.New()
	engine.HandleWith(tdapi.TypeGetAuthorizationState, &tdapi.AuthorizationStateClosed{})

	router := tdapi.NewRouter(&state.Consumer{})
	flow := auth.NewFlow(testParams(), &auth.StaticAuthenticator{})
	flow.Register(router)

	client, err := tdapi.NewClient(context.Background(), tdapi.ClientOpts{
		Transport: transport,
		Router:    router,
		Consumer:  &state.Consumer{},
	})
	require.NoError(t, err)
	defer func() {
		client.Close()
		engine.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, flow.Start(ctx, client))
	require.NoError(t, engine.Push(&tdapi.UpdateAuthorizationState{
		AuthorizationState: &tdapi.AuthorizationStateClosed{},
	}))
	assert.ErrorIs(t, flow.Wait(ctx), auth.ErrClosed)

	select {
	case <-router.ShutdownChan:
	case <-ctx.Done():
		t.Fatal("router should shut down after authorizationStateClosed")
	}
}

func Test_StaticAuthenticatorMissingValues(t *testing.T) {
	ctx := context.Background()
	sa := &auth.StaticAuthenticator{}

	_, err := sa.Credentials(ctx)
	assert.Error(t, err)
	_, err = sa.Code(ctx, nil)
	assert.Error(t, err)
	_, err = sa.Password(ctx, "")
	assert.Error(t, err)
	_, _, err = sa.Registration(ctx)
	assert.Error(t, err)
}
