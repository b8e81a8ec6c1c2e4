// Package auth drives a client through TDLib's authorization states.
package auth

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/messages"
)

// ErrClosed is returned by Wait when the engine closed before the client
// was authorized.
var ErrClosed = errors.New("auth: engine closed before authorization completed")

const defaultMaxAttempts = 3

// Flow answers every authorization state the engine reports, until it is
// ready or something fails.
type Flow struct {
	params        *tdapi.SetTdlibParameters
	authenticator Authenticator

	// How many times a rejected code or password is asked for again.
	MaxAttempts int

	stateLock sync.Mutex
	state     string

	ready     chan struct{}
	readyOnce sync.Once

	failed   chan struct{}
	failOnce sync.Once
	err      error
}

func NewFlow(params *tdapi.SetTdlibParameters, authenticator Authenticator) *Flow {
	return &Flow{
		params:        params,
		authenticator: authenticator,
		MaxAttempts:   defaultMaxAttempts,
		ready:         make(chan struct{}),
		failed:        make(chan struct{}),
	}
}

func (f *Flow) Register(router *tdapi.Router) {
	messages.UpdateAuthorizationState.Register(router, f.onState)
}

// Start wakes the engine up: a fresh client reports its first state on the
// first request it receives.
func (f *Flow) Start(ctx context.Context, caller tdapi.Caller) error {
	_, err := messages.GetAuthorizationState.Call(ctx, caller, &tdapi.GetAuthorizationState{})
	return err
}

// Wait blocks until the client is authorized, the flow failed or ctx is done.
func (f *Flow) Wait(ctx context.Context) error {
	select {
	case <-f.ready:
		return nil
	case <-f.failed:
		return f.err
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Ready is closed once the engine reports authorizationStateReady.
func (f *Flow) Ready() <-chan struct{} {
	return f.ready
}

// State returns the type of the last reported authorization state.
func (f *Flow) State() string {
	f.stateLock.Lock()
	defer f.stateLock.Unlock()
	return f.state
}

func (f *Flow) fail(err error) {
	f.failOnce.Do(func() {
		f.err = err
		close(f.failed)
	})
}

func (f *Flow) onState(uc *tdapi.UpdateContext, u *tdapi.UpdateAuthorizationState) {
	if u.AuthorizationState == nil {
		return
	}
	tag := u.AuthorizationState.ObjectType()

	f.stateLock.Lock()
	f.state = tag
	f.stateLock.Unlock()
	uc.Consumer.Debugf("Authorization state: %s", tag)

	switch s := u.AuthorizationState.(type) {
	case *tdapi.AuthorizationStateWaitTdlibParameters:
		f.step(uc, "send TDLib parameters", func(uc *tdapi.UpdateContext) error {
			if f.params == nil {
				return errors.New("no TDLib parameters configured")
			}
			_, err := messages.SetTdlibParameters.Call(uc.Ctx, uc, f.params)
			return err
		})

	case *tdapi.AuthorizationStateWaitPhoneNumber:
		f.step(uc, "send credentials", func(uc *tdapi.UpdateContext) error {
			creds, err := f.authenticator.Credentials(uc.Ctx)
			if err != nil {
				return err
			}
			if creds.BotToken != "" {
				_, err = messages.CheckAuthenticationBotToken.Call(uc.Ctx, uc,
					tdapi.NewCheckAuthenticationBotToken(creds.BotToken))
				return err
			}
			_, err = messages.SetAuthenticationPhoneNumber.Call(uc.Ctx, uc,
				tdapi.NewSetAuthenticationPhoneNumber(creds.PhoneNumber))
			return err
		})

	case *tdapi.AuthorizationStateWaitCode:
		f.step(uc, "send authentication code", func(uc *tdapi.UpdateContext) error {
			return f.retry(uc, AnswerCode, func() error {
				code, err := f.authenticator.Code(uc.Ctx, s.CodeInfo)
				if err != nil {
					return err
				}
				_, err = messages.CheckAuthenticationCode.Call(uc.Ctx, uc, tdapi.NewCheckAuthenticationCode(code))
				return err
			})
		})

	case *tdapi.AuthorizationStateWaitRegistration:
		f.step(uc, "register user", func(uc *tdapi.UpdateContext) error {
			first, last, err := f.authenticator.Registration(uc.Ctx)
			if err != nil {
				return err
			}
			_, err = messages.RegisterUser.Call(uc.Ctx, uc, tdapi.NewRegisterUser(first).WithLastName(last))
			return err
		})

	case *tdapi.AuthorizationStateWaitPassword:
		f.step(uc, "send password", func(uc *tdapi.UpdateContext) error {
			return f.retry(uc, AnswerPassword, func() error {
				password, err := f.authenticator.Password(uc.Ctx, s.PasswordHint)
				if err != nil {
					return err
				}
				_, err = messages.CheckAuthenticationPassword.Call(uc.Ctx, uc, tdapi.NewCheckAuthenticationPassword(password))
				return err
			})
		})

	case *tdapi.AuthorizationStateReady:
		f.readyOnce.Do(func() {
			uc.Consumer.Infof("Authorized")
			close(f.ready)
		})

	case *tdapi.AuthorizationStateClosed:
		f.fail(ErrClosed)
	}
}

// step runs fn as a background task, since it waits on the engine and
// updates must keep flowing meanwhile.
func (f *Flow) step(uc *tdapi.UpdateContext, desc string, fn func(uc *tdapi.UpdateContext) error) {
	uc.QueueBackgroundTask(tdapi.BackgroundTask{
		Desc: desc,
		Do: func(uc *tdapi.UpdateContext) error {
			err := fn(uc)
			if err != nil {
				f.fail(errors.WithMessage(err, desc))
			}
			return err
		},
	})
}

// retry asks again after a rejected answer, as long as the authenticator
// can give a different one.
func (f *Flow) retry(uc *tdapi.UpdateContext, what string, fn func() error) error {
	attempts := f.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	retrier, ok := f.authenticator.(Retrier)
	if !ok {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !tdapi.IsCode(err, tdapi.CodeBadRequest) {
			return err
		}
		if i == attempts-1 || !retrier.Rejected(what) {
			return err
		}
		uc.Consumer.Warnf("Rejected (%v), %d attempt(s) left", err, attempts-i-1)
	}
	return err
}
