package mockengine

import (
	"encoding/json"

	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

type AuthFlowOpts struct {
	Code     string
	Password string
	BotToken string

	// Ask for first and last name after the code.
	Register bool

	Me *tdapi.User
}

// InstallAuthFlow makes the engine walk through the authorization states the
// way a fresh engine does, starting when the client sends getAuthorizationState.
func InstallAuthFlow(e *Engine, opts AuthFlowOpts) {
	state := func(s tdapi.AuthorizationState) *tdapi.UpdateAuthorizationState {
		return &tdapi.UpdateAuthorizationState{AuthorizationState: s}
	}
	invalid := func(msg string) error {
		return &tdapi.Error{Code: 400, Message: msg}
	}
	afterCode := func(e *Engine) {
		switch {
		case opts.Register:
			e.Enqueue(state(&tdapi.AuthorizationStateWaitRegistration{}))
		case opts.Password != "":
			e.Enqueue(state(&tdapi.AuthorizationStateWaitPassword{PasswordHint: "usual"}))
		default:
			e.Enqueue(state(&tdapi.AuthorizationStateReady{}))
		}
	}

	e.Handle(tdapi.TypeGetAuthorizationState, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		// a fresh engine announces its state on the first request it gets
		e.Enqueue(state(&tdapi.AuthorizationStateWaitTdlibParameters{}))
		return &tdapi.AuthorizationStateWaitTdlibParameters{}, nil
	})
	e.Handle(tdapi.TypeSetTdlibParameters, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		var p tdapi.SetTdlibParameters
		if err := json.Unmarshal(req.Raw, &p); err != nil {
			return nil, err
		}
		if p.APIID == 0 || p.APIHash == "" {
			return nil, invalid("Valid api_id must be provided")
		}
		e.Enqueue(state(&tdapi.AuthorizationStateWaitPhoneNumber{}))
		return nil, nil
	})
	e.Handle(tdapi.TypeSetAuthenticationPhoneNumber, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		var p tdapi.SetAuthenticationPhoneNumber
		if err := json.Unmarshal(req.Raw, &p); err != nil {
			return nil, err
		}
		e.Enqueue(state(&tdapi.AuthorizationStateWaitCode{
			CodeInfo: &tdapi.AuthenticationCodeInfo{
				PhoneNumber: p.PhoneNumber,
				Type:        &tdapi.AuthenticationCodeTypeSms{Length: int32(len(opts.Code))},
				Timeout:     60,
			},
		}))
		return nil, nil
	})
	e.Handle(tdapi.TypeCheckAuthenticationCode, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		var p tdapi.CheckAuthenticationCode
		if err := json.Unmarshal(req.Raw, &p); err != nil {
			return nil, err
		}
		if p.Code != opts.Code {
			return nil, invalid("PHONE_CODE_INVALID")
		}
		afterCode(e)
		return nil, nil
	})
	e.Handle(tdapi.TypeRegisterUser, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		if opts.Password != "" {
			e.Enqueue(state(&tdapi.AuthorizationStateWaitPassword{PasswordHint: "usual"}))
		} else {
			e.Enqueue(state(&tdapi.AuthorizationStateReady{}))
		}
		return nil, nil
	})
	e.Handle(tdapi.TypeCheckAuthenticationPassword, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		var p tdapi.CheckAuthenticationPassword
		if err := json.Unmarshal(req.Raw, &p); err != nil {
			return nil, err
		}
		if p.Password != opts.Password {
			return nil, invalid("PASSWORD_HASH_INVALID")
		}
		e.Enqueue(state(&tdapi.AuthorizationStateReady{}))
		return nil, nil
	})
	e.Handle(tdapi.TypeCheckAuthenticationBotToken, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		var p tdapi.CheckAuthenticationBotToken
		if err := json.Unmarshal(req.Raw, &p); err != nil {
			return nil, err
		}
		if p.Token != opts.BotToken {
			return nil, &tdapi.Error{Code: 401, Message: "ACCESS_TOKEN_INVALID"}
		}
		e.Enqueue(state(&tdapi.AuthorizationStateReady{}))
		return nil, nil
	})
	e.Handle(tdapi.TypeClose, func(e *Engine, req tdjson.Envelope) (tdapi.Object, error) {
		e.Enqueue(state(&tdapi.AuthorizationStateClosing{}))
		e.Enqueue(state(&tdapi.AuthorizationStateClosed{}))
		return nil, nil
	})

	me := opts.Me
	if me == nil {
		me = &tdapi.User{
			ID:        42,
			FirstName: "Test",
			LastName:  "User",
			Status:    &tdapi.UserStatusOnline{Expires: 1700000000},
			Type:      &tdapi.UserTypeRegular{},
		}
	}
	e.HandleWith(tdapi.TypeGetMe, me)
}
