package auth

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/tdapi"
)

// Credentials identify who logs in: a user by phone number, or a bot.
type Credentials struct {
	PhoneNumber string
	BotToken    string
}

// An Authenticator supplies whatever the engine asks for while authorizing.
type Authenticator interface {
	Credentials(ctx context.Context) (Credentials, error)
	Code(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error)
	Password(ctx context.Context, hint string) (string, error)
	Registration(ctx context.Context) (firstName string, lastName string, err error)
}

// What an engine can reject, as passed to Retrier.Rejected.
const (
	AnswerCode     = "code"
	AnswerPassword = "password"
)

// A Retrier is an Authenticator that can come up with another answer once
// the engine rejects one. Authenticators that don't implement it fail on
// the first rejection.
type Retrier interface {
	// Rejected forgets the answer the engine turned down and reports
	// whether asking again may give a different one.
	Rejected(what string) bool
}

// StaticAuthenticator answers from fixed values, for bots and tests.
type StaticAuthenticator struct {
	PhoneNumber string
	BotToken    string
	LoginCode   string
	Password2FA string
	FirstName   string
	LastName    string
}

var _ Authenticator = (*StaticAuthenticator)(nil)

func (sa *StaticAuthenticator) Credentials(ctx context.Context) (Credentials, error) {
	if sa.PhoneNumber == "" && sa.BotToken == "" {
		return Credentials{}, errors.New("neither phone number nor bot token configured")
	}
	return Credentials{PhoneNumber: sa.PhoneNumber, BotToken: sa.BotToken}, nil
}

func (sa *StaticAuthenticator) Code(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error) {
	if sa.LoginCode == "" {
		return "", errors.New("no authentication code configured")
	}
	return sa.LoginCode, nil
}

func (sa *StaticAuthenticator) Password(ctx context.Context, hint string) (string, error) {
	if sa.Password2FA == "" {
		return "", errors.New("no password configured")
	}
	return sa.Password2FA, nil
}

func (sa *StaticAuthenticator) Registration(ctx context.Context) (string, string, error) {
	if sa.FirstName == "" {
		return "", "", errors.New("no first name configured")
	}
	return sa.FirstName, sa.LastName, nil
}

// PromptAuthenticator asks the user on the terminal (or over JSON lines in
// JSON mode) for anything it wasn't given upfront.
type PromptAuthenticator struct {
	StaticAuthenticator
}

var _ Authenticator = (*PromptAuthenticator)(nil)
var _ Retrier = (*PromptAuthenticator)(nil)

func (pa *PromptAuthenticator) Credentials(ctx context.Context) (Credentials, error) {
	if creds, err := pa.StaticAuthenticator.Credentials(ctx); err == nil {
		return creds, nil
	}
	phone := comm.Prompt("Phone number (international format):", false)
	if phone == "" {
		return Credentials{}, errors.New("no phone number given")
	}
	return Credentials{PhoneNumber: phone}, nil
}

func (pa *PromptAuthenticator) Code(ctx context.Context, info *tdapi.AuthenticationCodeInfo) (string, error) {
	if pa.LoginCode != "" {
		return pa.LoginCode, nil
	}
	return prompt(fmt.Sprintf("Code sent %s:", describeCodeType(info)), false)
}

func (pa *PromptAuthenticator) Password(ctx context.Context, hint string) (string, error) {
	if pa.Password2FA != "" {
		return pa.Password2FA, nil
	}
	question := "Password:"
	if hint != "" {
		question = fmt.Sprintf("Password (hint: %s):", hint)
	}
	return prompt(question, true)
}

func (pa *PromptAuthenticator) Registration(ctx context.Context) (string, string, error) {
	if pa.FirstName != "" {
		return pa.FirstName, pa.LastName, nil
	}
	first, err := prompt("First name:", false)
	if err != nil {
		return "", "", err
	}
	return first, comm.Prompt("Last name (optional):", false), nil
}

// Rejected drops a preset code or password, so the next attempt prompts.
func (pa *PromptAuthenticator) Rejected(what string) bool {
	switch what {
	case AnswerCode:
		pa.LoginCode = ""
	case AnswerPassword:
		pa.Password2FA = ""
	default:
		return false
	}
	return true
}

func prompt(question string, secret bool) (string, error) {
	answer := comm.Prompt(question, secret)
	if answer == "" {
		return "", errors.Errorf("no answer to %q", question)
	}
	return answer, nil
}

func describeCodeType(info *tdapi.AuthenticationCodeInfo) string {
	if info == nil {
		return ""
	}
	switch info.Type.(type) {
	case *tdapi.AuthenticationCodeTypeTelegramMessage:
		return "via Telegram to your other devices"
	case *tdapi.AuthenticationCodeTypeSms:
		return "by SMS to " + info.PhoneNumber
	case *tdapi.AuthenticationCodeTypeCall:
		return "by phone call to " + info.PhoneNumber
	case *tdapi.AuthenticationCodeTypeFlashCall:
		return "by flash call to " + info.PhoneNumber
	default:
		return "to " + info.PhoneNumber
	}
}
