package tdapi

import "fmt"

// Code is an error code the engine is known to answer with.
type Code int32

var _ TdError = Code(0)

const (
	CodeBadRequest      Code = 400
	CodeUnauthorized    Code = 401
	CodeForbidden       Code = 403
	CodeNotFound        Code = 404
	CodeNotAcceptable   Code = 406
	CodeFloodWait       Code = 420
	CodeTooManyRequests Code = 429
	CodeInternal        Code = 500
)

var codeMessages = map[Code]string{
	CodeBadRequest:   "The request was malformed or contained invalid parameters.",
	CodeUnauthorized: "The session is not authorized.",
	CodeForbidden:    "The action is not allowed for the current user.",
	CodeNotFound:     "The requested object was not found.",

	// must never be shown to the user
	CodeNotAcceptable: "The request was not acceptable.",

	CodeFloodWait:       "Flood control: wait before retrying.",
	CodeTooManyRequests: "Too many requests: wait before retrying.",

	CodeInternal: "Internal engine error, or the client is closing.",
}

func (code Code) TdErrorMessage() string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("tdlib error %d", int32(code))
}

func (code Code) TdErrorCode() int32 {
	return int32(code)
}

func (code Code) Error() string {
	return code.TdErrorMessage()
}

func (code Code) String() string {
	return fmt.Sprintf("tdlib error: %s", code.Error())
}

// Silent returns true for codes whose message must not be displayed.
func (code Code) Silent() bool {
	return code == CodeNotAcceptable
}
