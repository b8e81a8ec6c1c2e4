package tdjson

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is returned by calls made on, or pending when closing, a Conn.
var ErrClosed = errors.New("tdjson: connection closed")

// Error is an answer of type "error" from the engine.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("tdlib error %d: %s", e.Code, e.Message)
}

func (e *Error) TdErrorCode() int32 {
	return e.Code
}

func (e *Error) TdErrorMessage() string {
	return e.Message
}

func decodeError(raw json.RawMessage) error {
	var e Error
	if err := json.Unmarshal(raw, &e); err != nil {
		return errors.Wrap(err, "decoding error answer")
	}
	return &e
}
