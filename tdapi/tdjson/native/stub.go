//go:build !tdjson

package native

import (
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

// Available is true when the engine is linked in.
const Available = false

func NewTransport() (tdjson.Transport, error) {
	return nil, ErrUnavailable
}

func (Executor) Execute(request []byte) ([]byte, error) {
	return nil, ErrUnavailable
}

func SetLogHandler(maxVerbosity int, h LogHandler) error {
	return ErrUnavailable
}
