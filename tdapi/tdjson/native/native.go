// Package native binds libtdjson through cgo. It is only functional when
// built with the "tdjson" tag and the library installed:
//
//	go build -tags tdjson ./...
package native

import (
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

// ErrUnavailable is returned by every constructor when the binary was built
// without libtdjson.
var ErrUnavailable = errors.New("native: built without the tdjson tag")

// LogHandler receives the engine's own log lines.
type LogHandler func(verbosity int, message string)

var _ tdjson.Executor = Executor{}

// Executor runs synchronous functions through td_execute.
type Executor struct{}

const receiveTimeout = 1.0 // seconds
