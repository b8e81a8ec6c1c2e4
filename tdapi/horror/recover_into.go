// Package horror turns panics in update handlers and background tasks into
// errors, so one bad handler cannot take the whole client down.
package horror

import (
	"fmt"

	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
)

// RecoverInto is a function you can defer-call at
// the start of a function that you know has a risk of
// panicking.
func RecoverInto(errp *error) {
	if r := recover(); r != nil {
		*errp = asError(r)
	}
}

// RecoverAndLog recovers a panic and reports it on consumer.
func RecoverAndLog(consumer *state.Consumer, what string) {
	if r := recover(); r != nil {
		consumer.Errorf("Recovered panic in %s: %+v", what, asError(r))
	}
}

func asError(r interface{}) error {
	if rErr, ok := r.(error); ok {
		return errors.WithStack(rErr)
	}
	return errors.New(fmt.Sprintf("panic: %+v", r))
}
