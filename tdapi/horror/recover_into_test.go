package horror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/itchio/headway/state"
	"github.com/stretchr/testify/assert"

	"github.com/tdkit/tdkit/tdapi/horror"
)

func ExampleRecoverInto() {
	f := func() (retErr error) {
		defer horror.RecoverInto(&retErr)
		panic("Oh no")
	}
	err := f()
	fmt.Printf("Returned from f: %v", err)
	// Output: Returned from f: panic: Oh no
}

func TestRecoverInto_String(t *testing.T) {
	f := func() (retErr error) {
		defer horror.RecoverInto(&retErr)
		panic("Oh no")
	}
	err := f()
	assert.EqualError(t, err, "panic: Oh no")
}

func TestRecoverInto_Error(t *testing.T) {
	sentinel := errors.New("sentinel")
	f := func() (retErr error) {
		defer horror.RecoverInto(&retErr)
		panic(sentinel)
	}
	err := f()
	assert.True(t, errors.Is(err, sentinel))
}

func TestRecoverInto_NoPanic(t *testing.T) {
	f := func() (retErr error) {
		defer horror.RecoverInto(&retErr)
		return nil
	}
	assert.NoError(t, f())
}

func TestRecoverAndLog(t *testing.T) {
	var messages []string
	consumer := &state.Consumer{
		OnMessage: func(lvl string, msg string) {
			messages = append(messages, lvl+": "+msg)
		},
	}

	func() {
		defer horror.RecoverAndLog(consumer, "handler")
		panic("kaboom")
	}()

	if assert.Len(t, messages, 1) {
		assert.Contains(t, messages[0], "error: Recovered panic in handler: panic: kaboom")
	}
}
