//go:build !tdjson

package native_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdkit/tdkit/tdapi/tdjson/native"
)

func Test_Unavailable(t *testing.T) {
	assert.False(t, native.Available)

	_, err := native.NewTransport()
	assert.ErrorIs(t, err, native.ErrUnavailable)

	_, err = native.Executor{}.Execute([]byte(`{"@type":"getTextEntities","text":"x"}`))
	assert.ErrorIs(t, err, native.ErrUnavailable)

	assert.ErrorIs(t, native.SetLogHandler(2, func(int, string) {}), native.ErrUnavailable)
}
