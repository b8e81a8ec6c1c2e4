package tdapi_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

func Test_AsTdError(t *testing.T) {
	_, ok := tdapi.AsTdError(nil)
	assert.False(t, ok)

	_, ok = tdapi.AsTdError(errors.New("plain"))
	assert.False(t, ok)

	wire := &tdjson.Error{Code: 404, Message: "Not Found"}
	e, ok := tdapi.AsTdError(errors.WithMessage(errors.WithStack(wire), "getChat"))
	assert.True(t, ok)
	assert.EqualValues(t, 404, e.Code)
	assert.Equal(t, "Not Found", e.Message)

	e, ok = tdapi.AsTdError(fmt.Errorf("wrapped: %w", &tdapi.Error{Code: 400, Message: "CHAT_ID_INVALID"}))
	assert.True(t, ok)
	assert.Equal(t, "CHAT_ID_INVALID", e.TdErrorMessage())
	assert.EqualValues(t, 400, e.TdErrorCode())
	assert.Equal(t, "tdlib error 400: CHAT_ID_INVALID", e.Error())

	e, ok = tdapi.AsTdError(tdapi.CodeForbidden)
	assert.True(t, ok)
	assert.EqualValues(t, 403, e.Code)
}

func Test_IsCode(t *testing.T) {
	err := errors.Wrap(&tdapi.Error{Code: 401, Message: "Unauthorized"}, "calling getMe")
	assert.True(t, tdapi.IsCode(err, tdapi.CodeUnauthorized))
	assert.False(t, tdapi.IsCode(err, tdapi.CodeBadRequest))
	assert.False(t, tdapi.IsCode(errors.New("nope"), tdapi.CodeBadRequest))
}

func Test_RetryAfter(t *testing.T) {
	d, ok := tdapi.RetryAfter(&tdapi.Error{Code: 420, Message: "FLOOD_WAIT_37"})
	assert.True(t, ok)
	assert.Equal(t, 37*time.Second, d)

	d, ok = tdapi.RetryAfter(errors.WithStack(&tdapi.Error{Code: 429, Message: "Too Many Requests: retry after 5"}))
	assert.True(t, ok)
	assert.Equal(t, 5*time.Second, d)

	_, ok = tdapi.RetryAfter(&tdapi.Error{Code: 400, Message: "FLOOD_WAIT_37"})
	assert.False(t, ok, "only flood-control codes carry a delay")

	_, ok = tdapi.RetryAfter(&tdapi.Error{Code: 420, Message: "FLOOD_PREMIUM_WAIT"})
	assert.False(t, ok)

	_, ok = tdapi.RetryAfter(nil)
	assert.False(t, ok)
}

func Test_Codes(t *testing.T) {
	assert.EqualValues(t, 420, tdapi.CodeFloodWait.TdErrorCode())
	assert.NotEmpty(t, tdapi.CodeNotFound.TdErrorMessage())
	assert.Equal(t, "tdlib error 999", tdapi.Code(999).TdErrorMessage())
	assert.Contains(t, tdapi.CodeInternal.String(), "Internal engine error")

	assert.True(t, tdapi.CodeNotAcceptable.Silent())
	assert.False(t, tdapi.CodeBadRequest.Silent())
}
