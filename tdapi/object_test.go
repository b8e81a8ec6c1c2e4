package tdapi_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdgen/spec"
	"github.com/tidwall/gjson"
)

func roundTrip(t *testing.T, in tdapi.Object) {
	t.Helper()

	bs, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, in.ObjectType(), gjson.GetBytes(bs, `\@type`).String())

	out, err := tdapi.UnmarshalObject(bs)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("%s did not survive a round trip (-want +got):\n%s", in.ObjectType(), diff)
	}
}

func Test_RoundTrips(t *testing.T) {
	roundTrip(t, &tdapi.Ok{})
	roundTrip(t, &tdapi.Error{Code: 400, Message: "CHAT_NOT_FOUND"})

	roundTrip(t, &tdapi.Message{
		ID:           1 << 20,
		SenderID:     &tdapi.MessageSenderUser{UserID: 42},
		ChatID:       -1001234567890,
		SendingState: &tdapi.MessageSendingStatePending{},
		IsOutgoing:   true,
		Date:         1700000000,
		MediaAlbumID: 9007199254740993,
		Content: &tdapi.MessageText{
			Text: &tdapi.FormattedText{
				Text: "hello @world",
				Entities: []*tdapi.TextEntity{
					{Offset: 6, Length: 6, Type: &tdapi.TextEntityTypeMention{}},
					{Offset: 0, Length: 5, Type: &tdapi.TextEntityTypeTextUrl{URL: "https://example.org"}},
				},
			},
		},
	})

	roundTrip(t, tdapi.NewSendMessage(5, &tdapi.InputMessageText{
		Text: &tdapi.FormattedText{Text: "hi"},
	}).WithReplyToMessageID(3))

	roundTrip(t, &tdapi.SendMessageAlbum{
		ChatID: 5,
		InputMessageContents: []tdapi.InputMessageContent{
			&tdapi.InputMessageText{Text: &tdapi.FormattedText{Text: "a"}},
			&tdapi.InputMessageLocation{Location: &tdapi.Location{Latitude: 48.85, Longitude: 2.35}},
		},
	})

	roundTrip(t, &tdapi.UpdateAuthorizationState{
		AuthorizationState: &tdapi.AuthorizationStateWaitCode{
			CodeInfo: &tdapi.AuthenticationCodeInfo{
				PhoneNumber: "+15550100",
				Type:        &tdapi.AuthenticationCodeTypeSms{Length: 5},
				NextType:    &tdapi.AuthenticationCodeTypeCall{Length: 5},
				Timeout:     60,
			},
		},
	})

	roundTrip(t, &tdapi.TestBytes{Value: []byte{0, 1, 2, 0xff}})
	roundTrip(t, &tdapi.TestVectorInt{Value: []int32{1, 2, 3}})
}

// filler sets every field it can reach to a non-zero value, picking the
// first member for class-typed fields.
type filler struct {
	members map[string]string
}

const fillDepth = 4

func (f *filler) fill(v reflect.Value, depth int) {
	switch v.Kind() {
	case reflect.Ptr:
		if v.Type().Elem().Kind() != reflect.Struct || depth >= fillDepth {
			return
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		f.fill(v.Elem(), depth+1)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			f.fill(v.Field(i), depth)
		}
	case reflect.Interface:
		member, ok := f.members[v.Type().Name()]
		if !ok || depth >= fillDepth {
			return
		}
		o := tdapi.New(member)
		f.fill(reflect.ValueOf(o), depth)
		v.Set(reflect.ValueOf(o))
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			v.SetBytes([]byte{0, 7, 0xff})
			return
		}
		s := reflect.MakeSlice(v.Type(), 1, 1)
		f.fill(s.Index(0), depth)
		if k := s.Index(0).Kind(); (k == reflect.Ptr || k == reflect.Interface) && s.Index(0).IsNil() {
			return
		}
		v.Set(s)
	case reflect.String:
		v.SetString("héllo")
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int32:
		v.SetInt(-1 << 30)
	case reflect.Int64:
		v.SetInt(1<<62 + 1)
	case reflect.Float64:
		v.SetFloat(48.8566)
	}
}

func Test_RoundTripsEveryType(t *testing.T) {
	sp, err := spec.Load()
	require.NoError(t, err)

	f := &filler{members: make(map[string]string)}
	for _, class := range sp.Classes {
		require.NotEmpty(t, class.Members, class.Name)
		f.members[class.GoName] = class.Members[0]
	}

	var all []*spec.StructSpec
	all = append(all, sp.Objects...)
	all = append(all, sp.Functions...)
	all = append(all, sp.Updates...)
	require.NotEmpty(t, all)

	for _, entry := range all {
		zero := tdapi.New(entry.Name)
		require.NotNil(t, zero, entry.Name)
		roundTrip(t, zero)

		full := tdapi.New(entry.Name)
		f.fill(reflect.ValueOf(full), 0)
		roundTrip(t, full)

		bs, err := json.Marshal(full)
		require.NoError(t, err)
		assert.Equal(t, entry.Name, gjson.GetBytes(bs, `\@type`).String())
	}
}

func Test_DiscriminantMatchesName(t *testing.T) {
	for tag, want := range map[string]tdapi.Object{
		"getMe":                   &tdapi.GetMe{},
		"user":                    &tdapi.User{},
		"updateNewMessage":        &tdapi.UpdateNewMessage{},
		"authorizationStateReady": &tdapi.AuthorizationStateReady{},
		"textEntityTypeTextUrl":   &tdapi.TextEntityTypeTextUrl{},
		"setTdlibParameters":      &tdapi.SetTdlibParameters{},
		"inputFileId":             &tdapi.InputFileId{},
		"error":                   &tdapi.Error{},
	} {
		assert.Equal(t, tag, want.ObjectType())
		assert.True(t, tdapi.IsKnownType(tag))

		o := tdapi.New(tag)
		require.NotNil(t, o, tag)
		assert.IsType(t, want, o)
	}

	assert.False(t, tdapi.IsKnownType("notAThing"))
	assert.Nil(t, tdapi.New("notAThing"))
}

func Test_TypeIsEmittedFirst(t *testing.T) {
	bs, err := json.Marshal(tdapi.NewGetChat(12))
	require.NoError(t, err)
	assert.Equal(t, `{"@type":"getChat","chat_id":12}`, string(bs))

	bs, err = json.Marshal(&tdapi.GetMe{})
	require.NoError(t, err)
	assert.Equal(t, `{"@type":"getMe"}`, string(bs))
}

func Test_Int64AsString(t *testing.T) {
	bs, err := json.Marshal(&tdapi.ChatPosition{List: &tdapi.ChatListMain{}, Order: 9223372036854775807})
	require.NoError(t, err)
	assert.Equal(t, "9223372036854775807", gjson.GetBytes(bs, "order").Str)

	var pos tdapi.ChatPosition
	require.NoError(t, json.Unmarshal([]byte(`{"@type":"chatPosition","list":{"@type":"chatListArchive"},"order":"42","is_pinned":true}`), &pos))
	assert.EqualValues(t, 42, pos.Order)
	assert.IsType(t, &tdapi.ChatListArchive{}, pos.List)
	assert.True(t, pos.IsPinned)

	err = json.Unmarshal([]byte(`{"@type":"chatPosition","order":42}`), &pos)
	assert.Error(t, err, "int64 fields only accept strings")
}

func Test_UnmarshalObjectErrors(t *testing.T) {
	_, err := tdapi.UnmarshalObject([]byte(`{"@type":"somethingNew","x":1}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tdapi.ErrUnknownType))
	assert.Contains(t, err.Error(), "somethingNew")

	_, err = tdapi.UnmarshalObject([]byte(`{"x":1}`))
	assert.True(t, errors.Is(err, tdapi.ErrMissingType))

	_, err = tdapi.UnmarshalObject([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = tdapi.UnmarshalObject([]byte(`{"@type":"user","id":"not a number"}`))
	assert.Error(t, err)

	o, err := tdapi.UnmarshalObject([]byte(`null`))
	assert.NoError(t, err)
	assert.Nil(t, o)
}

func Test_UnmarshalClass(t *testing.T) {
	s, err := tdapi.UnmarshalAuthorizationState([]byte(`{"@type":"authorizationStateWaitPassword","password_hint":"cat"}`))
	require.NoError(t, err)
	require.IsType(t, &tdapi.AuthorizationStateWaitPassword{}, s)
	assert.Equal(t, "cat", s.(*tdapi.AuthorizationStateWaitPassword).PasswordHint)

	_, err = tdapi.UnmarshalAuthorizationState([]byte(`{"@type":"chatTypePrivate","user_id":1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a AuthorizationState")

	s, err = tdapi.UnmarshalAuthorizationState([]byte(`null`))
	assert.NoError(t, err)
	assert.Nil(t, s)

	// nested class mismatch is reported with the field path
	err = json.Unmarshal([]byte(`{"@type":"updateAuthorizationState","authorization_state":{"@type":"ok"}}`), &tdapi.UpdateAuthorizationState{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authorization_state")
}

func Test_AbsentAbstractFieldIsNil(t *testing.T) {
	var m tdapi.Message
	require.NoError(t, json.Unmarshal([]byte(`{"@type":"message","id":1,"chat_id":2}`), &m))
	assert.Nil(t, m.SenderID)
	assert.Nil(t, m.SendingState)
	assert.Nil(t, m.Content)

	var u tdapi.User
	require.NoError(t, json.Unmarshal([]byte(`{"@type":"user","id":3,"status":null}`), &u))
	assert.Nil(t, u.Status)
}

func Test_OptionalFieldsAreOmitted(t *testing.T) {
	bs, err := json.Marshal(tdapi.NewSetAuthenticationPhoneNumber("+15550100"))
	require.NoError(t, err)
	assert.False(t, gjson.GetBytes(bs, "settings").Exists())

	bs, err = json.Marshal(&tdapi.Message{ID: 1})
	require.NoError(t, err)
	assert.False(t, gjson.GetBytes(bs, "sending_state").Exists())
	assert.True(t, gjson.GetBytes(bs, "content").Exists())
}

func Test_ResultType(t *testing.T) {
	res, ok := tdapi.ResultType(tdapi.TypeGetMe)
	assert.True(t, ok)
	assert.Equal(t, "User", res)

	res, ok = tdapi.ResultType(tdapi.TypeGetAuthorizationState)
	assert.True(t, ok)
	assert.Equal(t, tdapi.ClassAuthorizationState, res)

	_, ok = tdapi.ResultType(tdapi.TypeUser)
	assert.False(t, ok)
}

func Test_MarshalObject(t *testing.T) {
	bs, err := tdapi.MarshalObject(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(bs))

	bs, err = tdapi.MarshalObject(&tdapi.Ok{})
	require.NoError(t, err)
	assert.Equal(t, `{"@type":"ok"}`, string(bs))
}
