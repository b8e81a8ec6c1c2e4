package tdapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdkit/tdkit/tdapi"
)

func Test_BuildersChain(t *testing.T) {
	df := tdapi.NewDownloadFile(7, 16).
		WithOffset(1024).
		WithLimit(4096).
		WithSynchronous(true)

	assert.Equal(t, &tdapi.DownloadFile{
		FileID:      7,
		Priority:    16,
		Offset:      1024,
		Limit:       4096,
		Synchronous: true,
	}, df)
	assert.NoError(t, df.Validate())

	ru := tdapi.NewRegisterUser("Ada").WithLastName("Lovelace")
	assert.Equal(t, "Ada", ru.FirstName)
	assert.Equal(t, "Lovelace", ru.LastName)
}

func Test_Validate(t *testing.T) {
	assert.NoError(t, (&tdapi.GetMe{}).Validate())

	assert.Error(t, (&tdapi.GetChat{}).Validate(), "chat_id is required")
	assert.NoError(t, tdapi.NewGetChat(1).Validate())

	assert.Error(t, tdapi.NewDownloadFile(1, 33).Validate(), "priority is at most 32")
	assert.Error(t, tdapi.NewDownloadFile(1, 0).Validate())

	assert.Error(t, tdapi.NewForwardMessages(1, 2, make([]int64, 101)).Validate())
	assert.NoError(t, tdapi.NewForwardMessages(1, 2, []int64{3}).Validate())

	assert.Error(t, tdapi.NewGetChatHistory(1, 101).Validate())

	assert.Error(t, tdapi.NewSendMessage(1, nil).Validate(), "content is required")
	assert.NoError(t, tdapi.NewSendMessage(1, &tdapi.InputMessageText{
		Text: &tdapi.FormattedText{Text: "hi"},
	}).Validate())

	contents := make([]tdapi.InputMessageContent, 11)
	for i := range contents {
		contents[i] = &tdapi.InputMessageText{Text: &tdapi.FormattedText{Text: "x"}}
	}
	assert.Error(t, tdapi.NewSendMessageAlbum(1, contents).Validate(), "albums have at most 10 items")
	assert.NoError(t, tdapi.NewSendMessageAlbum(1, contents[:2]).Validate())
}

func Test_ConstructorsOfEmptyFunctions(t *testing.T) {
	assert.Equal(t, &tdapi.GetMe{}, tdapi.NewGetMe())
	assert.Equal(t, &tdapi.Close{}, tdapi.NewClose())
}
