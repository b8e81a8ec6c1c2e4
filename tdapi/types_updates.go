package tdapi

//----------------------------------------------------------------------
// Updates
//----------------------------------------------------------------------

// Contains notifications about data changes
//
// @category Updates
type Update interface {
	Object
	isUpdate()
}

// The user authorization state has changed
//
// @class Update
// @category Updates
type UpdateAuthorizationState struct {
	// New authorization state
	AuthorizationState AuthorizationState `json:"authorization_state"`
}

// A new message was received; can also be an outgoing message
//
// @class Update
// @category Updates
type UpdateNewMessage struct {
	// The new message
	Message *Message `json:"message"`
}

// A message has been successfully sent
//
// @class Update
// @category Updates
type UpdateMessageSendSucceeded struct {
	// The sent message. Usually, only the message identifier, date, and content are changed, but almost all other fields can also change
	Message *Message `json:"message"`

	// The previous temporary message identifier
	OldMessageID int64 `json:"old_message_id"`
}

// A message failed to send. Be aware that some messages being sent can be irrecoverably
// deleted, in which case updateDeleteMessages will be received instead of this update
//
// @class Update
// @category Updates
type UpdateMessageSendFailed struct {
	// The failed to send message
	Message *Message `json:"message"`

	// The previous temporary message identifier
	OldMessageID int64 `json:"old_message_id"`

	// The cause of the message sending failure
	Error *Error `json:"error"`
}

// The message content has changed
//
// @class Update
// @category Updates
type UpdateMessageContent struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// Message identifier
	MessageID int64 `json:"message_id"`

	// New message content
	NewContent MessageContent `json:"new_content"`
}

// A message was edited. Changes in the message content will come in a separate
// updateMessageContent
//
// @class Update
// @category Updates
type UpdateMessageEdited struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// Message identifier
	MessageID int64 `json:"message_id"`

	// Point in time (Unix timestamp) when the message was edited
	EditDate int32 `json:"edit_date"`
}

// Some messages were deleted
//
// @class Update
// @category Updates
type UpdateDeleteMessages struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// Identifiers of the deleted messages
	MessageIDs []int64 `json:"message_ids"`

	// True, if the messages are permanently deleted by a user (as opposed to just becoming inaccessible)
	IsPermanent bool `json:"is_permanent"`

	// True, if the messages are deleted only from the cache and can possibly be retrieved again in the future
	FromCache bool `json:"from_cache"`
}

// A new chat has been loaded/created. This update is guaranteed to come before the chat
// identifier is returned to the application. The chat field changes will be reported
// through separate updates
//
// @class Update
// @category Updates
type UpdateNewChat struct {
	// The chat
	Chat *Chat `json:"chat"`
}

// The title of a chat was changed
//
// @class Update
// @category Updates
type UpdateChatTitle struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// The new chat title
	Title string `json:"title"`
}

// The last message of a chat was changed. If last_message is null, then the last message
// in the chat became unknown. Some new unknown messages might be added to the chat in this
// case
//
// @class Update
// @category Updates
type UpdateChatLastMessage struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// The new last message in the chat; may be null
	// @optional
	LastMessage *Message `json:"last_message,omitempty"`

	// The new chat positions in the chat lists
	Positions []*ChatPosition `json:"positions"`
}

// The position of a chat in a chat list has changed. An updateChatLastMessage or
// updateChatDraftMessage update might be sent instead of the update
//
// @class Update
// @category Updates
type UpdateChatPosition struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// New chat position. If new order is 0, then the chat needs to be removed from the list
	Position *ChatPosition `json:"position"`
}

// Incoming messages were read or the number of unread messages has been changed
//
// @class Update
// @category Updates
type UpdateChatReadInbox struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// Identifier of the last read incoming message
	LastReadInboxMessageID int64 `json:"last_read_inbox_message_id"`

	// The number of unread messages left in the chat
	UnreadCount int32 `json:"unread_count"`
}

// Outgoing messages were read
//
// @class Update
// @category Updates
type UpdateChatReadOutbox struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// Identifier of last read outgoing message
	LastReadOutboxMessageID int64 `json:"last_read_outbox_message_id"`
}

// A chat was marked as unread or was read
//
// @class Update
// @category Updates
type UpdateChatIsMarkedAsUnread struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// New value of is_marked_as_unread
	IsMarkedAsUnread bool `json:"is_marked_as_unread"`
}

// A message sender activity in the chat has changed
//
// @class Update
// @category Updates
type UpdateChatAction struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// If not 0, a message thread identifier in which the action was performed
	MessageThreadID int64 `json:"message_thread_id"`

	// Identifier of a message sender performing the action
	SenderID MessageSender `json:"sender_id"`

	// The action
	Action ChatAction `json:"action"`
}

// Some data of a user has changed. This update is guaranteed to come before the user
// identifier is returned to the application
//
// @class Update
// @category Updates
type UpdateUser struct {
	// New data about the user
	User *User `json:"user"`
}

// The user went online or offline
//
// @class Update
// @category Updates
type UpdateUserStatus struct {
	// User identifier
	UserID int64 `json:"user_id"`

	// New status of the user
	Status UserStatus `json:"status"`
}

// Some data in userFullInfo has been changed
//
// @class Update
// @category Updates
type UpdateUserFullInfo struct {
	// User identifier
	UserID int64 `json:"user_id"`

	// New full information about the user
	UserFullInfo *UserFullInfo `json:"user_full_info"`
}

// Information about a file was updated
//
// @class Update
// @category Updates
type UpdateFile struct {
	// New data about the file
	File *File `json:"file"`
}

// An option changed its value
//
// @class Update
// @category Updates
type UpdateOption struct {
	// The option name
	Name string `json:"name"`

	// The new option value
	Value OptionValue `json:"value"`
}

// The connection state has changed. This update must be used only to show a human-readable
// description of the connection state
//
// @class Update
// @category Updates
type UpdateConnectionState struct {
	// The new connection state
	State ConnectionState `json:"state"`
}

// Number of unread messages in a chat list has changed. This update is sent only if the
// message database is used
//
// @class Update
// @category Updates
type UpdateUnreadMessageCount struct {
	// The chat list with changed number of unread messages
	ChatList ChatList `json:"chat_list"`

	// Total number of unread messages
	UnreadCount int32 `json:"unread_count"`

	// Total number of unread messages in unmuted chats
	UnreadUnmutedCount int32 `json:"unread_unmuted_count"`
}

// Returns all updates needed to restore current TDLib state, i.e. all actual
// updateAuthorizationState/updateUser/updateNewChat and others. This is especially useful
// if TDLib is run in a separate process. Can be called before initialization
//
// @category Updates
// @returns Updates
type GetCurrentState struct{}

func (p GetCurrentState) Validate() error {
	return nil
}

// Contains a list of updates
//
// @category Updates
type Updates struct {
	// List of updates
	Updates []Update `json:"updates"`
}
