package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Messages
//----------------------------------------------------------------------

// Contains information about the sender of a message
//
// @category Messages
type MessageSender interface {
	Object
	isMessageSender()
}

// The message was sent by a known user
//
// @class MessageSender
// @category Messages
type MessageSenderUser struct {
	// Identifier of the user that sent the message
	UserID int64 `json:"user_id"`
}

// The message was sent on behalf of a chat
//
// @class MessageSender
// @category Messages
type MessageSenderChat struct {
	// Identifier of the chat that sent the message
	ChatID int64 `json:"chat_id"`
}

// Contains information about the sending state of the message
//
// @category Messages
type MessageSendingState interface {
	Object
	isMessageSendingState()
}

// The message is being sent now, but has not yet been delivered to the server
//
// @class MessageSendingState
// @category Messages
type MessageSendingStatePending struct {
	// Non-persistent message sending identifier, specified by the application
	SendingID int32 `json:"sending_id"`
}

// The message failed to be sent
//
// @class MessageSendingState
// @category Messages
type MessageSendingStateFailed struct {
	// The cause of the message sending failure
	Error *Error `json:"error"`

	// True, if the message can be re-sent
	CanRetry bool `json:"can_retry"`

	// True, if the message can be re-sent only on behalf of a different sender
	NeedAnotherSender bool `json:"need_another_sender"`

	// Time left before the message can be re-sent, in seconds. No update is sent when this field changes
	RetryAfter float64 `json:"retry_after"`
}

// Describes a location on planet Earth
//
// @category Messages
type Location struct {
	// Latitude of the location in degrees; as defined by the sender
	Latitude float64 `json:"latitude"`

	// Longitude of the location, in degrees; as defined by the sender
	Longitude float64 `json:"longitude"`

	// The estimated horizontal accuracy of the location, in meters; as defined by the sender. 0 if unknown
	HorizontalAccuracy float64 `json:"horizontal_accuracy"`
}

// Describes a user contact
//
// @category Messages
type Contact struct {
	// Phone number of the user
	PhoneNumber string `json:"phone_number"`

	// First name of the user; 1-255 characters in length
	FirstName string `json:"first_name"`

	// Last name of the user
	LastName string `json:"last_name"`

	// Additional data about the user in a form of vCard; 0-2048 bytes in length
	Vcard string `json:"vcard"`

	// Identifier of the user, if known; 0 otherwise
	UserID int64 `json:"user_id"`
}

// Contains the content of a message
//
// @category Messages
type MessageContent interface {
	Object
	isMessageContent()
}

// A text message
//
// @class MessageContent
// @category Messages
type MessageText struct {
	// Text of the message
	Text *FormattedText `json:"text"`
}

// A photo message
//
// @class MessageContent
// @category Messages
type MessagePhoto struct {
	// The photo
	Photo *Photo `json:"photo"`

	// Photo caption
	Caption *FormattedText `json:"caption"`

	// True, if the photo preview must be covered by a spoiler animation
	HasSpoiler bool `json:"has_spoiler"`

	// True, if the photo must be blurred and must be shown only while tapped
	IsSecret bool `json:"is_secret"`
}

// A document message (general file)
//
// @class MessageContent
// @category Messages
type MessageDocument struct {
	// The document description
	Document *Document `json:"document"`

	// Document caption
	Caption *FormattedText `json:"caption"`
}

// A message with a location
//
// @class MessageContent
// @category Messages
type MessageLocation struct {
	// The location description
	Location *Location `json:"location"`

	// Time relative to the message send date, for which the location can be updated, in seconds
	LivePeriod int32 `json:"live_period"`

	// Left time for which the location can be updated, in seconds. updateMessageContent is not sent when this field changes
	ExpiresIn int32 `json:"expires_in"`
}

// A message with a user contact
//
// @class MessageContent
// @category Messages
type MessageContact struct {
	// The contact description
	Contact *Contact `json:"contact"`
}

// A newly created basic group
//
// @class MessageContent
// @category Messages
type MessageBasicGroupChatCreate struct {
	// Title of the basic group
	Title string `json:"title"`

	// User identifiers of members in the basic group
	MemberUserIDs []int64 `json:"member_user_ids"`
}

// An updated chat title
//
// @class MessageContent
// @category Messages
type MessageChatChangeTitle struct {
	// New chat title
	Title string `json:"title"`
}

// New chat members were added
//
// @class MessageContent
// @category Messages
type MessageChatAddMembers struct {
	// User identifiers of the new members
	MemberUserIDs []int64 `json:"member_user_ids"`
}

// A new member joined the chat via an invite link
//
// @class MessageContent
// @category Messages
type MessageChatJoinByLink struct{}

// A chat member was deleted
//
// @class MessageContent
// @category Messages
type MessageChatDeleteMember struct {
	// User identifier of the deleted chat member
	UserID int64 `json:"user_id"`
}

// A message has been pinned
//
// @class MessageContent
// @category Messages
type MessagePinMessage struct {
	// Identifier of the pinned message, can be an identifier of a deleted message or 0
	MessageID int64 `json:"message_id"`
}

// Message content that is not supported in the current TDLib version
//
// @class MessageContent
// @category Messages
type MessageUnsupported struct{}

// Describes a message
//
// @category Messages
type Message struct {
	// Message identifier; unique for the chat to which the message belongs
	ID int64 `json:"id"`

	// Identifier of the sender of the message
	SenderID MessageSender `json:"sender_id"`

	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// The sending state of the message; may be null
	// @optional
	SendingState MessageSendingState `json:"sending_state,omitempty"`

	// True, if the message is outgoing
	IsOutgoing bool `json:"is_outgoing"`

	// True, if the message is pinned
	IsPinned bool `json:"is_pinned"`

	// True, if the message can be edited
	CanBeEdited bool `json:"can_be_edited"`

	// True, if the message can be forwarded
	CanBeForwarded bool `json:"can_be_forwarded"`

	// True, if content of the message can be saved locally or copied
	CanBeSaved bool `json:"can_be_saved"`

	// True, if the message can be deleted only for the current user while other users will continue to see it
	CanBeDeletedOnlyForSelf bool `json:"can_be_deleted_only_for_self"`

	// True, if the message can be deleted for all users
	CanBeDeletedForAllUsers bool `json:"can_be_deleted_for_all_users"`

	// True, if the message is a channel post
	IsChannelPost bool `json:"is_channel_post"`

	// True, if the message contains an unread mention for the current user
	ContainsUnreadMention bool `json:"contains_unread_mention"`

	// Point in time (Unix timestamp) when the message was sent
	Date int32 `json:"date"`

	// Point in time (Unix timestamp) when the message was last edited
	EditDate int32 `json:"edit_date"`

	// If non-zero, the identifier of the chat to which the replied message belongs
	ReplyInChatID int64 `json:"reply_in_chat_id"`

	// If non-zero, the identifier of the message this message is replying to; can be the identifier of a deleted message
	ReplyToMessageID int64 `json:"reply_to_message_id"`

	// If non-zero, the identifier of the message thread the message belongs to
	MessageThreadID int64 `json:"message_thread_id"`

	// The message's self-destruct time, in seconds; 0 if none
	SelfDestructTime int32 `json:"self_destruct_time"`

	// If non-zero, the user identifier of the bot through which this message was sent
	ViaBotUserID int64 `json:"via_bot_user_id"`

	// For channel posts and anonymous group messages, optional author signature
	AuthorSignature string `json:"author_signature"`

	// Unique identifier of an album this message belongs to. Only audios, documents, photos and videos can be grouped together in albums
	MediaAlbumID int64 `json:"media_album_id,string"`

	// If non-empty, contains a human-readable description of the reason why access to this message must be restricted
	RestrictionReason string `json:"restriction_reason"`

	// Content of the message
	Content MessageContent `json:"content"`
}

// Contains a list of messages
//
// @category Messages
type Messages struct {
	// Approximate total number of messages found
	TotalCount int32 `json:"total_count"`

	// List of messages; messages may be null
	Messages []*Message `json:"messages"`
}

// Contains a list of messages found by a search
//
// @category Messages
type FoundMessages struct {
	// Approximate total number of messages found; -1 if unknown
	TotalCount int32 `json:"total_count"`

	// List of messages
	Messages []*Message `json:"messages"`

	// The offset for the next request. If empty, there are no more results
	NextOffset string `json:"next_offset"`
}

// Contains an HTTPS link to a message in a supergroup or channel, or a forum topic
//
// @category Messages
type MessageLink struct {
	// The link
	Link string `json:"link"`

	// True, if the link will work for non-members of the chat
	IsPublic bool `json:"is_public"`
}

// Options to be used when a message is sent
//
// @category Messages
type MessageSendOptions struct {
	// Pass true to disable notification for the message
	DisableNotification bool `json:"disable_notification"`

	// Pass true if the message is sent from the background
	FromBackground bool `json:"from_background"`

	// Pass true if the content of the message must be protected from forwarding and saving; for bots only
	ProtectContent bool `json:"protect_content"`

	// Pass true if the user explicitly chosen a sticker or a custom emoji from an installed sticker set; applicable only to sendMessage and sendMessageAlbum
	UpdateOrderOfInstalledStickerSets bool `json:"update_order_of_installed_sticker_sets"`
}

// The content of a message to send
//
// @category Messages
type InputMessageContent interface {
	Object
	isInputMessageContent()
}

// A text message
//
// @class InputMessageContent
// @category Messages
type InputMessageText struct {
	// Formatted text to be sent; 1-getOption("message_text_length_max") characters. Only Bold, Italic, Underline, Strikethrough, Spoiler, CustomEmoji, Code, Pre, PreCode, TextUrl and MentionName entities are allowed to be specified manually
	Text *FormattedText `json:"text"`

	// True, if rich web page previews for URLs in the message text must be disabled
	DisableWebPagePreview bool `json:"disable_web_page_preview"`

	// True, if a chat message draft must be deleted
	ClearDraft bool `json:"clear_draft"`
}

// A photo message
//
// @class InputMessageContent
// @category Messages
type InputMessagePhoto struct {
	// Photo to send. The photo must be at most 10 MB in size. The photo's width and height must not exceed 10000 in total. Width and height ratio must be at most 20
	Photo InputFile `json:"photo"`

	// File identifiers of the stickers added to the photo, if applicable
	AddedStickerFileIDs []int32 `json:"added_sticker_file_ids"`

	// Photo width
	Width int32 `json:"width"`

	// Photo height
	Height int32 `json:"height"`

	// Photo caption; pass null to use an empty caption; 0-getOption("message_caption_length_max") characters
	// @optional
	Caption *FormattedText `json:"caption,omitempty"`

	// Photo self-destruct time, in seconds (0-60). A non-zero self-destruct time can be specified only in private chats
	SelfDestructTime int32 `json:"self_destruct_time"`

	// True, if the photo preview must be covered by a spoiler animation; not supported in secret chats
	HasSpoiler bool `json:"has_spoiler"`
}

// A document message (general file)
//
// @class InputMessageContent
// @category Messages
type InputMessageDocument struct {
	// Document to be sent
	Document InputFile `json:"document"`

	// If true, automatic file type detection will be disabled and the document will always be sent as file. Always true for files sent to secret chats
	DisableContentTypeDetection bool `json:"disable_content_type_detection"`

	// Document caption; pass null to use an empty caption; 0-getOption("message_caption_length_max") characters
	// @optional
	Caption *FormattedText `json:"caption,omitempty"`
}

// A message with a location
//
// @class InputMessageContent
// @category Messages
type InputMessageLocation struct {
	// Location to be sent
	Location *Location `json:"location"`

	// Period for which the location can be updated, in seconds; must be between 60 and 86400 for a live location and 0 otherwise
	LivePeriod int32 `json:"live_period"`

	// For live locations, a direction in which the location moves, in degrees; 1-360. Pass 0 if unknown
	Heading int32 `json:"heading"`

	// For live locations, a maximum distance to another chat member for proximity alerts, in meters (0-100000). Pass 0 if the notification is disabled. Can't be enabled in channels and Saved Messages
	ProximityAlertRadius int32 `json:"proximity_alert_radius"`
}

// A message containing a user contact
//
// @class InputMessageContent
// @category Messages
type InputMessageContact struct {
	// Contact to send
	Contact *Contact `json:"contact"`
}

// A forwarded message
//
// @class InputMessageContent
// @category Messages
type InputMessageForwarded struct {
	// Identifier for the chat this forwarded message came from
	FromChatID int64 `json:"from_chat_id"`

	// Identifier of the message to forward
	MessageID int64 `json:"message_id"`

	// True, if a game message is being shared from a launched game; applies only to game messages
	InGameShare bool `json:"in_game_share"`
}

// Returns information about a message
//
// @category Messages
// @returns Message
type GetMessage struct {
	// Identifier of the chat the message belongs to
	ChatID int64 `json:"chat_id"`

	// Identifier of the message to get
	MessageID int64 `json:"message_id"`
}

func (p GetMessage) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.MessageID, validation.Required),
	)
}

// Returns information about messages. If a message is not found, returns null on the
// corresponding position of the result
//
// @category Messages
// @returns Messages
type GetMessages struct {
	// Identifier of the chat the messages belong to
	ChatID int64 `json:"chat_id"`

	// Identifiers of the messages to get
	MessageIDs []int64 `json:"message_ids"`
}

func (p GetMessages) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Returns messages in a chat. The messages are returned in a reverse chronological order
// (i.e., in order of decreasing message_id). For optimal performance, the number of
// returned messages is chosen by TDLib. This is an offline request if only_local is true
//
// @category Messages
// @returns Messages
type GetChatHistory struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// Identifier of the message starting from which history must be fetched; use 0 to get results from the last message
	FromMessageID int64 `json:"from_message_id"`

	// Specify 0 to get results from exactly the from_message_id or a negative offset up to 99 to get additionally some newer messages
	Offset int32 `json:"offset"`

	// The maximum number of messages to be returned; must be positive and can't be greater than 100. If the offset is negative, the limit must be greater than or equal to -offset
	Limit int32 `json:"limit"`

	// Pass true to get only messages that are available without sending network requests
	OnlyLocal bool `json:"only_local"`
}

func (p GetChatHistory) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.Limit, validation.Required, validation.Max(100)),
	)
}

// Searches for messages with given words in the chat. Returns the results in reverse
// chronological order, i.e. in order of decreasing message_id. Cannot be used in secret
// chats with a non-empty query
//
// @category Messages
// @returns FoundMessages
type SearchChatMessages struct {
	// Identifier of the chat in which to search messages
	ChatID int64 `json:"chat_id"`

	// Query to search for
	Query string `json:"query"`

	// Identifier of the sender of messages to search for; pass null to search for messages from any sender
	// @optional
	SenderID MessageSender `json:"sender_id,omitempty"`

	// Identifier of the message starting from which history must be fetched; use 0 to get results from the last message
	FromMessageID int64 `json:"from_message_id"`

	// Specify 0 to get results from exactly the from_message_id or a negative offset to get the specified message and some newer messages
	Offset int32 `json:"offset"`

	// The maximum number of messages to be returned; must be positive and can't be greater than 100
	Limit int32 `json:"limit"`

	// If not 0, only messages in the specified thread will be returned; supergroups only
	MessageThreadID int64 `json:"message_thread_id"`
}

func (p SearchChatMessages) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.Limit, validation.Required),
	)
}

// Searches for messages in all chats except secret chats. Returns the results in reverse
// chronological order (i.e., in order of decreasing (date, chat_id, message_id))
//
// @category Messages
// @returns FoundMessages
type SearchMessages struct {
	// Chat list in which to search messages; pass null to search in all chats regardless of their chat list
	// @optional
	ChatList ChatList `json:"chat_list,omitempty"`

	// Query to search for
	Query string `json:"query"`

	// Offset of the first entry to return as received from the previous request; use empty string to get the first chunk of results
	Offset string `json:"offset"`

	// The maximum number of messages to be returned; up to 100
	Limit int32 `json:"limit"`

	// If not 0, the minimum date of the messages to return
	MinDate int32 `json:"min_date"`

	// If not 0, the maximum date of the messages to return
	MaxDate int32 `json:"max_date"`
}

func (p SearchMessages) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Required),
	)
}

// Returns an HTTPS link to a message in a chat. Available only for already sent messages
// in supergroups and channels, or if message.can_get_media_timestamp_links and a media
// timestamp link is generated
//
// @category Messages
// @returns MessageLink
type GetMessageLink struct {
	// Identifier of the chat to which the message belongs
	ChatID int64 `json:"chat_id"`

	// Identifier of the message
	MessageID int64 `json:"message_id"`

	// If not 0, timestamp from which the video/audio/video note/voice note playing must start, in seconds
	MediaTimestamp int32 `json:"media_timestamp"`

	// Pass true to create a link for the whole media album
	ForAlbum bool `json:"for_album"`

	// Pass true to create a link to the message as a channel post comment, in a message thread, or a forum topic
	InMessageThread bool `json:"in_message_thread"`
}

func (p GetMessageLink) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.MessageID, validation.Required),
	)
}

// Sends a message. Returns the sent message
//
// @category Messages
// @returns Message
type SendMessage struct {
	// Target chat
	ChatID int64 `json:"chat_id"`

	// If not 0, a message thread identifier in which the message will be sent
	MessageThreadID int64 `json:"message_thread_id"`

	// Identifier of the replied message; 0 if none
	ReplyToMessageID int64 `json:"reply_to_message_id"`

	// Options to be used to send the message; pass null to use default options
	// @optional
	Options *MessageSendOptions `json:"options,omitempty"`

	// The content of the message to be sent
	InputMessageContent InputMessageContent `json:"input_message_content"`
}

func (p SendMessage) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.InputMessageContent, validation.Required),
	)
}

// Sends 2-10 messages grouped together into an album. Currently, only audio, document,
// photo and video messages can be grouped into an album. Documents and audio files can be
// only grouped in an album with messages of the same type. Returns sent messages
//
// @category Messages
// @returns Messages
type SendMessageAlbum struct {
	// Target chat
	ChatID int64 `json:"chat_id"`

	// If not 0, a message thread identifier in which the messages will be sent
	MessageThreadID int64 `json:"message_thread_id"`

	// Identifier of a replied message; 0 if none
	ReplyToMessageID int64 `json:"reply_to_message_id"`

	// Options to be used to send the messages; pass null to use default options
	// @optional
	Options *MessageSendOptions `json:"options,omitempty"`

	// Contents of messages to be sent. At most 10 messages can be added to an album
	InputMessageContents []InputMessageContent `json:"input_message_contents"`

	// Pass true to get fake messages instead of actually sending them
	OnlyPreview bool `json:"only_preview"`
}

func (p SendMessageAlbum) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.InputMessageContents, validation.Required, validation.Length(1, 10)),
	)
}

// Forwards previously sent messages. Returns the forwarded messages in the same order as
// the message identifiers passed in message_ids. If a message can't be forwarded, null
// will be returned instead of the message
//
// @category Messages
// @returns Messages
type ForwardMessages struct {
	// Identifier of the chat to which to forward messages
	ChatID int64 `json:"chat_id"`

	// If not 0, a message thread identifier in which the message will be sent; for forum threads only
	MessageThreadID int64 `json:"message_thread_id"`

	// Identifier of the chat from which to forward messages
	FromChatID int64 `json:"from_chat_id"`

	// Identifiers of the messages to forward. Message identifiers must be in a strictly increasing order
	MessageIDs []int64 `json:"message_ids"`

	// Options to be used to send the messages; pass null to use default options
	// @optional
	Options *MessageSendOptions `json:"options,omitempty"`

	// Pass true to copy content of the messages without reference to the original sender
	SendCopy bool `json:"send_copy"`

	// Pass true to remove media captions of message copies. Ignored if send_copy is false
	RemoveCaption bool `json:"remove_caption"`

	// Pass true to get fake messages instead of actually forwarding them
	OnlyPreview bool `json:"only_preview"`
}

func (p ForwardMessages) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.FromChatID, validation.Required),
		validation.Field(&p.MessageIDs, validation.Required, validation.Length(1, 100)),
	)
}

// Edits the text of a message (or a text of a game message). Returns the edited message
// after the edit is completed on the server side
//
// @category Messages
// @returns Message
type EditMessageText struct {
	// The chat the message belongs to
	ChatID int64 `json:"chat_id"`

	// Identifier of the message
	MessageID int64 `json:"message_id"`

	// New text content of the message. Must be of type inputMessageText
	InputMessageContent InputMessageContent `json:"input_message_content"`
}

func (p EditMessageText) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.MessageID, validation.Required),
		validation.Field(&p.InputMessageContent, validation.Required),
	)
}

// Deletes messages
//
// @category Messages
// @returns Ok
type DeleteMessages struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// Identifiers of the messages to be deleted
	MessageIDs []int64 `json:"message_ids"`

	// Pass true to delete messages for all chat members. Always true for supergroups, channels and secret chats
	Revoke bool `json:"revoke"`
}

func (p DeleteMessages) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.MessageIDs, validation.Required),
	)
}

// Informs TDLib that messages are being viewed by the user. Sponsored messages must be
// marked as viewed only when the entire text of the message is shown on the screen
// (excluding the button). Many useful activities depend on whether the messages are
// currently being viewed or not (e.g., marking messages as read, incrementing a view
// counter, updating a view counter, removing deleted messages in supergroups and channels)
//
// @category Messages
// @returns Ok
type ViewMessages struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// The identifiers of the messages being viewed
	MessageIDs []int64 `json:"message_ids"`

	// Pass true to mark as read the specified messages even the chat is closed
	ForceRead bool `json:"force_read"`
}

func (p ViewMessages) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.MessageIDs, validation.Required),
	)
}

// Pins a message in a chat; requires can_pin_messages rights or can_edit_messages rights
// in the channel
//
// @category Messages
// @returns Ok
type PinChatMessage struct {
	// Identifier of the chat
	ChatID int64 `json:"chat_id"`

	// Identifier of the new pinned message
	MessageID int64 `json:"message_id"`

	// Pass true to disable notification about the pinned message. Notifications are always disabled in channels and private chats
	DisableNotification bool `json:"disable_notification"`

	// Pass true to pin the message only for self; private chats only
	OnlyForSelf bool `json:"only_for_self"`
}

func (p PinChatMessage) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.MessageID, validation.Required),
	)
}

// Removes a pinned message from a chat; requires can_pin_messages rights in the group or
// can_edit_messages rights in the channel
//
// @category Messages
// @returns Ok
type UnpinChatMessage struct {
	// Identifier of the chat
	ChatID int64 `json:"chat_id"`

	// Identifier of the removed pinned message
	MessageID int64 `json:"message_id"`
}

func (p UnpinChatMessage) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.MessageID, validation.Required),
	)
}
