package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Chats
//----------------------------------------------------------------------

// Describes the type of a chat
//
// @category Chats
type ChatType interface {
	Object
	isChatType()
}

// An ordinary chat with a user
//
// @class ChatType
// @category Chats
type ChatTypePrivate struct {
	// User identifier
	UserID int64 `json:"user_id"`
}

// A basic group (a chat with 0-200 other users)
//
// @class ChatType
// @category Chats
type ChatTypeBasicGroup struct {
	// Basic group identifier
	BasicGroupID int64 `json:"basic_group_id"`
}

// A supergroup or channel (with unlimited members)
//
// @class ChatType
// @category Chats
type ChatTypeSupergroup struct {
	// Supergroup or channel identifier
	SupergroupID int64 `json:"supergroup_id"`

	// True, if the supergroup is a channel
	IsChannel bool `json:"is_channel"`
}

// A secret chat with a user
//
// @class ChatType
// @category Chats
type ChatTypeSecret struct {
	// Secret chat identifier
	SecretChatID int32 `json:"secret_chat_id"`

	// User identifier of the secret chat peer
	UserID int64 `json:"user_id"`
}

// Describes a list of chats
//
// @category Chats
type ChatList interface {
	Object
	isChatList()
}

// A main list of chats
//
// @class ChatList
// @category Chats
type ChatListMain struct{}

// A list of chats usually located at the top of the main chat list. Unmuted chats are
// automatically moved from the Archive to the Main chat list when a new message arrives
//
// @class ChatList
// @category Chats
type ChatListArchive struct{}

// A list of chats added to a chat folder
//
// @class ChatList
// @category Chats
type ChatListFolder struct {
	// Chat folder identifier
	ChatFolderID int32 `json:"chat_folder_id"`
}

// Describes a position of a chat in a chat list
//
// @category Chats
type ChatPosition struct {
	// The chat list
	List ChatList `json:"list"`

	// A parameter used to determine order of the chat in the chat list. Chats must be sorted by the pair (order, chat.id) in descending order
	Order int64 `json:"order,string"`

	// True, if the chat is pinned in the chat list
	IsPinned bool `json:"is_pinned"`
}

// Contains basic information about the photo of a chat
//
// @category Chats
type ChatPhotoInfo struct {
	// A small (160x160) chat photo variant in JPEG format. The file can be downloaded only before the photo is changed
	Small *File `json:"small"`

	// A big (640x640) chat photo variant in JPEG format. The file can be downloaded only before the photo is changed
	Big *File `json:"big"`

	// Chat photo minithumbnail; may be null
	// @optional
	Minithumbnail *Minithumbnail `json:"minithumbnail,omitempty"`

	// True, if the photo has animated variant
	HasAnimation bool `json:"has_animation"`

	// True, if the photo is visible only for the current user
	IsPersonal bool `json:"is_personal"`
}

// Describes actions that a user is allowed to take in a chat
//
// @category Chats
type ChatPermissions struct {
	// True, if the user can send text messages, contacts, invoices, locations, and venues
	CanSendBasicMessages bool `json:"can_send_basic_messages"`

	// True, if the user can send music files
	CanSendAudios bool `json:"can_send_audios"`

	// True, if the user can send documents
	CanSendDocuments bool `json:"can_send_documents"`

	// True, if the user can send photos
	CanSendPhotos bool `json:"can_send_photos"`

	// True, if the user can send videos
	CanSendVideos bool `json:"can_send_videos"`

	// True, if the user can send polls
	CanSendPolls bool `json:"can_send_polls"`

	// True, if the user can send animations, games, stickers, and dice and use inline bots
	CanSendOtherMessages bool `json:"can_send_other_messages"`

	// True, if the user may add a web page preview to their messages
	CanAddWebPagePreviews bool `json:"can_add_web_page_previews"`

	// True, if the user can change the chat title, photo, and other settings
	CanChangeInfo bool `json:"can_change_info"`

	// True, if the user can invite new users to the chat
	CanInviteUsers bool `json:"can_invite_users"`

	// True, if the user can pin messages
	CanPinMessages bool `json:"can_pin_messages"`

	// True, if the user can manage topics
	CanManageTopics bool `json:"can_manage_topics"`
}

// A chat. (Can be a private chat, basic group, supergroup, or secret chat)
//
// @category Chats
type Chat struct {
	// Chat unique identifier
	ID int64 `json:"id"`

	// Type of the chat
	Type ChatType `json:"type"`

	// Chat title
	Title string `json:"title"`

	// Chat photo; may be null
	// @optional
	Photo *ChatPhotoInfo `json:"photo,omitempty"`

	// Actions that non-administrator chat members are allowed to take in the chat
	Permissions *ChatPermissions `json:"permissions"`

	// Last message in the chat; may be null
	// @optional
	LastMessage *Message `json:"last_message,omitempty"`

	// Positions of the chat in chat lists
	Positions []*ChatPosition `json:"positions"`

	// True, if chat content can't be saved locally, forwarded, or copied
	HasProtectedContent bool `json:"has_protected_content"`

	// True, if the chat is marked as unread
	IsMarkedAsUnread bool `json:"is_marked_as_unread"`

	// True, if the chat is blocked by the current user and private messages from the chat can't be received
	IsBlocked bool `json:"is_blocked"`

	// True, if the chat messages can be deleted only for the current user while other users will continue to see the messages
	CanBeDeletedOnlyForSelf bool `json:"can_be_deleted_only_for_self"`

	// True, if the chat messages can be deleted for all users
	CanBeDeletedForAllUsers bool `json:"can_be_deleted_for_all_users"`

	// Number of unread messages in the chat
	UnreadCount int32 `json:"unread_count"`

	// Identifier of the last read incoming message
	LastReadInboxMessageID int64 `json:"last_read_inbox_message_id"`

	// Identifier of the last read outgoing message
	LastReadOutboxMessageID int64 `json:"last_read_outbox_message_id"`

	// Number of unread messages with a mention/reply in the chat
	UnreadMentionCount int32 `json:"unread_mention_count"`

	// Current message auto-delete or self-destruct timer setting for the chat, in seconds; 0 if disabled
	MessageAutoDeleteTime int32 `json:"message_auto_delete_time"`

	// Application-specific data associated with the chat. (For example, the chat scroll position or local chat notification identifier can be stored here.) Persistent if the message database is used
	ClientData string `json:"client_data"`
}

// Represents a list of chats
//
// @category Chats
type Chats struct {
	// Approximate total number of chats found
	TotalCount int32 `json:"total_count"`

	// List of chat identifiers
	ChatIDs []int64 `json:"chat_ids"`
}

// Returns information about a chat by its identifier; this is an offline request if the
// current user is not a bot
//
// @category Chats
// @returns Chat
type GetChat struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`
}

func (p GetChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Returns an ordered list of chats from the beginning of a chat list. For informational
// purposes only. Use loadChats and updates processing instead to maintain chat lists in a
// consistent state
//
// @category Chats
// @returns Chats
type GetChats struct {
	// The chat list in which to return chats; pass null to get chats from the main chat list
	// @optional
	ChatList ChatList `json:"chat_list,omitempty"`

	// The maximum number of chats to be returned
	Limit int32 `json:"limit"`
}

func (p GetChats) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Required),
	)
}

// Loads more chats from a chat list. The loaded chats and their positions in the chat list
// will be sent through updates. Chats are sorted by the pair (chat.position.order,
// chat.id) in descending order. Returns a 404 error if all chats have been loaded
//
// @category Chats
// @returns Ok
type LoadChats struct {
	// The chat list in which to load chats; pass null to load chats from the main chat list
	// @optional
	ChatList ChatList `json:"chat_list,omitempty"`

	// The maximum number of chats to be loaded. For optimal performance, the number of loaded chats is chosen by TDLib and can be smaller than the specified limit, even if the end of the list is not reached
	Limit int32 `json:"limit"`
}

func (p LoadChats) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Required),
	)
}

// Searches a public chat by its username. Currently, only private chats, supergroups and
// channels can be public. Returns the chat if found; otherwise, an error is returned
//
// @category Chats
// @returns Chat
type SearchPublicChat struct {
	// Username to be resolved
	Username string `json:"username"`
}

func (p SearchPublicChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required),
	)
}

// Searches for the specified query in the title and username of already known chats, this
// is an offline request. Returns chats in the order seen in the main chat list
//
// @category Chats
// @returns Chats
type SearchChats struct {
	// Query to search for. If the query is empty, returns up to 50 recently found chats
	Query string `json:"query"`

	// The maximum number of chats to be returned
	Limit int32 `json:"limit"`
}

func (p SearchChats) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Required),
	)
}

// Returns an existing chat corresponding to a given user
//
// @category Chats
// @returns Chat
type CreatePrivateChat struct {
	// User identifier
	UserID int64 `json:"user_id"`

	// Pass true to create the chat without a network request. In this case all information about the chat except its type, title and photo can be incorrect
	Force bool `json:"force"`
}

func (p CreatePrivateChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required),
	)
}

// Creates a new basic group and sends a corresponding messageBasicGroupChatCreate. Returns
// the newly created chat
//
// @category Chats
// @returns Chat
type CreateNewBasicGroupChat struct {
	// Identifiers of users to be added to the basic group; may be empty to create a basic group without other members
	UserIDs []int64 `json:"user_ids"`

	// Title of the new basic group; 1-128 characters
	Title string `json:"title"`

	// Message auto-delete time value, in seconds; must be from 0 up to 365 * 86400 and be divisible by 86400. If 0, then messages aren't deleted automatically
	MessageAutoDeleteTime int32 `json:"message_auto_delete_time"`
}

func (p CreateNewBasicGroupChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
	)
}

// Creates a new supergroup or channel and sends a corresponding
// messageSupergroupChatCreate. Returns the newly created chat
//
// @category Chats
// @returns Chat
type CreateNewSupergroupChat struct {
	// Title of the new chat; 1-128 characters
	Title string `json:"title"`

	// Pass true to create a forum supergroup chat
	IsForum bool `json:"is_forum"`

	// Pass true to create a channel chat; ignored if a forum is created
	IsChannel bool `json:"is_channel"`

	// Chat description; 0-255 characters
	Description string `json:"description"`

	// Message auto-delete time value, in seconds; must be from 0 up to 365 * 86400 and be divisible by 86400. If 0, then messages aren't deleted automatically
	MessageAutoDeleteTime int32 `json:"message_auto_delete_time"`

	// Pass true to create a supergroup for importing messages using importMessage
	ForImport bool `json:"for_import"`
}

func (p CreateNewSupergroupChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
	)
}

// Adds the current user as a new member to a chat. Private and secret chats can't be
// joined using this method. May return an error with a message "INVITE_REQUEST_SENT" if
// only a join request was created
//
// @category Chats
// @returns Ok
type JoinChat struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`
}

func (p JoinChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Removes the current user from chat members. Private and secret chats can't be left using
// this method
//
// @category Chats
// @returns Ok
type LeaveChat struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`
}

func (p LeaveChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Informs TDLib that the chat is opened by the user. Many useful activities depend on the
// chat being opened or closed (e.g., in supergroups and channels all updates are received
// only for opened chats)
//
// @category Chats
// @returns Ok
type OpenChat struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`
}

func (p OpenChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Informs TDLib that the chat is closed by the user. Many useful activities depend on the
// chat being opened or closed
//
// @category Chats
// @returns Ok
type CloseChat struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`
}

func (p CloseChat) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Changes the chat title. Supported only for basic groups, supergroups and channels.
// Requires can_change_info administrator right
//
// @category Chats
// @returns Ok
type SetChatTitle struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// New title of the chat; 1-128 characters
	Title string `json:"title"`
}

func (p SetChatTitle) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
		validation.Field(&p.Title, validation.Required),
	)
}

// Changes the marked as unread state of a chat
//
// @category Chats
// @returns Ok
type ToggleChatIsMarkedAsUnread struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// New value of is_marked_as_unread
	IsMarkedAsUnread bool `json:"is_marked_as_unread"`
}

func (p ToggleChatIsMarkedAsUnread) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Changes application-specific data associated with a chat
//
// @category Chats
// @returns Ok
type SetChatClientData struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// New value of client_data
	ClientData string `json:"client_data"`
}

func (p SetChatClientData) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}

// Describes the different types of activity in a chat
//
// @category Chats
type ChatAction interface {
	Object
	isChatAction()
}

// The user is typing a message
//
// @class ChatAction
// @category Chats
type ChatActionTyping struct{}

// The user is recording a video
//
// @class ChatAction
// @category Chats
type ChatActionRecordingVideo struct{}

// The user is uploading a photo
//
// @class ChatAction
// @category Chats
type ChatActionUploadingPhoto struct {
	// Upload progress, as a percentage
	Progress int32 `json:"progress"`
}

// The user is uploading a document
//
// @class ChatAction
// @category Chats
type ChatActionUploadingDocument struct {
	// Upload progress, as a percentage
	Progress int32 `json:"progress"`
}

// The user is picking a location or venue to send
//
// @class ChatAction
// @category Chats
type ChatActionChoosingLocation struct{}

// The user has canceled the previous action
//
// @class ChatAction
// @category Chats
type ChatActionCancel struct{}

// Sends a notification about user activity in a chat
//
// @category Chats
// @returns Ok
type SendChatAction struct {
	// Chat identifier
	ChatID int64 `json:"chat_id"`

	// If not 0, a message thread identifier in which the action was performed
	MessageThreadID int64 `json:"message_thread_id"`

	// The action description; pass null to cancel the currently active action
	// @optional
	Action ChatAction `json:"action,omitempty"`
}

func (p SendChatAction) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChatID, validation.Required),
	)
}
