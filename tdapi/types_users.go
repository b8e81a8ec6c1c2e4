package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Users
//----------------------------------------------------------------------

// Describes the last time the user was online
//
// @category Users
type UserStatus interface {
	Object
	isUserStatus()
}

// The user status was never changed
//
// @class UserStatus
// @category Users
type UserStatusEmpty struct{}

// The user is online
//
// @class UserStatus
// @category Users
type UserStatusOnline struct {
	// Point in time (Unix timestamp) when the user's online status will expire
	Expires int32 `json:"expires"`
}

// The user is offline
//
// @class UserStatus
// @category Users
type UserStatusOffline struct {
	// Point in time (Unix timestamp) when the user was last online
	WasOnline int32 `json:"was_online"`
}

// The user was online recently
//
// @class UserStatus
// @category Users
type UserStatusRecently struct{}

// The user is offline, but was online last week
//
// @class UserStatus
// @category Users
type UserStatusLastWeek struct{}

// The user is offline, but was online last month
//
// @class UserStatus
// @category Users
type UserStatusLastMonth struct{}

// Represents the type of a user. The following types are possible: regular users, deleted
// users and bots
//
// @category Users
type UserType interface {
	Object
	isUserType()
}

// A regular user
//
// @class UserType
// @category Users
type UserTypeRegular struct{}

// A deleted user or deleted bot. No information on the user besides the user identifier is
// available. It is not possible to perform any active actions on this type of user
//
// @class UserType
// @category Users
type UserTypeDeleted struct{}

// A bot (see https://core.telegram.org/bots)
//
// @class UserType
// @category Users
type UserTypeBot struct {
	// True, if the bot can be invited to basic group and supergroup chats
	CanJoinGroups bool `json:"can_join_groups"`

	// True, if the bot can read all messages in basic group or supergroup chats and not just those addressed to the bot
	CanReadAllGroupMessages bool `json:"can_read_all_group_messages"`

	// True, if the bot supports inline queries
	IsInline bool `json:"is_inline"`

	// Placeholder for inline queries (displayed on the application input field)
	InlineQueryPlaceholder string `json:"inline_query_placeholder"`

	// True, if the location of the user is expected to be sent with every inline query to this bot
	NeedLocation bool `json:"need_location"`
}

// No information on the user besides the user identifier is available, yet this user has
// not been deleted. This object is extremely rare and must be handled like a deleted user.
// It is not possible to perform any actions on users of this type
//
// @class UserType
// @category Users
type UserTypeUnknown struct{}

// Describes usernames assigned to a user, a supergroup, or a channel
//
// @category Users
type Usernames struct {
	// List of active usernames; the first one must be shown as the primary username
	ActiveUsernames []string `json:"active_usernames"`

	// List of currently disabled usernames; the username can be activated with toggleUsernameIsActive/toggleSupergroupUsernameIsActive
	DisabledUsernames []string `json:"disabled_usernames"`

	// The active username, which can be changed with setUsername/setSupergroupUsername
	EditableUsername string `json:"editable_username"`
}

// Describes a user profile photo
//
// @category Users
type ProfilePhoto struct {
	// Photo identifier; 0 for an empty photo. Can be used to find a photo in a list of user profile photos
	ID int64 `json:"id,string"`

	// A small (160x160) user profile photo. The file can be downloaded only before the photo is changed
	Small *File `json:"small"`

	// A big (640x640) user profile photo. The file can be downloaded only before the photo is changed
	Big *File `json:"big"`

	// User profile photo minithumbnail; may be null
	// @optional
	Minithumbnail *Minithumbnail `json:"minithumbnail,omitempty"`

	// True, if the photo has animated variant
	HasAnimation bool `json:"has_animation"`

	// True, if the photo is visible only for the current user
	IsPersonal bool `json:"is_personal"`
}

// Represents a user
//
// @category Users
type User struct {
	// User identifier
	ID int64 `json:"id"`

	// First name of the user
	FirstName string `json:"first_name"`

	// Last name of the user
	LastName string `json:"last_name"`

	// Usernames of the user; may be null
	// @optional
	Usernames *Usernames `json:"usernames,omitempty"`

	// Phone number of the user
	PhoneNumber string `json:"phone_number"`

	// Current online status of the user
	Status UserStatus `json:"status"`

	// Profile photo of the user; may be null
	// @optional
	ProfilePhoto *ProfilePhoto `json:"profile_photo,omitempty"`

	// The user is a contact of the current user
	IsContact bool `json:"is_contact"`

	// The user is a contact of the current user and the current user is a contact of the user
	IsMutualContact bool `json:"is_mutual_contact"`

	// True, if the user is verified
	IsVerified bool `json:"is_verified"`

	// True, if the user is a Telegram Premium user
	IsPremium bool `json:"is_premium"`

	// True, if the user is Telegram support account
	IsSupport bool `json:"is_support"`

	// If non-empty, it contains a human-readable description of the reason why access to this user must be restricted
	RestrictionReason string `json:"restriction_reason"`

	// True, if many users reported this user as a scam
	IsScam bool `json:"is_scam"`

	// True, if many users reported this user as a fake account
	IsFake bool `json:"is_fake"`

	// If false, the user is inaccessible, and the only information known about the user is inside this class. Identifier of the user can't be passed to any method
	HaveAccess bool `json:"have_access"`

	// Type of the user
	Type UserType `json:"type"`

	// IETF language tag of the user's language; only available to bots
	LanguageCode string `json:"language_code"`

	// True, if the user added the current bot to attachment menu; only available to bots
	AddedToAttachmentMenu bool `json:"added_to_attachment_menu"`
}

// Contains full information about a user
//
// @category Users
type UserFullInfo struct {
	// True, if the user is blocked by the current user
	IsBlocked bool `json:"is_blocked"`

	// True, if the user can be called
	CanBeCalled bool `json:"can_be_called"`

	// True, if a video call can be created with the user
	SupportsVideoCalls bool `json:"supports_video_calls"`

	// True, if the user can't be called due to their privacy settings
	HasPrivateCalls bool `json:"has_private_calls"`

	// True, if the user can't be linked in forwarded messages due to their privacy settings
	HasPrivateForwards bool `json:"has_private_forwards"`

	// True, if the current user needs to explicitly allow to share their phone number with the user when the method addContact is used
	NeedPhoneNumberPrivacyException bool `json:"need_phone_number_privacy_exception"`

	// A short user bio; may be null for bots
	// @optional
	Bio *FormattedText `json:"bio,omitempty"`

	// Number of group chats where both the other user and the current user are a member; 0 for the current user
	GroupInCommonCount int32 `json:"group_in_common_count"`
}

// Represents a list of users
//
// @category Users
type Users struct {
	// Approximate total number of users found
	TotalCount int32 `json:"total_count"`

	// A list of user identifiers
	UserIDs []int64 `json:"user_ids"`
}

// Returns the current user
//
// @category Users
// @returns User
type GetMe struct{}

func (p GetMe) Validate() error {
	return nil
}

// Returns information about a user by their identifier. This is an offline request if the
// current user is not a bot
//
// @category Users
// @returns User
type GetUser struct {
	// User identifier
	UserID int64 `json:"user_id"`
}

func (p GetUser) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required),
	)
}

// Returns full information about a user by their identifier
//
// @category Users
// @returns UserFullInfo
type GetUserFullInfo struct {
	// User identifier
	UserID int64 `json:"user_id"`
}

func (p GetUserFullInfo) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserID, validation.Required),
	)
}

// Returns all user contacts
//
// @category Users
// @returns Users
type GetContacts struct{}

func (p GetContacts) Validate() error {
	return nil
}

// Searches for the specified query in the first names, last names and usernames of the
// known user contacts
//
// @category Users
// @returns Users
type SearchContacts struct {
	// Query to search for; may be empty to return all contacts
	Query string `json:"query"`

	// The maximum number of users to be returned
	Limit int32 `json:"limit"`
}

func (p SearchContacts) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Required),
	)
}

// Changes the first and last name of the current user
//
// @category Users
// @returns Ok
type SetName struct {
	// The new value of the first name for the current user; 1-64 characters
	FirstName string `json:"first_name"`

	// The new value of the optional last name for the current user; 0-64 characters
	LastName string `json:"last_name"`
}

func (p SetName) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required),
	)
}

// Changes the bio of the current user
//
// @category Users
// @returns Ok
type SetBio struct {
	// The new value of the user bio; 0-getOption("bio_length_max") characters without line feeds
	Bio string `json:"bio"`
}

func (p SetBio) Validate() error {
	return nil
}

// Changes the editable username of the current user
//
// @category Users
// @returns Ok
type SetUsername struct {
	// The new value of the username. Use an empty string to remove the username. The username can't be completely removed if there is another active or disabled username
	Username string `json:"username"`
}

func (p SetUsername) Validate() error {
	return nil
}
