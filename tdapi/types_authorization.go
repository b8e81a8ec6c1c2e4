package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Authorization
//----------------------------------------------------------------------

// Provides information about the method by which an authentication code is delivered to
// the user
//
// @category Authorization
type AuthenticationCodeType interface {
	Object
	isAuthenticationCodeType()
}

// An authentication code is delivered via a private Telegram message, which can be viewed
// from another active session
//
// @class AuthenticationCodeType
// @category Authorization
type AuthenticationCodeTypeTelegramMessage struct {
	// Length of the code
	Length int32 `json:"length"`
}

// An authentication code is delivered via an SMS message to the specified phone number
//
// @class AuthenticationCodeType
// @category Authorization
type AuthenticationCodeTypeSms struct {
	// Length of the code
	Length int32 `json:"length"`
}

// An authentication code is delivered via a phone call to the specified phone number
//
// @class AuthenticationCodeType
// @category Authorization
type AuthenticationCodeTypeCall struct {
	// Length of the code
	Length int32 `json:"length"`
}

// An authentication code is delivered by an immediately canceled call to the specified
// phone number. The phone number that calls is the code that must be entered automatically
//
// @class AuthenticationCodeType
// @category Authorization
type AuthenticationCodeTypeFlashCall struct {
	// Pattern of the phone number from which the call will be made
	Pattern string `json:"pattern"`
}

// Information about the authentication code that was sent
//
// @category Authorization
type AuthenticationCodeInfo struct {
	// A phone number that is being authenticated
	PhoneNumber string `json:"phone_number"`

	// The way the code was sent to the user
	Type AuthenticationCodeType `json:"type"`

	// The way the next code will be sent to the user; may be null
	// @optional
	NextType AuthenticationCodeType `json:"next_type,omitempty"`

	// Timeout before the code can be re-sent, in seconds
	Timeout int32 `json:"timeout"`
}

// Contains settings for the authentication of the user's phone number
//
// @category Authorization
type PhoneNumberAuthenticationSettings struct {
	// Pass true if the authentication code may be sent via a flash call to the specified phone number
	AllowFlashCall bool `json:"allow_flash_call"`

	// Pass true if the authentication code may be sent via a missed call to the specified phone number
	AllowMissedCall bool `json:"allow_missed_call"`

	// Pass true if the authenticated phone number is used on the current device
	IsCurrentPhoneNumber bool `json:"is_current_phone_number"`

	// For official applications only. True, if the application can use Android SMS Retriever API
	AllowSmsRetrieverAPI bool `json:"allow_sms_retriever_api"`

	// List of up to 20 authentication tokens, recently received in updateOption("authentication_token") in previously logged out sessions
	AuthenticationTokens []string `json:"authentication_tokens"`
}

// Represents the current authorization state of the TDLib client
//
// @category Authorization
type AuthorizationState interface {
	Object
	isAuthorizationState()
}

// Initialization parameters are needed. Call setTdlibParameters to provide them
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateWaitTdlibParameters struct{}

// TDLib needs the user's phone number to authorize. Call setAuthenticationPhoneNumber to
// provide the phone number, or use checkAuthenticationBotToken for bots
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateWaitPhoneNumber struct{}

// TDLib needs the user's authentication code to authorize. Call checkAuthenticationCode to
// check the code
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateWaitCode struct {
	// Information about the authorization code that was sent
	CodeInfo *AuthenticationCodeInfo `json:"code_info"`
}

// The user is unregistered and need to accept terms of service and enter their first name
// and last name to finish registration. Call registerUser to accept the terms of service
// and provide the data
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateWaitRegistration struct{}

// The user has been authorized, but needs to enter a 2-step verification password to start
// using the application. Call checkAuthenticationPassword to provide the password
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateWaitPassword struct {
	// Hint for the password; may be empty
	PasswordHint string `json:"password_hint"`

	// True, if a recovery email address has been set up
	HasRecoveryEmailAddress bool `json:"has_recovery_email_address"`

	// Pattern of the email address to which the recovery email was sent; empty until a recovery email has been sent
	RecoveryEmailAddressPattern string `json:"recovery_email_address_pattern"`
}

// The user has been successfully authorized. TDLib is now ready to answer general requests
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateReady struct{}

// The user is currently logging out
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateLoggingOut struct{}

// TDLib is closing, all subsequent queries will be answered with the error 500. Note that
// closing TDLib can take a while. All resources will be freed only after
// authorizationStateClosed has been received
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateClosing struct{}

// TDLib client is in its final state. All databases are closed and all resources are
// released. No other updates will be received after this. All queries will be responded to
// with error code 500. To continue working, one must create a new instance of the TDLib
// client
//
// @class AuthorizationState
// @category Authorization
type AuthorizationStateClosed struct{}

// Returns the current authorization state; this is an offline request. For informational
// purposes only. Use updateAuthorizationState instead to maintain the current
// authorization state. Can be called before initialization
//
// @category Authorization
// @returns AuthorizationState
type GetAuthorizationState struct{}

func (p GetAuthorizationState) Validate() error {
	return nil
}

// Sets the parameters for TDLib initialization. Works only when the current authorization
// state is authorizationStateWaitTdlibParameters
//
// @category Authorization
// @returns Ok
type SetTdlibParameters struct {
	// Pass true to use Telegram test environment instead of the production environment
	UseTestDc bool `json:"use_test_dc"`

	// The path to the directory for the persistent database; if empty, the current working directory will be used
	DatabaseDirectory string `json:"database_directory"`

	// The path to the directory for storing files; if empty, database_directory will be used
	FilesDirectory string `json:"files_directory"`

	// Encryption key for the database. If the encryption key is invalid, then an error with code 401 will be returned
	DatabaseEncryptionKey []byte `json:"database_encryption_key"`

	// Pass true to keep information about downloaded and uploaded files between application restarts
	UseFileDatabase bool `json:"use_file_database"`

	// Pass true to keep cache of users, basic groups, supergroups, channels and secret chats between restarts. Implies use_file_database
	UseChatInfoDatabase bool `json:"use_chat_info_database"`

	// Pass true to keep cache of chats and messages between restarts. Implies use_chat_info_database
	UseMessageDatabase bool `json:"use_message_database"`

	// Pass true to enable support for secret chats
	UseSecretChats bool `json:"use_secret_chats"`

	// Application identifier for Telegram API access, which can be obtained at https://my.telegram.org
	APIID int32 `json:"api_id"`

	// Application identifier hash for Telegram API access, which can be obtained at https://my.telegram.org
	APIHash string `json:"api_hash"`

	// IETF language tag of the user's operating system language; must be non-empty
	SystemLanguageCode string `json:"system_language_code"`

	// Model of the device the application is being run on; must be non-empty
	DeviceModel string `json:"device_model"`

	// Version of the operating system the application is being run on. If empty, the version is automatically detected by TDLib
	SystemVersion string `json:"system_version"`

	// Application version; must be non-empty
	ApplicationVersion string `json:"application_version"`

	// Pass true to automatically delete old files in background
	EnableStorageOptimizer bool `json:"enable_storage_optimizer"`

	// Pass true to ignore original file names for downloaded files. Otherwise, downloaded files are saved under names as close as possible to the original name
	IgnoreFileNames bool `json:"ignore_file_names"`
}

func (p SetTdlibParameters) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.APIID, validation.Required, validation.Min(1)),
		validation.Field(&p.APIHash, validation.Required),
		validation.Field(&p.SystemLanguageCode, validation.Required),
		validation.Field(&p.DeviceModel, validation.Required),
		validation.Field(&p.ApplicationVersion, validation.Required),
	)
}

// Sets the phone number of the user and sends an authentication code to the user. Works
// only when the current authorization state is authorizationStateWaitPhoneNumber
//
// @category Authorization
// @returns Ok
type SetAuthenticationPhoneNumber struct {
	// The phone number of the user, in international format
	PhoneNumber string `json:"phone_number"`

	// Settings for the authentication of the user's phone number; pass null to use default settings
	// @optional
	Settings *PhoneNumberAuthenticationSettings `json:"settings,omitempty"`
}

func (p SetAuthenticationPhoneNumber) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PhoneNumber, validation.Required),
	)
}

// Resends an authentication code to the user. Works only when the current authorization
// state is authorizationStateWaitCode, the next_code_type of the result is not null and
// the server-specified timeout has passed
//
// @category Authorization
// @returns Ok
type ResendAuthenticationCode struct{}

func (p ResendAuthenticationCode) Validate() error {
	return nil
}

// Checks the authentication code. Works only when the current authorization state is
// authorizationStateWaitCode
//
// @category Authorization
// @returns Ok
type CheckAuthenticationCode struct {
	// Authentication code to check
	Code string `json:"code"`
}

func (p CheckAuthenticationCode) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Code, validation.Required),
	)
}

// Finishes user registration. Works only when the current authorization state is
// authorizationStateWaitRegistration
//
// @category Authorization
// @returns Ok
type RegisterUser struct {
	// The first name of the user; 1-64 characters
	FirstName string `json:"first_name"`

	// The last name of the user; 0-64 characters
	LastName string `json:"last_name"`
}

func (p RegisterUser) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required),
	)
}

// Checks the 2-step verification password for correctness. Works only when the current
// authorization state is authorizationStateWaitPassword
//
// @category Authorization
// @returns Ok
type CheckAuthenticationPassword struct {
	// The 2-step verification password to check
	Password string `json:"password"`
}

func (p CheckAuthenticationPassword) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Password, validation.Required),
	)
}

// Checks the authentication token of a bot; to log in as a bot. Works only when the
// current authorization state is authorizationStateWaitPhoneNumber. Can be used instead of
// setAuthenticationPhoneNumber and checkAuthenticationCode to log in
//
// @category Authorization
// @returns Ok
type CheckAuthenticationBotToken struct {
	// The bot token
	Token string `json:"token"`
}

func (p CheckAuthenticationBotToken) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Token, validation.Required),
	)
}

// Closes the TDLib instance after a proper logout. Requires an available network
// connection. All local data will be destroyed. After the logout completes,
// updateAuthorizationState with authorizationStateClosed will be sent
//
// @category Authorization
// @returns Ok
type LogOut struct{}

func (p LogOut) Validate() error {
	return nil
}

// Closes the TDLib instance. All databases will be flushed to disk and properly closed.
// After the close completes, updateAuthorizationState with authorizationStateClosed will
// be sent. Can be called before initialization
//
// @category Authorization
// @returns Ok
type Close struct{}

func (p Close) Validate() error {
	return nil
}

// Closes the TDLib instance, destroying all local data without a proper logout. The
// current user session will remain in the list of all active sessions. All local data will
// be destroyed. After the destruction completes updateAuthorizationState with
// authorizationStateClosed will be sent. Can be called before authorization
//
// @category Authorization
// @returns Ok
type Destroy struct{}

func (p Destroy) Validate() error {
	return nil
}
